package database

import (
	"log"

	"github.com/dgraph-io/badger/v4"
)

// OpenBadger opens the embedded store at path. An empty path opens an in-memory store.
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	log.Printf("[database][badger] opened path=%q", path)
	return db, nil
}
