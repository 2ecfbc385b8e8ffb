package interfaces

import "time"

// IClock supplies "now" so day-based rules can be tested.
type IClock interface {
	Now() time.Time
}

// IIDGenerator issues ids for client-created records (contacts, trainings, letters, tasks, products).
type IIDGenerator interface {
	NewID() string
}
