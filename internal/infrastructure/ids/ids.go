package ids

import (
	"antenna_ops/internal/config"
	"antenna_ops/internal/usecase/interfaces"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// TimestampGenerator issues millisecond timestamps as decimal strings. Two ids asked for
// in the same millisecond get consecutive values instead of colliding.
type TimestampGenerator struct {
	clock interfaces.IClock
	mu    sync.Mutex
	last  int64
}

var _ interfaces.IIDGenerator = (*TimestampGenerator)(nil)

func NewTimestampGenerator(clock interfaces.IClock) *TimestampGenerator {
	return &TimestampGenerator{clock: clock}
}

func (g *TimestampGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.clock.Now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

type UUIDGenerator struct{}

var _ interfaces.IIDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// New picks the generator for an app.id_strategy value.
func New(strategy string, clock interfaces.IClock) interfaces.IIDGenerator {
	if strategy == config.IDStrategyUUID {
		return UUIDGenerator{}
	}
	return NewTimestampGenerator(clock)
}
