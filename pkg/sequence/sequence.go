package sequence

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Sequence hands out monotonically increasing int64 identifiers. Safe for
// concurrent callers.
type Sequence struct {
	last atomic.Int64
}

// NewSequence creates a sequence that starts issuing at start+1
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

// Next returns the next identifier
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

// Current returns the most recently issued identifier
func (s *Sequence) Current() int64 {
	return s.last.Load()
}

// TokenGenerator issues opaque tokens of the form PREFIX-<unixmilli>-<n>.
// The counter component keeps tokens unique even when many are issued
// within the same millisecond.
type TokenGenerator struct {
	prefix  string
	counter atomic.Uint64
	now     func() time.Time
}

// NewTokenGenerator creates a generator for tokens with the given prefix
func NewTokenGenerator(prefix string) *TokenGenerator {
	return &TokenGenerator{
		prefix: prefix,
		now:    time.Now,
	}
}

// Next returns a freshly generated token, unique for the life of the generator
func (g *TokenGenerator) Next() string {
	n := g.counter.Add(1)
	return fmt.Sprintf("%s-%d-%06d", g.prefix, g.now().UnixMilli(), n)
}
