package plan

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator produces dot identifiers. Implementations must never return
// the same ID twice within a store's lifetime.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

// NewID returns a new UUID string.
func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequentialIDs issues Prefix1, Prefix2, ... It is meant for tests and
// scripted sessions that need reproducible identifiers.
type SequentialIDs struct {
	Prefix string
	next   uint64
}

// NewID returns the next identifier in the sequence.
func (g *SequentialIDs) NewID() string {
	g.next++
	return g.Prefix + strconv.FormatUint(g.next, 10)
}
