// Package ledger implements the state-mutation core of the deeds system:
// the in-memory record stores, id allocation, validation dispatch, the
// per-property history log, and the ownership-transfer engine.
//
// A Ledger assumes serialized invocation: one operation runs to completion
// before the next begins. Hosts that accept concurrent calls must serialize
// access themselves (internal/sqlite does so with a mutex).
package ledger

import (
	"time"

	"github.com/mesh-intelligence/deeds/pkg/types"
)

// Compile-time interface check: Ledger must implement Registry.
var _ types.Registry = (*Ledger)(nil)

// History event names for property mutations. The transfer event is
// formatted per call and carries the share amount and both user ids.
const (
	eventCreated = "Created"
	eventUpdated = "Updated"
)

// allocator issues monotonically increasing ids, starting at 0. Ids are
// never reused, even after the entity they named is deleted.
type allocator struct {
	next uint64
}

func (a *allocator) allocate() uint64 {
	id := a.next
	a.next++
	return id
}

// Ledger is the explicit context object owning all mutable ledger state:
// one store and one id allocator per entity kind, plus the clock used to
// stamp mutations. A fresh Ledger is empty; tests get isolation by
// constructing their own.
type Ledger struct {
	users       *store[types.User]
	properties  *store[types.Property]
	userIDs     allocator
	propertyIDs allocator
	now         func() uint64
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock replaces the timestamp source. The clock returns Unix
// nanoseconds; tests inject a fixed or stepping clock for deterministic
// history entries.
func WithClock(now func() uint64) Option {
	return func(l *Ledger) { l.now = now }
}

// New returns an empty ledger using the wall clock.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		users:      newStore[types.User](),
		properties: newStore[types.Property](),
		now:        func() uint64 { return uint64(time.Now().UnixNano()) },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Restore loads previously persisted state into an empty ledger: all
// entities plus the allocator positions. Used by persistence backends on
// attach; not part of the Registry surface.
func (l *Ledger) Restore(users []*types.User, properties []*types.Property, nextUserID, nextPropertyID uint64) {
	for _, u := range users {
		l.users.insert(u.ID, *u)
	}
	for _, p := range properties {
		l.properties.insert(p.ID, *p.Clone())
	}
	l.userIDs.next = nextUserID
	l.propertyIDs.next = nextPropertyID
}

// NextIDs reports the allocator positions for persistence.
func (l *Ledger) NextIDs() (nextUserID, nextPropertyID uint64) {
	return l.userIDs.next, l.propertyIDs.next
}

// appendHistory pushes an audit entry onto the property's history and
// stamps UpdatedAt. Called exactly once per successful mutating property
// operation; never on reads or failed operations.
func appendHistory(p *types.Property, event string, now uint64) {
	p.History = append(p.History, types.HistoryEntry{Timestamp: now, Event: event})
	p.UpdatedAt = now
}
