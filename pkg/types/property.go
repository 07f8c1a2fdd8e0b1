package types

import "strings"

// HistoryEntry is one immutable audit record of a property-affecting event.
// Entries are owned exclusively by their parent Property and are never
// reordered, mutated, or truncated once appended.
type HistoryEntry struct {
	Timestamp uint64 `json:"timestamp"` // Unix nanoseconds.
	Event     string `json:"event"`
}

// Property is a tokenized real-estate record. A property has exactly one
// owner at a time; TokenizedShares counts its divisible ownership units.
type Property struct {
	ID              uint64         `json:"id"`
	Address         string         `json:"address"`
	OwnerID         uint64         `json:"owner_id"`
	TokenizedShares uint64         `json:"tokenized_shares"`
	CreatedAt       uint64         `json:"created_at"`           // Set once at creation, never modified.
	UpdatedAt       uint64         `json:"updated_at,omitempty"` // Set on every mutating operation.
	History         []HistoryEntry `json:"history"`              // Append-only, ordered by insertion.
}

// Clone returns a deep copy of the property. The history slice is copied so
// callers cannot mutate ledger state through a returned value.
func (p *Property) Clone() *Property {
	cp := *p
	cp.History = make([]HistoryEntry, len(p.History))
	copy(cp.History, p.History)
	return &cp
}

// PropertyPayload carries caller-supplied property fields for add and update.
type PropertyPayload struct {
	Address         string `json:"address"`
	OwnerID         uint64 `json:"owner_id"`
	TokenizedShares uint64 `json:"tokenized_shares"`
}

// Validate checks payload well-formedness: address must be non-empty after
// trimming. Referential checks on OwnerID (whether the user exists) are the
// operation handler's job, not the payload's.
func (p PropertyPayload) Validate() error {
	if strings.TrimSpace(p.Address) == "" {
		return InvalidInputf("property payload: address must be non-empty")
	}
	return nil
}
