package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/deeds/pkg/types"
)

// This file implements the Registry operations. Each one takes the backend
// mutex, so inbound calls are fully serialized; the ledger core relies on
// that. Reads delegate straight to the ledger. Mutations delegate, then
// persist the affected rows before returning.
//
// If a persist fails the in-memory ledger is ahead of disk for the rest of
// this attachment; the next Attach reloads the authoritative on-disk state.

// AddUser creates a user and persists it.
func (b *Backend) AddUser(payload types.UserPayload) (*types.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return nil, types.ErrRegistryDetached
	}

	user, err := b.ledger.AddUser(payload)
	if err != nil {
		return nil, err
	}
	if err := b.persist(func(tx *sql.Tx) error { return saveUser(tx, user) }); err != nil {
		return nil, fmt.Errorf("persisting user %d: %w", user.ID, err)
	}
	return user, nil
}

// GetUser retrieves a user by id.
func (b *Backend) GetUser(id uint64) (*types.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return nil, types.ErrRegistryDetached
	}
	return b.ledger.GetUser(id)
}

// UpdateUser updates a user and persists the change.
func (b *Backend) UpdateUser(id uint64, payload types.UserPayload) (*types.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return nil, types.ErrRegistryDetached
	}

	user, err := b.ledger.UpdateUser(id, payload)
	if err != nil {
		return nil, err
	}
	if err := b.persist(func(tx *sql.Tx) error { return saveUser(tx, user) }); err != nil {
		return nil, fmt.Errorf("persisting user %d: %w", id, err)
	}
	return user, nil
}

// DeleteUser removes a user and persists the removal.
func (b *Backend) DeleteUser(id uint64) (*types.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return nil, types.ErrRegistryDetached
	}

	user, err := b.ledger.DeleteUser(id)
	if err != nil {
		return nil, err
	}
	if err := b.persist(func(tx *sql.Tx) error { return deleteUserRow(tx, id) }); err != nil {
		return nil, fmt.Errorf("deleting user %d: %w", id, err)
	}
	return user, nil
}

// ListUsers returns one page of users ordered by id ascending.
func (b *Backend) ListUsers(page, pageSize uint64) []*types.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return nil
	}
	return b.ledger.ListUsers(page, pageSize)
}

// AddProperty creates a property and persists it with its history.
func (b *Backend) AddProperty(payload types.PropertyPayload) (*types.Property, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return nil, types.ErrRegistryDetached
	}

	property, err := b.ledger.AddProperty(payload)
	if err != nil {
		return nil, err
	}
	if err := b.persist(func(tx *sql.Tx) error { return saveProperty(tx, property) }); err != nil {
		return nil, fmt.Errorf("persisting property %d: %w", property.ID, err)
	}
	return property, nil
}

// GetProperty retrieves a property by id.
func (b *Backend) GetProperty(id uint64) (*types.Property, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return nil, types.ErrRegistryDetached
	}
	return b.ledger.GetProperty(id)
}

// UpdateProperty updates a property and persists the change.
func (b *Backend) UpdateProperty(id uint64, payload types.PropertyPayload) (*types.Property, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return nil, types.ErrRegistryDetached
	}

	property, err := b.ledger.UpdateProperty(id, payload)
	if err != nil {
		return nil, err
	}
	if err := b.persist(func(tx *sql.Tx) error { return saveProperty(tx, property) }); err != nil {
		return nil, fmt.Errorf("persisting property %d: %w", id, err)
	}
	return property, nil
}

// DeleteProperty removes a property and persists the removal.
func (b *Backend) DeleteProperty(id uint64) (*types.Property, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return nil, types.ErrRegistryDetached
	}

	property, err := b.ledger.DeleteProperty(id)
	if err != nil {
		return nil, err
	}
	if err := b.persist(func(tx *sql.Tx) error { return deletePropertyRow(tx, id) }); err != nil {
		return nil, fmt.Errorf("deleting property %d: %w", id, err)
	}
	return property, nil
}

// ListProperties returns one page of properties ordered by id ascending.
func (b *Backend) ListProperties(page, pageSize uint64) []*types.Property {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return nil
	}
	return b.ledger.ListProperties(page, pageSize)
}

// TransferOwnership reassigns a property's owner and persists the result.
func (b *Backend) TransferOwnership(propertyID, fromUserID, toUserID, shares uint64) (*types.Property, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return nil, types.ErrRegistryDetached
	}

	property, err := b.ledger.TransferOwnership(propertyID, fromUserID, toUserID, shares)
	if err != nil {
		return nil, err
	}
	if err := b.persist(func(tx *sql.Tx) error { return saveProperty(tx, property) }); err != nil {
		return nil, fmt.Errorf("persisting property %d: %w", propertyID, err)
	}
	return property, nil
}
