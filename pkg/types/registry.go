package types

// Registry is the dispatch surface for the deeds ledger. Every operation
// returns either the resulting entity or one of the three taxonomy errors
// (InvalidInput, NotFound, Unauthorized). Backends that persist state also
// implement Attach and Detach; the in-memory ledger implements Registry
// alone.
//
// Mutating operations are atomic: on any error the stores are left
// completely unchanged, including history lengths.
type Registry interface {
	// AddUser validates the payload, allocates the next user id, and
	// stores the new user.
	AddUser(payload UserPayload) (*User, error)

	// GetUser retrieves a user by id. Returns NotFound if absent.
	GetUser(id uint64) (*User, error)

	// UpdateUser validates the payload and overwrites the name and
	// contact info of an existing user. The id is immutable.
	UpdateUser(id uint64, payload UserPayload) (*User, error)

	// DeleteUser removes a user and returns its prior state, or NotFound
	// if absent. Properties referencing the user are not cascaded.
	DeleteUser(id uint64) (*User, error)

	// ListUsers returns one page of users ordered by id ascending.
	ListUsers(page, pageSize uint64) []*User

	// AddProperty validates the payload, checks that the owner exists,
	// allocates the next property id, and stores the new property with a
	// "Created" history entry.
	AddProperty(payload PropertyPayload) (*Property, error)

	// GetProperty retrieves a property by id. Returns NotFound if absent.
	GetProperty(id uint64) (*Property, error)

	// UpdateProperty validates the payload, checks that the new owner
	// exists, overwrites the mutable fields, and appends an "Updated"
	// history entry. The id and CreatedAt are immutable.
	UpdateProperty(id uint64, payload PropertyPayload) (*Property, error)

	// DeleteProperty removes a property and returns its prior state, or
	// NotFound if absent.
	DeleteProperty(id uint64) (*Property, error)

	// ListProperties returns one page of properties ordered by id
	// ascending.
	ListProperties(page, pageSize uint64) []*Property

	// TransferOwnership reassigns a property's owner from one user to
	// another, recording the share amount in the history event. Checks, in
	// order: property exists (NotFound), from is the current owner
	// (Unauthorized), to exists (NotFound), 0 < shares <= TokenizedShares
	// (InvalidInput). The first failing check wins and no state changes.
	TransferOwnership(propertyID, fromUserID, toUserID, shares uint64) (*Property, error)
}

// Backend is a Registry with an attach/detach lifecycle around a durable
// store.
type Backend interface {
	Registry

	// Attach connects the backend described by config and loads the
	// ledger state. Returns ErrAlreadyAttached if called twice.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrRegistryDetached.
	Detach() error
}
