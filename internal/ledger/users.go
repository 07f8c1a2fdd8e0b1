package ledger

import "github.com/mesh-intelligence/deeds/pkg/types"

// AddUser validates the payload, allocates the next user id, and stores the
// new user. Validation failures leave the store and the allocator untouched.
func (l *Ledger) AddUser(payload types.UserPayload) (*types.User, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	user := types.User{
		ID:          l.userIDs.allocate(),
		Name:        payload.Name,
		ContactInfo: payload.ContactInfo,
		CreatedAt:   l.now(),
	}
	l.users.insert(user.ID, user)
	return &user, nil
}

// GetUser retrieves a user by id.
func (l *Ledger) GetUser(id uint64) (*types.User, error) {
	user, ok := l.users.get(id)
	if !ok {
		return nil, types.NotFoundf("user id %d not found", id)
	}
	return &user, nil
}

// UpdateUser overwrites the name and contact info of an existing user. The
// id is immutable and the payload must be fully valid.
func (l *Ledger) UpdateUser(id uint64, payload types.UserPayload) (*types.User, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	user, ok := l.users.update(id, func(u *types.User) {
		u.Name = payload.Name
		u.ContactInfo = payload.ContactInfo
		u.UpdatedAt = l.now()
	})
	if !ok {
		return nil, types.NotFoundf("user id %d not found", id)
	}
	return &user, nil
}

// DeleteUser removes a user and returns its prior state. Properties that
// reference the user keep their owner_id; deletion does not cascade.
func (l *Ledger) DeleteUser(id uint64) (*types.User, error) {
	user, ok := l.users.remove(id)
	if !ok {
		return nil, types.NotFoundf("user id %d not found", id)
	}
	return &user, nil
}

// ListUsers returns one page of users ordered by id ascending.
func (l *Ledger) ListUsers(pageNum, pageSize uint64) []*types.User {
	ids := page(l.users.ids(), pageNum, pageSize)
	out := make([]*types.User, 0, len(ids))
	for _, id := range ids {
		user, _ := l.users.get(id)
		out = append(out, &user)
	}
	return out
}
