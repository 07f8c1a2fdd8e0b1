package ledger

import "github.com/mesh-intelligence/deeds/pkg/types"

// AddProperty validates the payload, checks that the owner exists, allocates
// the next property id, and stores the new property with a "Created" history
// entry. Any failure leaves the store and the allocator untouched.
func (l *Ledger) AddProperty(payload types.PropertyPayload) (*types.Property, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	if _, ok := l.users.get(payload.OwnerID); !ok {
		return nil, types.NotFoundf("add property: user id %d not found", payload.OwnerID)
	}

	now := l.now()
	property := types.Property{
		ID:              l.propertyIDs.allocate(),
		Address:         payload.Address,
		OwnerID:         payload.OwnerID,
		TokenizedShares: payload.TokenizedShares,
		CreatedAt:       now,
	}
	appendHistory(&property, eventCreated, now)
	l.properties.insert(property.ID, property)
	return property.Clone(), nil
}

// GetProperty retrieves a property by id. The returned value is a deep copy;
// mutating it does not affect ledger state.
func (l *Ledger) GetProperty(id uint64) (*types.Property, error) {
	property, ok := l.properties.get(id)
	if !ok {
		return nil, types.NotFoundf("property id %d not found", id)
	}
	return property.Clone(), nil
}

// UpdateProperty overwrites the mutable fields of an existing property and
// appends an "Updated" history entry. The id and CreatedAt are immutable.
// Because the write sets owner_id, the new owner must exist.
func (l *Ledger) UpdateProperty(id uint64, payload types.PropertyPayload) (*types.Property, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	if _, ok := l.properties.get(id); !ok {
		return nil, types.NotFoundf("property id %d not found", id)
	}
	if _, ok := l.users.get(payload.OwnerID); !ok {
		return nil, types.NotFoundf("update property: user id %d not found", payload.OwnerID)
	}

	property, _ := l.properties.update(id, func(p *types.Property) {
		p.Address = payload.Address
		p.OwnerID = payload.OwnerID
		p.TokenizedShares = payload.TokenizedShares
		appendHistory(p, eventUpdated, l.now())
	})
	return property.Clone(), nil
}

// DeleteProperty removes a property and returns its prior state, history
// included. The history dies with the record; no "Deleted" entry is
// appended to it.
func (l *Ledger) DeleteProperty(id uint64) (*types.Property, error) {
	property, ok := l.properties.remove(id)
	if !ok {
		return nil, types.NotFoundf("property id %d not found", id)
	}
	return property.Clone(), nil
}

// ListProperties returns one page of properties ordered by id ascending.
func (l *Ledger) ListProperties(pageNum, pageSize uint64) []*types.Property {
	ids := page(l.properties.ids(), pageNum, pageSize)
	out := make([]*types.Property, 0, len(ids))
	for _, id := range ids {
		property, _ := l.properties.get(id)
		out = append(out, property.Clone())
	}
	return out
}
