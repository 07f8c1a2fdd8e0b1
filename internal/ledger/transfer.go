package ledger

import (
	"fmt"

	"github.com/mesh-intelligence/deeds/pkg/types"
)

// TransferOwnership reassigns a property's owner record from one user to
// another. The share amount is bookkeeping for the audit trail: a property
// has exactly one owner at a time, so the transfer moves the whole
// ownership record rather than splitting it into fractional co-ownership.
//
// Preconditions are checked in order and the first failure wins:
//
//  1. the property exists (NotFound)
//  2. fromUserID is the current owner (Unauthorized)
//  3. toUserID refers to an existing user (NotFound)
//  4. 0 < shares <= TokenizedShares (InvalidInput)
//
// All checks run before any mutation, so a failed transfer leaves the
// property untouched, history included. On success the owner reassignment
// and the history append are one atomic step.
func (l *Ledger) TransferOwnership(propertyID, fromUserID, toUserID, shares uint64) (*types.Property, error) {
	property, ok := l.properties.get(propertyID)
	if !ok {
		return nil, types.NotFoundf("property id %d not found", propertyID)
	}
	if property.OwnerID != fromUserID {
		return nil, types.Unauthorizedf("transfer of property %d: user %d does not own this property", propertyID, fromUserID)
	}
	if _, ok := l.users.get(toUserID); !ok {
		return nil, types.NotFoundf("transfer of property %d: user id %d not found", propertyID, toUserID)
	}
	if shares == 0 || shares > property.TokenizedShares {
		return nil, types.InvalidInputf("transfer of property %d: invalid share amount %d", propertyID, shares)
	}

	event := fmt.Sprintf("Transferred %d shares from user %d to user %d", shares, fromUserID, toUserID)
	updated, _ := l.properties.update(propertyID, func(p *types.Property) {
		p.OwnerID = toUserID
		appendHistory(p, event, l.now())
	})
	return updated.Clone(), nil
}
