package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		wantKind error
		wantMsg  string
	}{
		{
			name:     "invalid input carries message",
			err:      InvalidInputf("transfer of property %d: invalid share amount %d", 3, 0),
			wantKind: ErrInvalidInput,
			wantMsg:  "transfer of property 3: invalid share amount 0",
		},
		{
			name:     "not found carries id",
			err:      NotFoundf("user id %d not found", 42),
			wantKind: ErrNotFound,
			wantMsg:  "user id 42 not found",
		},
		{
			name:     "unauthorized carries both ids",
			err:      Unauthorizedf("transfer of property %d: user %d does not own this property", 1, 7),
			wantKind: ErrUnauthorized,
			wantMsg:  "transfer of property 1: user 7 does not own this property",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.wantKind)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestErrorKindsAreDisjoint(t *testing.T) {
	err := NotFoundf("property id 9 not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrUnauthorized))
}
