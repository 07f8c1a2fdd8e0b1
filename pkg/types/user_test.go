package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload UserPayload
		wantErr bool
	}{
		{
			name:    "valid payload",
			payload: UserPayload{Name: "Alice", ContactInfo: "alice@example.com"},
		},
		{
			name:    "empty name rejected",
			payload: UserPayload{Name: "", ContactInfo: "alice@example.com"},
			wantErr: true,
		},
		{
			name:    "whitespace-only name rejected",
			payload: UserPayload{Name: "   ", ContactInfo: "alice@example.com"},
			wantErr: true,
		},
		{
			name:    "empty contact rejected",
			payload: UserPayload{Name: "Alice", ContactInfo: ""},
			wantErr: true,
		},
		{
			name:    "whitespace-only contact rejected",
			payload: UserPayload{Name: "Alice", ContactInfo: "\t\n"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
