package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "sqlite backend valid",
			config: Config{Backend: BackendSQLite, DataDir: "/tmp/deeds"},
		},
		{
			name:   "empty data dir valid",
			config: Config{Backend: BackendSQLite},
		},
		{
			name:    "empty backend rejected",
			config:  Config{DataDir: "/tmp/deeds"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend rejected",
			config:  Config{Backend: "postgres"},
			wantErr: ErrBackendUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
