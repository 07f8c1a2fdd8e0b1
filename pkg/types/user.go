package types

import "strings"

// User is a registered participant that can own properties.
type User struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	CreatedAt   uint64 `json:"created_at"`           // Unix nanoseconds, set once at creation.
	UpdatedAt   uint64 `json:"updated_at,omitempty"` // Unix nanoseconds of the last update; 0 if never updated.
}

// UserPayload carries caller-supplied user fields for add and update.
type UserPayload struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// Validate checks payload well-formedness: both fields must be non-empty
// after trimming whitespace. Returns an InvalidInput error on failure.
func (p UserPayload) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return InvalidInputf("user payload: name must be non-empty")
	}
	if strings.TrimSpace(p.ContactInfo) == "" {
		return InvalidInputf("user payload: contact_info must be non-empty")
	}
	return nil
}
