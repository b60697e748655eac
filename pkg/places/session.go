package places

import "github.com/google/uuid"

// NewSessionToken generates an opaque token grouping the autocomplete
// requests of one user session for billing.
func NewSessionToken() string {
	return uuid.New().String()
}
