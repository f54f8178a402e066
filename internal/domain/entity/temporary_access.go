package entity

import "time"

// GrantStatus is the lifecycle state of a temporary access grant. Only
// active grants may be consumed; every other value is terminal.
type GrantStatus string

const (
	GrantStatusActive  GrantStatus = "active"
	GrantStatusExpired GrantStatus = "expired"
	GrantStatusRevoked GrantStatus = "revoked"
)

// TemporaryAccess represents an ad-hoc door access grant. The document ID
// doubles as the presented secret.
type TemporaryAccess struct {
	ID         string      `json:"id"` // Document ID, used as the secret.
	Status     GrantStatus `json:"status"`
	ValidFrom  time.Time   `json:"valid_from"`
	ValidUntil time.Time   `json:"valid_until"`
	UserEmail  string      `json:"user_email"` // Holder identifier.
}

// IsActive reports whether the grant may still be consumed.
func (t *TemporaryAccess) IsActive() bool {
	return t.Status == GrantStatusActive
}
