package core

import "time"

// Account represents one registered identity.
//
// The reset-token pair (hash + expiry) is present only between a
// forgot-password request and its consumption, expiry, or overwrite.
// The two fields travel together: both set or both absent.
type Account struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	PasswordHash        string     `json:"-"` // Never expose in JSON
	ResetTokenHash      *string    `json:"-"` // Never expose in JSON
	ResetTokenExpiresAt *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// ResetPending reports whether a reset token is currently outstanding.
func (a *Account) ResetPending() bool {
	return a.ResetTokenHash != nil && a.ResetTokenExpiresAt != nil
}

// PublicProfile returns the client-visible view of the account. The
// password hash and reset-token fields never leave the core.
func (a *Account) PublicProfile() *Profile {
	return &Profile{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}

// Profile is what signup, login and the profile endpoint return to
// clients. CreatedAt is only populated by the profile lookup.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}
