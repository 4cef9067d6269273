package core

import (
	"context"
	"time"
)

// Ports define interfaces for external dependencies

// ============================================
// STORAGE PORT (Database operations)
// ============================================

// AccountStorage defines credential-store database operations.
//
// Implementations must treat the reset-token pair as a unit: SetResetToken
// stores hash and expiry together, ClearResetToken removes both, and
// UpdatePassword clears both in the same write that replaces the password
// hash. Lookups that match nothing return ErrAccountNotFound.
type AccountStorage interface {
	CreateAccount(ctx context.Context, a *Account) error

	GetAccountByID(ctx context.Context, id string) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	GetAccountByResetTokenHash(ctx context.Context, tokenHash string) (*Account, error)

	SetResetToken(ctx context.Context, accountID, tokenHash string, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, accountID string) error

	// UpdatePassword replaces the stored password hash and clears any
	// pending reset-token pair atomically.
	UpdatePassword(ctx context.Context, accountID, passwordHash string) error
}

// ============================================
// NOTIFIER PORT
// ============================================

// Message is one outbound notification.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Notifier delivers messages out-of-band (email). A returned error means
// nothing reached the recipient, so the caller may roll back state that
// only makes sense if delivery succeeded.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// ============================================
// HTTP PORT
// ============================================

// HTTPAdapter mounts the auth routes onto a host framework.
type HTTPAdapter interface {
	RegisterRoutes(w *Wicket) error
}
