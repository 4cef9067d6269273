package core

import (
	"fmt"
	"time"

	"github.com/drossler/wicket/pkg/crypto"
)

const DefaultResetTokenTTL = time.Hour

// ResetToken is the result of one issuance. Raw leaves the process exactly
// once, embedded in the reset email; only Hash is persisted.
type ResetToken struct {
	Raw       string
	Hash      string
	ExpiresAt time.Time
}

// ResetTokenSource issues and checks the single-use, time-bounded secrets
// driving the password-reset flow.
type ResetTokenSource struct {
	ttl time.Duration
	now func() time.Time // swapped out in tests
}

func NewResetTokenSource(ttl time.Duration) *ResetTokenSource {
	if ttl <= 0 {
		ttl = DefaultResetTokenTTL
	}
	return &ResetTokenSource{ttl: ttl, now: time.Now}
}

func (r *ResetTokenSource) Issue() (*ResetToken, error) {
	pair, err := crypto.GenerateHashedToken(crypto.DefaultTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}

	return &ResetToken{
		Raw:       pair.Token,
		Hash:      pair.Hash,
		ExpiresAt: r.now().Add(r.ttl),
	}, nil
}

// Verify checks a raw token against the stored digest and expiry. A token
// is accepted up to and including its expiry instant. Verify never mutates
// anything; clearing consumed tokens is the caller's job.
func (r *ResetTokenSource) Verify(raw, storedHash string, expiresAt time.Time) error {
	ok, err := crypto.VerifyToken(raw, storedHash)
	if err != nil || !ok {
		return ErrInvalidResetToken
	}

	if r.now().After(expiresAt) {
		return ErrResetTokenExpired
	}

	return nil
}
