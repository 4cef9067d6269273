package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/drossler/wicket/pkg/crypto"
)

const MinPasswordLength = 8

// ForgotPassword issues a reset token for the account registered under
// email and mails the reset link. The raw token goes into the email only;
// storage keeps the digest and expiry. If the mail cannot be delivered the
// just-stored pair is rolled back so no orphaned token survives a failure
// the user was told about.
//
// Concurrent calls race on the reset-token columns with last-write-wins:
// a newer request silently invalidates the earlier token.
func (w *Wicket) ForgotPassword(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return ErrEmailRequired
	}

	account, err := w.Storage.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to find account: %w", err)
	}

	token, err := w.ResetTokens.Issue()
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	if err := w.Storage.SetResetToken(ctx, account.ID, token.Hash, token.ExpiresAt); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	msg := Message{
		To:      account.Email,
		Subject: "Password Reset Request",
		HTML:    resetEmailHTML(w.FrontendURL, token.Raw),
	}

	if err := w.Notifier.Send(ctx, msg); err != nil {
		// The user-visible outcome is failure, so the stored token must
		// not outlive it.
		if clearErr := w.Storage.ClearResetToken(ctx, account.ID); clearErr != nil {
			w.Logger.Error("reset token rollback failed",
				slog.String("account_id", account.ID),
				slog.Any("error", clearErr))
		}
		w.Logger.Error("reset email delivery failed",
			slog.String("account_id", account.ID),
			slog.Any("error", err))
		return ErrEmailDelivery
	}

	return nil
}

// ResetPassword consumes rawToken and replaces the account password. The
// new hash lands and the token pair is cleared in one storage write, so a
// second attempt with the same token fails the lookup.
func (w *Wicket) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if rawToken == "" {
		return ErrResetTokenRequired
	}
	if newPassword == "" {
		return ErrPasswordRequired
	}
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	account, err := w.lookupByResetToken(ctx, rawToken)
	if err != nil {
		return err
	}

	passwordHash, err := w.Passwords.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := w.Storage.UpdatePassword(ctx, account.ID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// VerifyResetToken reports whether rawToken would currently be accepted by
// ResetPassword. The reset form calls this before rendering. It reads but
// never mutates stored state, so it is safe to repeat.
func (w *Wicket) VerifyResetToken(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return ErrResetTokenRequired
	}

	_, err := w.lookupByResetToken(ctx, rawToken)
	return err
}

func (w *Wicket) lookupByResetToken(ctx context.Context, rawToken string) (*Account, error) {
	tokenHash := crypto.HashToken(rawToken)

	account, err := w.Storage.GetAccountByResetTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidResetToken
		}
		return nil, fmt.Errorf("failed to look up reset token: %w", err)
	}

	if !account.ResetPending() {
		return nil, ErrInvalidResetToken
	}

	if err := w.ResetTokens.Verify(rawToken, *account.ResetTokenHash, *account.ResetTokenExpiresAt); err != nil {
		return nil, err
	}

	return account, nil
}

func resetEmailHTML(frontendURL, rawToken string) string {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(frontendURL, "/"), url.QueryEscape(rawToken))

	return fmt.Sprintf(`
      <h2>Password Reset Request</h2>
      <p>You are receiving this email because you (or someone else) has requested a password reset for your account.</p>
      <p>Please click on the following link to reset your password:</p>
      <a href="%[1]s" style="display: inline-block; padding: 10px 20px; background-color: #2563eb; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0;">Reset Password</a>
      <p>Or copy and paste this link in your browser:</p>
      <p>%[1]s</p>
      <p>This link will expire in 1 hour.</p>
      <p>If you did not request this, please ignore this email and your password will remain unchanged.</p>
    `, resetURL)
}
