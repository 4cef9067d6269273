package core

import (
	"log/slog"
	"time"
)

type Config struct {
	// Secret signs session tokens. Compromise of this value invalidates
	// the security of every issued token; it must never be logged.
	Secret string

	Storage  AccountStorage
	HTTP     HTTPAdapter
	Notifier Notifier

	// FrontendURL is the base the reset link points at:
	// <FrontendURL>/reset-password?token=<rawToken>
	FrontendURL string

	// Optional config
	PasswordHasher PasswordHandler
	SessionTTL     time.Duration
	ResetTokenTTL  time.Duration
	BasePath       string
	Logger         *slog.Logger
}

type Wicket struct {
	Storage     AccountStorage
	Passwords   PasswordHandler
	Sessions    *SessionIssuer
	ResetTokens *ResetTokenSource
	Notifier    Notifier
	FrontendURL string
	BasePath    string
	Logger      *slog.Logger
}
