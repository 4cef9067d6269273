package wicket

import (
	"fmt"
	"log/slog"

	"github.com/drossler/wicket/core"
)

// interfaces
type (
	AccountStorage = core.AccountStorage
	Notifier       = core.Notifier

	HTTPAdapter = core.HTTPAdapter

	PasswordHandler = core.PasswordHandler
)

// structs
type (
	Wicket = core.Wicket
	Config = core.Config
)

type (
	Account     = core.Account
	Profile     = core.Profile
	Message     = core.Message
	SignUpInput = core.SignUpInput
	LogInInput  = core.LogInInput
	AuthResult  = core.AuthResult
)

const (
	defaultBasePath  = "/auth"
	defaultSecretLen = 32
)

// Constructors & helpers (convenience re-exports)
var (
	NewArgon2           = core.NewArgon2
	NewSessionIssuer    = core.NewSessionIssuer
	NewResetTokenSource = core.NewResetTokenSource
	NormalizeEmail      = core.NormalizeEmail
)

var (
	ErrAccountExists      = core.ErrAccountExists
	ErrAccountNotFound    = core.ErrAccountNotFound
	ErrInvalidCredentials = core.ErrInvalidCredentials
)

var (
	ErrInvalidResetToken = core.ErrInvalidResetToken
	ErrResetTokenExpired = core.ErrResetTokenExpired
	ErrEmailDelivery     = core.ErrEmailDelivery
)

var (
	ErrMissingAuthHeader = core.ErrMissingAuthHeader
	ErrInvalidAuthHeader = core.ErrInvalidAuthHeader
	ErrInvalidToken      = core.ErrInvalidToken
	ErrSessionExpired    = core.ErrSessionExpired
)

var (
	ErrEmailRequired      = core.ErrEmailRequired
	ErrPasswordRequired   = core.ErrPasswordRequired
	ErrNameRequired       = core.ErrNameRequired
	ErrResetTokenRequired = core.ErrResetTokenRequired
	ErrPasswordTooShort   = core.ErrPasswordTooShort
)

var (
	ErrStorageRequired     = core.ErrStorageRequired
	ErrHTTPAdapterRequired = core.ErrHTTPAdapterRequired
	ErrNotifierRequired    = core.ErrNotifierRequired
	ErrFrontendURLRequired = core.ErrFrontendURLRequired
	ErrSecretRequired      = core.ErrSecretRequired
	ErrSecretTooShort      = core.ErrSecretTooShort
)

func New(config Config) (*Wicket, error) {
	if config.Secret == "" {
		return nil, ErrSecretRequired
	}
	if len(config.Secret) < defaultSecretLen {
		return nil, fmt.Errorf("%w - minimum of %d characters", ErrSecretTooShort, defaultSecretLen)
	}
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}
	if config.HTTP == nil {
		return nil, ErrHTTPAdapterRequired
	}
	if config.Notifier == nil {
		return nil, ErrNotifierRequired
	}
	if config.FrontendURL == "" {
		return nil, ErrFrontendURLRequired
	}

	// Set Defaults

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = core.NewArgon2()
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	wicket := &Wicket{
		Storage:     config.Storage,
		Passwords:   passwordHasher,
		Sessions:    core.NewSessionIssuer([]byte(config.Secret), config.SessionTTL),
		ResetTokens: core.NewResetTokenSource(config.ResetTokenTTL),
		Notifier:    config.Notifier,
		FrontendURL: config.FrontendURL,
		BasePath:    basePath,
		Logger:      logger,
	}

	if err := config.HTTP.RegisterRoutes(wicket); err != nil {
		return nil, err
	}

	return wicket, nil
}
