package core

import "errors"

// Account errors
var (
	ErrAccountExists      = errors.New("user already exists with this email") // 400 Conflict
	ErrAccountNotFound    = errors.New("user not found")                      // 404 Not Found
	ErrInvalidCredentials = errors.New("invalid email or password")           // 401 Unauthorized
)

// Reset-flow errors
var (
	ErrInvalidResetToken = errors.New("invalid reset token")     // 400
	ErrResetTokenExpired = errors.New("reset token has expired") // 400
	ErrEmailDelivery     = errors.New("error sending email")     // 500
)

// Session errors
var (
	ErrMissingAuthHeader = errors.New("missing authorization header")                            // 401
	ErrInvalidAuthHeader = errors.New("invalid authorization format, expected 'Bearer <token>'") // 401
	ErrInvalidToken      = errors.New("invalid session token")                                   // 401
	ErrSessionExpired    = errors.New("session expired")                                         // 401
)

// Validation errors (client input)
var (
	ErrEmailRequired      = errors.New("email is required")                       // 400
	ErrPasswordRequired   = errors.New("password is required")                    // 400
	ErrNameRequired       = errors.New("name is required")                        // 400
	ErrResetTokenRequired = errors.New("token is required")                       // 400
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters") // 400
)

// Config errors (server-side configuration)
var (
	ErrStorageRequired     = errors.New("storage adapter is required") // 500
	ErrHTTPAdapterRequired = errors.New("http adapter is required")    // 500
	ErrNotifierRequired    = errors.New("notifier is required")        // 500
	ErrFrontendURLRequired = errors.New("frontend url is required")    // 500
	ErrSecretRequired      = errors.New("secret is required")          // 500
	ErrSecretTooShort      = errors.New("secret too short")            // 500
)
