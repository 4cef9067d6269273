package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SignUpInput contains the data needed to register a new account
type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LogInInput contains the credentials for authentication
type LogInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult contains the session token and public profile returned by
// signup and login
type AuthResult struct {
	Token string   `json:"token"`
	User  *Profile `json:"user"`
}

// NormalizeEmail lowercases and trims an email address. All storage and
// lookups go through this, so one account exists per normalized email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers a new account with email and password
func (w *Wicket) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	email := NormalizeEmail(input.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	// Step 1: Check if an account already exists
	existing, err := w.Storage.GetAccountByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	// Step 2: Hash the password
	passwordHash, err := w.Passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Create the account
	account := &Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}

	if err := w.Storage.CreateAccount(ctx, account); err != nil {
		// The unique constraint catches the race where two signups for
		// the same email pass the existence check together.
		if errors.Is(err, ErrAccountExists) {
			return nil, ErrAccountExists
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// Step 4: Issue a session token for the new account
	token, err := w.Sessions.Issue(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &AuthResult{
		Token: token,
		User:  account.PublicProfile(),
	}, nil
}

// LogIn authenticates an account with email and password.
//
// Unknown email and wrong password both come back as ErrInvalidCredentials
// so the response cannot be used to enumerate accounts.
func (w *Wicket) LogIn(ctx context.Context, input LogInInput) (*AuthResult, error) {
	email := NormalizeEmail(input.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}

	account, err := w.Storage.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	valid, err := w.Passwords.Verify(input.Password, account.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}

	token, err := w.Sessions.Issue(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &AuthResult{
		Token: token,
		User:  account.PublicProfile(),
	}, nil
}

// Profile returns the public view of the account a verified session token
// resolved to. The account can vanish between token issuance and lookup.
func (w *Wicket) Profile(ctx context.Context, accountID string) (*Profile, error) {
	account, err := w.Storage.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	profile := account.PublicProfile()
	profile.CreatedAt = account.CreatedAt
	return profile, nil
}
