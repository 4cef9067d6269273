package core

import (
	"context"
	"sync"
	"time"
)

// Test-only fakes implementing the storage and notifier ports. They live
// in the package proper (not a _test file) so adapter tests can wire a
// full orchestrator without a database or mail provider.

// FakeAccountStorage stores accounts in a map and exposes error fields
// for behavior injection.
type FakeAccountStorage struct {
	mu       sync.RWMutex
	accounts map[string]*Account

	CreateErr error
	GetErr    error
	SetErr    error
	ClearErr  error
	UpdateErr error
}

var _ AccountStorage = (*FakeAccountStorage)(nil)

func NewFakeAccountStorage() *FakeAccountStorage {
	return &FakeAccountStorage{accounts: make(map[string]*Account)}
}

func (f *FakeAccountStorage) CreateAccount(_ context.Context, a *Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.CreateErr != nil {
		return f.CreateErr
	}
	for _, existing := range f.accounts {
		if existing.Email == a.Email {
			return ErrAccountExists
		}
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	f.accounts[a.ID] = a
	return nil
}

func (f *FakeAccountStorage) GetAccountByID(_ context.Context, id string) (*Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.GetErr != nil {
		return nil, f.GetErr
	}
	a, ok := f.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

func (f *FakeAccountStorage) GetAccountByEmail(_ context.Context, email string) (*Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.GetErr != nil {
		return nil, f.GetErr
	}
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (f *FakeAccountStorage) GetAccountByResetTokenHash(_ context.Context, tokenHash string) (*Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.GetErr != nil {
		return nil, f.GetErr
	}
	for _, a := range f.accounts {
		if a.ResetTokenHash != nil && *a.ResetTokenHash == tokenHash {
			return a, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (f *FakeAccountStorage) SetResetToken(_ context.Context, accountID, tokenHash string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.SetErr != nil {
		return f.SetErr
	}
	a, ok := f.accounts[accountID]
	if !ok {
		return ErrAccountNotFound
	}
	a.ResetTokenHash = &tokenHash
	a.ResetTokenExpiresAt = &expiresAt
	a.UpdatedAt = time.Now()
	return nil
}

func (f *FakeAccountStorage) ClearResetToken(_ context.Context, accountID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ClearErr != nil {
		return f.ClearErr
	}
	a, ok := f.accounts[accountID]
	if !ok {
		return ErrAccountNotFound
	}
	a.ResetTokenHash = nil
	a.ResetTokenExpiresAt = nil
	a.UpdatedAt = time.Now()
	return nil
}

func (f *FakeAccountStorage) UpdatePassword(_ context.Context, accountID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	a, ok := f.accounts[accountID]
	if !ok {
		return ErrAccountNotFound
	}
	a.PasswordHash = passwordHash
	a.ResetTokenHash = nil
	a.ResetTokenExpiresAt = nil
	a.UpdatedAt = time.Now()
	return nil
}

// Account returns the stored record by id for direct state inspection.
func (f *FakeAccountStorage) Account(id string) *Account {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.accounts[id]
}

// FakeNotifier records sent messages and can be told to fail.
type FakeNotifier struct {
	mu       sync.Mutex
	messages []Message

	SendErr error
}

var _ Notifier = (*FakeNotifier)(nil)

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (f *FakeNotifier) Send(_ context.Context, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.SendErr != nil {
		return f.SendErr
	}
	f.messages = append(f.messages, msg)
	return nil
}

// Messages returns a copy of everything sent so far.
func (f *FakeNotifier) Messages() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Message, len(f.messages))
	copy(out, f.messages)
	return out
}

// LastMessage returns the most recent message, or nil if nothing was sent.
func (f *FakeNotifier) LastMessage() *Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		return nil
	}
	msg := f.messages[len(f.messages)-1]
	return &msg
}
