package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/drossler/wicket"
)

const accountColumns = `id, email, name, password_hash, reset_token_hash, reset_token_expires_at, created_at, updated_at`

func (a *Adapter) CreateAccount(ctx context.Context, account *wicket.Account) error {
	query := `INSERT INTO public.accounts (id, email, name, password_hash)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at, updated_at`

	err := a.pool.QueryRow(ctx, query,
		account.ID, account.Email, account.Name, account.PasswordHash,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return wicket.ErrAccountExists
		}
		return err
	}

	return nil
}

func (a *Adapter) GetAccountByID(ctx context.Context, id string) (*wicket.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM public.accounts WHERE id = $1`
	return scanAccount(a.pool.QueryRow(ctx, q, id))
}

func (a *Adapter) GetAccountByEmail(ctx context.Context, email string) (*wicket.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM public.accounts WHERE email = $1`
	return scanAccount(a.pool.QueryRow(ctx, q, email))
}

func (a *Adapter) GetAccountByResetTokenHash(ctx context.Context, tokenHash string) (*wicket.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM public.accounts WHERE reset_token_hash = $1`
	return scanAccount(a.pool.QueryRow(ctx, q, tokenHash))
}

func (a *Adapter) SetResetToken(ctx context.Context, accountID, tokenHash string, expiresAt time.Time) error {
	q := `UPDATE public.accounts
	      SET reset_token_hash = $1, reset_token_expires_at = $2, updated_at = now()
	      WHERE id = $3`

	tag, err := a.pool.Exec(ctx, q, tokenHash, expiresAt, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return wicket.ErrAccountNotFound
	}
	return nil
}

func (a *Adapter) ClearResetToken(ctx context.Context, accountID string) error {
	q := `UPDATE public.accounts
	      SET reset_token_hash = NULL, reset_token_expires_at = NULL, updated_at = now()
	      WHERE id = $1`

	tag, err := a.pool.Exec(ctx, q, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return wicket.ErrAccountNotFound
	}
	return nil
}

// UpdatePassword replaces the hash and clears the reset pair in one
// statement so a consumed token can never be replayed.
func (a *Adapter) UpdatePassword(ctx context.Context, accountID, passwordHash string) error {
	q := `UPDATE public.accounts
	      SET password_hash = $1, reset_token_hash = NULL, reset_token_expires_at = NULL, updated_at = now()
	      WHERE id = $2`

	tag, err := a.pool.Exec(ctx, q, passwordHash, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return wicket.ErrAccountNotFound
	}
	return nil
}

func scanAccount(row pgx.Row) (*wicket.Account, error) {
	account := &wicket.Account{}
	err := row.Scan(
		&account.ID, &account.Email, &account.Name, &account.PasswordHash,
		&account.ResetTokenHash, &account.ResetTokenExpiresAt,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wicket.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}
