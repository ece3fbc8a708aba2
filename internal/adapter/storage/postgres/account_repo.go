package postgres

import (
	"context"
	"errors"
	"fmt"

	"fractional-share-registry/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new account into the database.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, username, password_hash, wallet_balance, whitelisted, is_operator, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Username, a.PasswordHash, a.WalletBalance,
		a.Whitelisted, a.IsOperator, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account by its UUID.
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT id, username, password_hash, wallet_balance, whitelisted, is_operator, created_at, updated_at
		FROM accounts WHERE id = $1`

	a := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.WalletBalance,
		&a.Whitelisted, &a.IsOperator, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return a, nil
}

// GetByUsername fetches an account by username.
func (r *AccountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `SELECT id, username, password_hash, wallet_balance, whitelisted, is_operator, created_at, updated_at
		FROM accounts WHERE username = $1`

	a := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.WalletBalance,
		&a.Whitelisted, &a.IsOperator, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by username: %w", err)
	}
	return a, nil
}

// GetOperator fetches the operator account. Exactly one account carries the
// operator flag; it is seeded at startup.
func (r *AccountRepo) GetOperator(ctx context.Context) (*domain.Account, error) {
	query := `SELECT id, username, password_hash, wallet_balance, whitelisted, is_operator, created_at, updated_at
		FROM accounts WHERE is_operator = TRUE LIMIT 1`

	a := &domain.Account{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.WalletBalance,
		&a.Whitelisted, &a.IsOperator, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operator account: %w", err)
	}
	return a, nil
}

// SetWhitelisted flips the whitelist flag of an account.
func (r *AccountRepo) SetWhitelisted(ctx context.Context, id uuid.UUID, whitelisted bool) error {
	query := `UPDATE accounts SET whitelisted = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, whitelisted, id)
	if err != nil {
		return fmt.Errorf("set whitelisted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", id)
	}
	return nil
}

// GetWalletBalance reads the wallet balance without locking.
func (r *AccountRepo) GetWalletBalance(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `SELECT wallet_balance FROM accounts WHERE id = $1`

	var balance int64
	err := r.pool.QueryRow(ctx, query, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("account not found: %s", id)
		}
		return 0, fmt.Errorf("get wallet balance: %w", err)
	}
	return balance, nil
}

// GetWalletBalanceForUpdate reads the wallet balance with pessimistic locking.
// This MUST be called within a transaction.
func (r *AccountRepo) GetWalletBalanceForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (int64, error) {
	query := `SELECT wallet_balance FROM accounts WHERE id = $1 FOR UPDATE`

	var balance int64
	err := tx.QueryRow(ctx, query, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("account not found: %s", id)
		}
		return 0, fmt.Errorf("get wallet balance for update: %w", err)
	}
	return balance, nil
}

// DebitWallet subtracts amount from the wallet within a transaction.
// The balance check guards against concurrent drains.
func (r *AccountRepo) DebitWallet(ctx context.Context, tx pgx.Tx, id uuid.UUID, amount int64) error {
	query := `UPDATE accounts SET wallet_balance = wallet_balance - $1, updated_at = NOW()
		WHERE id = $2 AND wallet_balance >= $1`

	tag, err := tx.Exec(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("debit wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("insufficient wallet balance for account %s", id)
	}
	return nil
}

// CreditWallet adds amount to the wallet within a transaction.
func (r *AccountRepo) CreditWallet(ctx context.Context, tx pgx.Tx, id uuid.UUID, amount int64) error {
	query := `UPDATE accounts SET wallet_balance = wallet_balance + $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("credit wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", id)
	}
	return nil
}
