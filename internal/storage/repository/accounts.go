package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/subtrackhq/subtrack/internal/models"
)

// CreateAccount сохраняет учётную запись провайдера для пользователя.
func (s *Storage) CreateAccount(ctx context.Context, account models.Account) error {
	const op = "storage.CreateAccount"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO accounts (id, account_id, provider_id, user_id, password)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := s.DB.ExecContext(ctx, query,
		account.ID, account.AccountID, account.ProviderID, account.UserID, account.Password)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetCredentialAccount возвращает парольную учётную запись пользователя
// (provider_id = 'credential') или ErrNotFound.
func (s *Storage) GetCredentialAccount(ctx context.Context, userID string) (*models.Account, error) {
	const op = "storage.GetCredentialAccount"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, account_id, provider_id, user_id, password, created_at, updated_at
			  FROM accounts
			  WHERE user_id = $1 AND provider_id = 'credential'`
	a := &models.Account{}
	var password sql.NullString
	err := s.DB.QueryRowContext(ctx, query, userID).Scan(
		&a.ID, &a.AccountID, &a.ProviderID, &a.UserID, &password, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if password.Valid {
		a.Password = &password.String
	}
	return a, nil
}
