package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/subtrackhq/subtrack/internal/models"
)

const subscriptionColumns = `id, user_id, name, price_monthly::text, currency,
			      category, next_payment_date, active, created_at, updated_at`

func scanSubscription(row interface{ Scan(...any) error }) (*models.Subscription, error) {
	var sub models.Subscription
	var category sql.NullString
	var nextPaymentDate sql.NullTime
	if err := row.Scan(&sub.ID, &sub.UserID, &sub.Name, &sub.PriceMonthly, &sub.Currency,
		&category, &nextPaymentDate, &sub.Active, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
		return nil, err
	}
	if category.Valid {
		sub.Category = &category.String
	}
	if nextPaymentDate.Valid {
		sub.NextPaymentDate = &nextPaymentDate.Time
	}
	return &sub, nil
}

// CreateSubscription вставляет новую подписку и возвращает созданную строку.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (*models.Subscription, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (id, user_id, name, price_monthly, currency,
			      category, next_payment_date, active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + subscriptionColumns
	row := s.DB.QueryRowContext(ctx, query,
		sub.ID, sub.UserID, sub.Name, sub.PriceMonthly, sub.Currency,
		sub.Category, sub.NextPaymentDate, sub.Active)
	created, err := scanSubscription(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// ListSubscriptions возвращает подписки пользователя,
// упорядоченные по дате создания по убыванию.
func (s *Storage) ListSubscriptions(ctx context.Context, userID string) ([]models.Subscription, error) {
	const op = "storage.ListSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + subscriptionColumns + `
			  FROM subscriptions
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Subscription, 0)
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *sub)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateSubscription применяет частичное обновление к подписке пользователя.
// Nil-поля патча оставляют прежние значения, updated_at обновляется всегда.
// Условие WHERE объединяет id и владельца: чужая подписка просто не
// совпадает ни с одной строкой, и метод возвращает (nil, nil).
func (s *Storage) UpdateSubscription(ctx context.Context, id, userID string, patch models.SubscriptionPatch) (*models.Subscription, error) {
	const op = "storage.UpdateSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET name = COALESCE($3, name),
			      price_monthly = COALESCE($4, price_monthly),
			      currency = COALESCE($5, currency),
			      category = COALESCE($6, category),
			      next_payment_date = COALESCE($7, next_payment_date),
			      active = COALESCE($8, active),
			      updated_at = NOW()
			  WHERE id = $1 AND user_id = $2
			  RETURNING ` + subscriptionColumns
	row := s.DB.QueryRowContext(ctx, query,
		id, userID, patch.Name, patch.PriceMonthly, patch.Currency,
		patch.Category, patch.NextPaymentDate, patch.Active)
	updated, err := scanSubscription(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// RemoveSubscription удаляет подписку по id и владельцу.
// Возвращает количество удалённых строк; ноль — не ошибка.
func (s *Storage) RemoveSubscription(ctx context.Context, id, userID string) (int64, error) {
	const op = "storage.RemoveSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`DELETE FROM subscriptions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}
