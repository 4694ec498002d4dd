package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/subtrackhq/subtrack/internal/models"
)

// CreateSession сохраняет новую сессию пользователя.
func (s *Storage) CreateSession(ctx context.Context, session models.Session) error {
	const op = "storage.CreateSession"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO sessions (id, token, user_id, expires_at, ip_address, user_agent)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := s.DB.ExecContext(ctx, query,
		session.ID, session.Token, session.UserID, session.ExpiresAt,
		session.IPAddress, session.UserAgent)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetSessionByToken возвращает сессию по токену или ErrNotFound.
// Срок действия здесь не проверяется — это забота сервиса.
func (s *Storage) GetSessionByToken(ctx context.Context, token string) (*models.Session, error) {
	const op = "storage.GetSessionByToken"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, token, user_id, expires_at, ip_address, user_agent, created_at, updated_at
			  FROM sessions
			  WHERE token = $1`
	sess := &models.Session{}
	var ip, ua sql.NullString
	err := s.DB.QueryRowContext(ctx, query, token).Scan(
		&sess.ID, &sess.Token, &sess.UserID, &sess.ExpiresAt, &ip, &ua,
		&sess.CreatedAt, &sess.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if ip.Valid {
		sess.IPAddress = &ip.String
	}
	if ua.Valid {
		sess.UserAgent = &ua.String
	}
	return sess, nil
}

// DeleteSessionByToken удаляет сессию по токену.
// Возвращает количество удалённых строк; отсутствие строки — не ошибка.
func (s *Storage) DeleteSessionByToken(ctx context.Context, token string) (int64, error) {
	const op = "storage.DeleteSessionByToken"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// DeleteExpiredSessions удаляет все сессии с истёкшим сроком действия.
func (s *Storage) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	const op = "storage.DeleteExpiredSessions"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}
