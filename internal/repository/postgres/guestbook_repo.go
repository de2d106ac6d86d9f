package postgres

import (
	"context"
	"database/sql"
	"errors"

	"communityguestbook/internal/domain"
)

type guestbookRepository struct {
	DB *sql.DB
}

// NewGuestbookRepository returns a domain.GuestbookRepository implemented with Postgres.
func NewGuestbookRepository(db *sql.DB) domain.GuestbookRepository {
	return &guestbookRepository{DB: db}
}

func (r *guestbookRepository) Insert(ctx context.Context, e *domain.GuestbookEntry) error {
	query := `
		INSERT INTO guestbook_entries (scope_id, created_at, name, location, email, message, unlock_token, visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.ScopeID, e.CreatedAt, e.Name, e.Location, e.Email, e.Message, e.UnlockToken,
	).Scan(&e.ID)
}

func (r *guestbookRepository) GetByToken(ctx context.Context, unlockToken string, scopeID int64) (*domain.GuestbookEntry, error) {
	query := `
		SELECT id, scope_id, created_at, name, location, email, message, unlock_token, visible
		FROM guestbook_entries
		WHERE unlock_token = $1 AND scope_id = $2
	`
	e := &domain.GuestbookEntry{}
	err := r.DB.QueryRowContext(ctx, query, unlockToken, scopeID).Scan(
		&e.ID, &e.ScopeID, &e.CreatedAt, &e.Name, &e.Location, &e.Email, &e.Message, &e.UnlockToken, &e.Visible,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return e, nil
}

// UnlockPending is the single conditional write that makes a pending entry
// visible. The visible = FALSE condition closes the race between concurrent
// unlock and delete requests: whichever statement runs first wins, the other
// affects zero rows.
func (r *guestbookRepository) UnlockPending(ctx context.Context, unlockToken string, scopeID int64) (bool, error) {
	query := `
		UPDATE guestbook_entries
		SET visible = TRUE
		WHERE unlock_token = $1 AND scope_id = $2 AND visible = FALSE
	`
	result, err := r.DB.ExecContext(ctx, query, unlockToken, scopeID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *guestbookRepository) DeleteByToken(ctx context.Context, unlockToken string) (bool, error) {
	query := `DELETE FROM guestbook_entries WHERE unlock_token = $1`
	result, err := r.DB.ExecContext(ctx, query, unlockToken)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *guestbookRepository) DeleteByID(ctx context.Context, id, scopeID int64) (bool, error) {
	query := `DELETE FROM guestbook_entries WHERE id = $1 AND scope_id = $2`
	result, err := r.DB.ExecContext(ctx, query, id, scopeID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *guestbookRepository) ListVisible(ctx context.Context, scopeID int64) ([]*domain.GuestbookEntry, error) {
	query := `
		SELECT id, scope_id, created_at, name, location, email, message, unlock_token, visible
		FROM guestbook_entries
		WHERE scope_id = $1 AND visible = TRUE
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, scopeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.GuestbookEntry
	for rows.Next() {
		e := &domain.GuestbookEntry{}
		if err := rows.Scan(
			&e.ID, &e.ScopeID, &e.CreatedAt, &e.Name, &e.Location, &e.Email, &e.Message, &e.UnlockToken, &e.Visible,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
