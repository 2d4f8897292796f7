package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLSTATE unique_violation
const pgUniqueViolation = "23505"

const linkColumns = `id, short_code, user_id, original_url, title, description,
	click_count, is_active, expires_at, created_at, updated_at`

// DatabaseStore хранит ссылки в PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(pool *pgxpool.Pool) *DatabaseStore {
	return &DatabaseStore{
		pool: pool,
	}
}

func (ds *DatabaseStore) Insert(ctx context.Context, link model.Link) (model.Link, error) {
	query := `
		INSERT INTO links (short_code, user_id, original_url, title, description, is_active, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + linkColumns

	row := ds.pool.QueryRow(ctx, query,
		link.ShortCode,
		link.UserID,
		link.OriginalURL,
		link.Title,
		link.Description,
		link.IsActive,
		link.ExpiresAt,
	)

	created, err := scanLink(row)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Link{}, fmt.Errorf("code %s: %w", link.ShortCode, ErrAlreadyExists)
		}
		return model.Link{}, fmt.Errorf("failed to insert link: %w", err)
	}

	return created, nil
}

// UpdateByID обновляет только переданные поля; запрос ограничен владельцем
func (ds *DatabaseStore) UpdateByID(ctx context.Context, id int64, userID string, update model.LinkUpdate) (model.Link, error) {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.ShortCode != nil {
		set("short_code", *update.ShortCode)
	}
	if update.OriginalURL != nil {
		set("original_url", *update.OriginalURL)
	}
	if update.Title != nil {
		set("title", *update.Title)
	}
	if update.Description != nil {
		set("description", *update.Description)
	}
	if update.IsActive != nil {
		set("is_active", *update.IsActive)
	}
	if update.ExpiresAt.Set {
		set("expires_at", update.ExpiresAt.Value)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id, userID)
	query := fmt.Sprintf(`
		UPDATE links SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING %s`,
		strings.Join(sets, ", "), len(args)-1, len(args), linkColumns)

	updated, err := scanLink(ds.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
		}
		if isUniqueViolation(err) {
			return model.Link{}, fmt.Errorf("id %d: %w", id, ErrAlreadyExists)
		}
		return model.Link{}, fmt.Errorf("failed to update link: %w", err)
	}

	return updated, nil
}

func (ds *DatabaseStore) DeleteByID(ctx context.Context, id int64, userID string) error {
	tag, err := ds.pool.Exec(ctx, `DELETE FROM links WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}

	return nil
}

func (ds *DatabaseStore) FindByShortCode(ctx context.Context, code string) (model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE short_code = $1`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return link, nil
}

func (ds *DatabaseStore) FindByOwner(ctx context.Context, userID string) ([]model.Link, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM links
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := ds.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user links: %w", err)
	}

	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Link, error) {
		return scanLink(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan user links: %w", err)
	}

	return links, nil
}

// IncrementClickCount выполняет атомарный инкремент на стороне БД
func (ds *DatabaseStore) IncrementClickCount(ctx context.Context, id int64) error {
	tag, err := ds.pool.Exec(ctx, `UPDATE links SET click_count = click_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment click count: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}

	return nil
}

func (ds *DatabaseStore) IsCodeUnique(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := ds.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM links WHERE short_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return !exists, nil
}

func scanLink(row pgx.Row) (model.Link, error) {
	var link model.Link
	err := row.Scan(
		&link.ID,
		&link.ShortCode,
		&link.UserID,
		&link.OriginalURL,
		&link.Title,
		&link.Description,
		&link.ClickCount,
		&link.IsActive,
		&link.ExpiresAt,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	return link, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
