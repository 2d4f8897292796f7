package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc-dev/link-shortener/internal/model"
	_ "github.com/tursodatabase/libsql-client-go/libsql" // драйвер Turso для libsql:// адресов
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS links (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		short_code   TEXT    NOT NULL UNIQUE,
		user_id      TEXT    NOT NULL,
		original_url TEXT    NOT NULL,
		title        TEXT,
		description  TEXT,
		click_count  INTEGER NOT NULL DEFAULT 0,
		is_active    INTEGER NOT NULL DEFAULT 1,
		expires_at   INTEGER,
		created_at   INTEGER NOT NULL,
		updated_at   INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS user_id_idx ON links (user_id)`,
	`CREATE INDEX IF NOT EXISTS created_at_idx ON links (created_at)`,
}

// SQLiteStore хранит ссылки в SQLite (локальный файл) или в Turso (libsql)
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLiteStore открывает базу и создает схему.
// Адреса libsql:// и wss:// обслуживаются драйвером Turso, остальное считается путем к файлу.
func OpenSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	driverName := "sqlite"
	if strings.HasPrefix(dsn, "libsql://") || strings.HasPrefix(dsn, "wss://") {
		driverName = "libsql"
	} else if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// SQLite допускает одного писателя
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply sqlite schema: %w", err)
		}
	}

	return &SQLiteStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// Ping проверяет соединение с базой
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close закрывает соединение с базой
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) Insert(ctx context.Context, link model.Link) (model.Link, error) {
	now := toUnixNano(s.now())
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO links (short_code, user_id, original_url, title, description, is_active, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+linkColumns,
		link.ShortCode,
		link.UserID,
		link.OriginalURL,
		nullString(link.Title),
		nullString(link.Description),
		link.IsActive,
		nullUnixNano(link.ExpiresAt),
		now,
		now,
	)

	created, err := scanSQLiteLink(row)
	if err != nil {
		if isSQLiteConstraintError(err) {
			return model.Link{}, fmt.Errorf("code %s: %w", link.ShortCode, ErrAlreadyExists)
		}
		return model.Link{}, fmt.Errorf("failed to insert link: %w", err)
	}

	return created, nil
}

func (s *SQLiteStore) UpdateByID(ctx context.Context, id int64, userID string, update model.LinkUpdate) (model.Link, error) {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
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
		set("expires_at", nullUnixNano(update.ExpiresAt.Value))
	}
	set("updated_at", toUnixNano(s.now()))

	args = append(args, id, userID)
	query := `UPDATE links SET ` + strings.Join(sets, ", ") +
		` WHERE id = ? AND user_id = ? RETURNING ` + linkColumns

	updated, err := scanSQLiteLink(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Link{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
		}
		if isSQLiteConstraintError(err) {
			return model.Link{}, fmt.Errorf("id %d: %w", id, ErrAlreadyExists)
		}
		return model.Link{}, fmt.Errorf("failed to update link: %w", err)
	}

	return updated, nil
}

func (s *SQLiteStore) DeleteByID(ctx context.Context, id int64, userID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM links WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	return expectAffected(res, id)
}

func (s *SQLiteStore) FindByShortCode(ctx context.Context, code string) (model.Link, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM links WHERE short_code = ?`, code)

	link, err := scanSQLiteLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to read link: %w", err)
	}

	return link, nil
}

func (s *SQLiteStore) FindByOwner(ctx context.Context, userID string) ([]model.Link, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+linkColumns+`
		FROM links
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user links: %w", err)
	}
	defer rows.Close()

	links := make([]model.Link, 0)
	for rows.Next() {
		link, err := scanSQLiteLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user link: %w", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user links: %w", err)
	}

	return links, nil
}

func (s *SQLiteStore) IncrementClickCount(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE links SET click_count = click_count + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to increment click count: %w", err)
	}

	return expectAffected(res, id)
}

func (s *SQLiteStore) IsCodeUnique(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM links WHERE short_code = ?)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return !exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteLink(row rowScanner) (model.Link, error) {
	var (
		link        model.Link
		title       sql.NullString
		description sql.NullString
		expiresAt   sql.NullInt64
		createdAt   int64
		updatedAt   int64
	)
	err := row.Scan(
		&link.ID,
		&link.ShortCode,
		&link.UserID,
		&link.OriginalURL,
		&title,
		&description,
		&link.ClickCount,
		&link.IsActive,
		&expiresAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return model.Link{}, err
	}

	if title.Valid {
		link.Title = &title.String
	}
	if description.Valid {
		link.Description = &description.String
	}
	if expiresAt.Valid {
		t := fromUnixNano(expiresAt.Int64)
		link.ExpiresAt = &t
	}
	link.CreatedAt = fromUnixNano(createdAt)
	link.UpdatedAt = fromUnixNano(updatedAt)

	return link, nil
}

func expectAffected(res sql.Result, id int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return nil
}

func isSQLiteConstraintError(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	// libsql возвращает текст ошибки без кода
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func toUnixNano(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromUnixNano(v int64) time.Time {
	return time.Unix(0, v).UTC()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullUnixNano(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toUnixNano(*t), Valid: true}
}
