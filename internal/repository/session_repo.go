package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SessionRepository is the persisted process-wide key-value store backing the
// session contract: one token and one serialized user profile at a time.
type SessionRepository interface {
	Save(ctx context.Context, token string, user []byte) error
	Load(ctx context.Context) (token string, user []byte, err error)
	Clear(ctx context.Context) error
	Close() error
}

const sessionSchema = `
CREATE TABLE IF NOT EXISTS session (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

const (
	sessionKeyToken = "token"
	sessionKeyUser  = "user"
)

type sqliteSessionRepository struct {
	db *sql.DB
}

// NewSQLiteSessionRepository opens (or creates) the session database at path.
func NewSQLiteSessionRepository(path string) (*sqliteSessionRepository, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, fmt.Errorf("session store: create dir %q: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("session store: open %q: %w", path, err)
	}
	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(sessionSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("session store: apply schema: %w", err)
	}

	return &sqliteSessionRepository{db: db}, nil
}

func (r *sqliteSessionRepository) Save(ctx context.Context, token string, user []byte) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("session store: begin: %w", err)
	}
	defer tx.Rollback()

	const upsert = `
INSERT INTO session (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := tx.ExecContext(ctx, upsert, sessionKeyToken, token); err != nil {
		return fmt.Errorf("session store: save token: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, sessionKeyUser, string(user)); err != nil {
		return fmt.Errorf("session store: save user: %w", err)
	}

	return tx.Commit()
}

// Load returns an empty token when nothing is persisted; that is the
// unauthenticated state, not an error.
func (r *sqliteSessionRepository) Load(ctx context.Context) (string, []byte, error) {
	token, err := r.get(ctx, sessionKeyToken)
	if err != nil {
		return "", nil, err
	}
	if token == "" {
		return "", nil, nil
	}

	user, err := r.get(ctx, sessionKeyUser)
	if err != nil {
		return "", nil, err
	}
	return token, []byte(user), nil
}

func (r *sqliteSessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("session store: clear: %w", err)
	}
	return nil
}

func (r *sqliteSessionRepository) Close() error {
	return r.db.Close()
}

func (r *sqliteSessionRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session store: get %s: %w", key, err)
	}
	return value, nil
}
