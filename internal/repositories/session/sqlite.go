package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/crestrepo/photovault/internal/dbx"
)

// SQLiteSlot stores the identifier in the session key/value table of the
// vault database. Alongside the value it records when the binding was
// written; both rows are updated in one transaction.
type SQLiteSlot struct {
	db  *sql.DB
	key string
}

func NewSQLiteSlot(db *sql.DB, key string) *SQLiteSlot {
	return &SQLiteSlot{db: db, key: key}
}

func (s *SQLiteSlot) boundAtKey() string {
	return s.key + "_bound_at"
}

func (s *SQLiteSlot) Get(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, s.key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session[%s]: %w", s.key, err)
	}
	return value, nil
}

func (s *SQLiteSlot) Set(ctx context.Context, value string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := upsert(ctx, tx, s.key, value); err != nil {
			return err
		}
		return upsert(ctx, tx, s.boundAtKey(), time.Now().UTC().Format(time.RFC3339))
	})
}

func (s *SQLiteSlot) Remove(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`, s.key, s.boundAtKey())
		if err != nil {
			return fmt.Errorf("failed to clear session[%s]: %w", s.key, err)
		}
		return nil
	})
}

func upsert(ctx context.Context, tx dbx.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}
