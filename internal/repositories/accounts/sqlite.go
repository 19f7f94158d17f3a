// Package accounts persists account documents in the local sqlite database.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crestrepo/photovault/internal/dbx"
	"github.com/crestrepo/photovault/internal/models"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or
// *sql.Tx). Each account is one row: normalized identifier plus the JSON
// document holding the whole folder/photo tree.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save upserts the full account document by username.
func (r *SQLiteRepository) Save(ctx context.Context, account *models.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to encode account %q: %w", account.Username, err)
	}

	query := `INSERT INTO accounts (username, data)
			VALUES (?, ?)
			ON CONFLICT(username) DO UPDATE SET data = excluded.data
	`
	if _, err := r.db.ExecContext(ctx, query, account.Username, data); err != nil {
		return fmt.Errorf("failed to upsert account %q: %w", account.Username, err)
	}
	return nil
}

// GetAll reads the full snapshot of stored accounts.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]*models.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}
	defer rows.Close()

	var result []*models.Account
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		acc := &models.Account{}
		if err := json.Unmarshal(data, acc); err != nil {
			return nil, fmt.Errorf("failed to decode account document: %w", err)
		}
		result = append(result, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
