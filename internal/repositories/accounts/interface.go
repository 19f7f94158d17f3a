package accounts

import (
	"context"

	"github.com/crestrepo/photovault/internal/models"
)

// Repository is the durable account-document store the vault core depends on.
// Accounts are persisted whole: every Save rewrites the full document for one
// identifier, and GetAll returns the complete snapshot read at startup.
type Repository interface {
	// GetAll returns every stored account.
	GetAll(ctx context.Context) ([]*models.Account, error)

	// Save upserts one account's full record, keyed by its normalized
	// identifier.
	Save(ctx context.Context, account *models.Account) error
}
