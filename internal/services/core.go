package services

import (
	"context"
	"errors"

	"github.com/crestrepo/photovault/internal/common"
	"github.com/crestrepo/photovault/internal/logging"
	"github.com/crestrepo/photovault/internal/models"
	"github.com/crestrepo/photovault/internal/repositories/accounts"
	"github.com/crestrepo/photovault/internal/repositories/session"
)

// Core is the surface the presenter consumes. It owns the session context
// explicitly: InitAuth establishes it at startup, Register/Login rebind it,
// Logout tears it down. Vault operations are reached through Vault().
type Core struct {
	accounts AccountService
	session  SessionManager
	vault    VaultService
	logger   logging.Logger
}

func NewCore(repo accounts.Repository, device, tab session.Slot, logger logging.Logger) *Core {
	accountSvc := NewAccountService(repo, logger)
	return &Core{
		accounts: accountSvc,
		session:  NewSessionManager(device, tab, logger),
		vault:    NewVaultService(accountSvc, logger),
		logger:   logger,
	}
}

// InitAuth loads the account snapshot and resolves the persisted session
// binding. Returns the bound account, or nil when nobody is logged in.
func (c *Core) InitAuth(ctx context.Context) *models.Account {
	c.accounts.LoadAll(ctx)

	identifier, ok := c.session.ResolveActive(ctx, c.accounts.All())
	if !ok {
		return nil
	}
	acc, _ := c.accounts.Get(identifier)
	return acc
}

// Register creates the account and binds the session to it, mirroring the
// auto-login after registration. Backend write failures from either step are
// warning-grade: the account is still returned alongside the joined error.
func (c *Core) Register(ctx context.Context, identifier, credential string) (*models.Account, error) {
	acc, err := c.accounts.Register(ctx, identifier, credential)
	if err != nil && !errors.Is(err, common.ErrBackend) {
		return nil, err
	}

	bindErr := c.session.Bind(ctx, acc.Username)
	return acc, errors.Join(err, bindErr)
}

// Login authenticates and binds the session. A bind failure is returned as a
// warning-grade error with the account still attached.
func (c *Core) Login(ctx context.Context, identifier, credential string) (*models.Account, error) {
	acc, err := c.accounts.Authenticate(ctx, identifier, credential)
	if err != nil {
		return nil, err
	}
	return acc, c.session.Bind(ctx, acc.Username)
}

// Logout clears the persisted session binding.
func (c *Core) Logout(ctx context.Context) error {
	return c.session.Clear(ctx)
}

// Vault exposes the folder/photo operations for the bound account.
func (c *Core) Vault() VaultService {
	return c.vault
}

// Accounts exposes the account store, mainly for the presenter's status line.
func (c *Core) Accounts() AccountService {
	return c.accounts
}
