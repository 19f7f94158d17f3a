// Package services contains the application services of the photo vault:
// the account store, the session manager, the folder/photo vault operations,
// and the Core facade the presenter talks to.
package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/crestrepo/photovault/internal/common"
	"github.com/crestrepo/photovault/internal/logging"
	"github.com/crestrepo/photovault/internal/models"
	"github.com/crestrepo/photovault/internal/repositories/accounts"
)

// AccountService is the account store: an in-memory cache of every known
// account, synchronized to the durable backend. It owns identifier
// uniqueness and the credential check.
//
// Backend failures never propagate as hard errors: LoadAll degrades to an
// empty store, and Persist reports an error wrapping common.ErrBackend while
// the in-memory state stays authoritative for the rest of the session.
type AccountService interface {
	// LoadAll reads the full backend snapshot into the cache. Call once at
	// startup.
	LoadAll(ctx context.Context)

	// Register creates and persists a new account. When persistence fails the
	// registration stands in memory: the account is returned together with an
	// ErrBackend-wrapped error.
	Register(ctx context.Context, identifier, credential string) (*models.Account, error)

	// Authenticate looks up the identifier and checks the credential for
	// exact equality.
	Authenticate(ctx context.Context, identifier, credential string) (*models.Account, error)

	// Persist upserts one account's full record into the backend.
	Persist(ctx context.Context, account *models.Account) error

	// Get returns a cached account by normalized identifier.
	Get(identifier string) (*models.Account, bool)

	// All exposes the cache, keyed by normalized identifier.
	All() map[string]*models.Account
}

type accountService struct {
	repo   accounts.Repository
	cache  map[string]*models.Account
	logger logging.Logger
}

func NewAccountService(repo accounts.Repository, logger logging.Logger) AccountService {
	return &accountService{
		repo:   repo,
		cache:  make(map[string]*models.Account),
		logger: logger,
	}
}

func (s *accountService) LoadAll(ctx context.Context) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		// Cold start degrades to "no accounts known" rather than failing hard.
		s.logger.Warn(ctx, "failed to load accounts, starting empty", "error", err)
		s.cache = make(map[string]*models.Account)
		return
	}

	cache := make(map[string]*models.Account, len(all))
	for _, acc := range all {
		cache[acc.Username] = acc
	}
	s.cache = cache
	s.logger.Info(ctx, "accounts loaded", "count", len(cache))
}

func (s *accountService) Register(ctx context.Context, identifier, credential string) (*models.Account, error) {
	norm := models.NormalizeIdentifier(identifier)
	if err := models.ValidateIdentifier(norm); err != nil {
		return nil, err
	}
	if err := models.ValidateCredential(credential); err != nil {
		return nil, err
	}
	if _, exists := s.cache[norm]; exists {
		return nil, common.ErrIdentifierTaken
	}

	acc := models.NewAccount(norm, credential)
	s.cache[norm] = acc

	if err := s.Persist(ctx, acc); err != nil {
		return acc, err
	}
	return acc, nil
}

func (s *accountService) Authenticate(ctx context.Context, identifier, credential string) (*models.Account, error) {
	norm := models.NormalizeIdentifier(identifier)
	if err := models.ValidateIdentifier(norm); err != nil {
		return nil, err
	}
	if err := models.ValidateCredential(credential); err != nil {
		return nil, err
	}

	acc, ok := s.cache[norm]
	if !ok {
		return nil, common.ErrAccountNotFound
	}
	if subtle.ConstantTimeCompare([]byte(acc.Password), []byte(credential)) == 0 {
		return nil, common.ErrWrongCredential
	}
	return acc, nil
}

func (s *accountService) Persist(ctx context.Context, account *models.Account) error {
	if err := s.repo.Save(ctx, account); err != nil {
		s.logger.Warn(ctx, "failed to persist account", "account", account.Username, "error", err)
		return fmt.Errorf("%w: %v", common.ErrBackend, err)
	}
	return nil
}

func (s *accountService) Get(identifier string) (*models.Account, bool) {
	acc, ok := s.cache[models.NormalizeIdentifier(identifier)]
	return acc, ok
}

func (s *accountService) All() map[string]*models.Account {
	return s.cache
}
