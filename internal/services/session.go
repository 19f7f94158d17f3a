package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/crestrepo/photovault/internal/common"
	"github.com/crestrepo/photovault/internal/logging"
	"github.com/crestrepo/photovault/internal/models"
	"github.com/crestrepo/photovault/internal/repositories/session"
)

// SessionManager binds this device to at most one authenticated account
// identifier, written redundantly into two durable slots so the binding
// survives restarts independent of account data.
type SessionManager interface {
	// Bind writes the identifier into both slots. A write failure is returned
	// as an ErrBackend-wrapped error; the in-memory session stays
	// authoritative for the current process.
	Bind(ctx context.Context, identifier string) error

	// ResolveActive reads the slots and returns the stored identifier if it
	// resolves to a known account. A stale or unknown value means logged-out,
	// not an error.
	ResolveActive(ctx context.Context, known map[string]*models.Account) (string, bool)

	// Clear empties both slots unconditionally.
	Clear(ctx context.Context) error
}

type sessionManager struct {
	device session.Slot
	tab    session.Slot
	logger logging.Logger
}

func NewSessionManager(device, tab session.Slot, logger logging.Logger) SessionManager {
	return &sessionManager{device: device, tab: tab, logger: logger}
}

func (m *sessionManager) Bind(ctx context.Context, identifier string) error {
	err := errors.Join(
		m.device.Set(ctx, identifier),
		m.tab.Set(ctx, identifier),
	)
	if err != nil {
		m.logger.Warn(ctx, "failed to save session binding", "account", identifier, "error", err)
		return fmt.Errorf("%w: %v", common.ErrBackend, err)
	}
	return nil
}

func (m *sessionManager) ResolveActive(ctx context.Context, known map[string]*models.Account) (string, bool) {
	for _, slot := range []session.Slot{m.device, m.tab} {
		value, err := slot.Get(ctx)
		if err != nil {
			m.logger.Warn(ctx, "failed to read session slot", "error", err)
			continue
		}
		if value == "" {
			continue
		}
		if _, ok := known[value]; ok {
			return value, true
		}
	}
	return "", false
}

func (m *sessionManager) Clear(ctx context.Context) error {
	// Both slots are attempted even if the first removal fails.
	err := errors.Join(
		m.device.Remove(ctx),
		m.tab.Remove(ctx),
	)
	if err != nil {
		m.logger.Warn(ctx, "failed to clear session binding", "error", err)
		return fmt.Errorf("%w: %v", common.ErrBackend, err)
	}
	return nil
}
