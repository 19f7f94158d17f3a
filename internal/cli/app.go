package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/crestrepo/photovault/internal/config"
	"github.com/crestrepo/photovault/internal/logging"
	"github.com/crestrepo/photovault/internal/models"
	"github.com/crestrepo/photovault/internal/repositories/accounts"
	"github.com/crestrepo/photovault/internal/repositories/session"
	"github.com/crestrepo/photovault/internal/services"
	"github.com/crestrepo/photovault/internal/storage"
)

// App is the interactive front end. It holds the currently bound account and
// the open viewer cursor; all vault semantics live in services.Core.
type App struct {
	config  *config.Config
	core    *services.Core
	account *models.Account
	cursor  *Cursor
	reader  *bufio.Reader
	logger  logging.Logger
	db      *sql.DB
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	tab, err := session.NewFileSlot(c.SessionDir, "session")
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	core := services.NewCore(
		accounts.NewSQLiteRepository(db),
		session.NewSQLiteSlot(db, "active_identifier"),
		tab,
		logger,
	)

	return &App{
		config: c,
		core:   core,
		reader: bufio.NewReader(os.Stdin),
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.account = a.core.InitAuth(ctx)
	if a.account != nil {
		printlnFn("Welcome back,", a.account.Username)
	}

	printlnFn("Photo vault CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.account != nil
}

// getStatus renders the prompt suffix: the bound account and, when the viewer
// is open, the photo position within its folder.
func (a *App) getStatus() string {
	if a.account == nil {
		return ""
	}
	s := a.account.Username
	if a.cursor != nil {
		if folder, photo := a.cursor.Resolve(a.account); photo != nil {
			s = fmt.Sprintf("%s %s %d/%d", s, folder.Name, a.cursor.Index+1, len(folder.Photos))
		}
	}
	return "(" + s + ")"
}
