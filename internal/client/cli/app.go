package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/walletsession/internal/client/client"
	"github.com/dmitrijs2005/walletsession/internal/client/config"
	"github.com/dmitrijs2005/walletsession/internal/client/repositories/cookies"
	"github.com/dmitrijs2005/walletsession/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/walletsession/internal/client/services"
	"github.com/dmitrijs2005/walletsession/internal/client/wallet"
	"github.com/dmitrijs2005/walletsession/internal/logging"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	session  *services.WalletSession
	modal    *wallet.KeyModal
	approver *approver
	log      logging.Logger
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(c.LogLevel, os.Stderr)

	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	jar := cookies.NewSQLiteRepository(db)
	local := localstore.NewSQLiteRepository(db)

	api, err := client.NewHTTPClient(c.BackendURL, c.RequestTimeout, func(ctx context.Context) (string, bool, error) {
		return jar.Read(ctx, services.SessionCookieName)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	ap := &approver{}
	kw := wallet.NewKeyWallet(ap.Approve)

	modal, err := wallet.NewKeyModal(modalConfig(c), kw, keyReader(c.KeyFile, os.Stdout))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("wallet modal: %w", err)
	}

	session, err := services.NewWalletSession(services.Deps{
		API:     api,
		Wallet:  kw,
		Modal:   modal,
		Cookies: jar,
		Local:   local,
		Logger:  log,
	}, services.Options{WebsiteURL: c.WebsiteURL, VerifyDelay: c.VerifyDelay})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{config: c, db: db, session: session, modal: modal, approver: ap, log: log}, nil
}

func modalConfig(c *config.Config) wallet.ModalConfig {
	kinds := make([]wallet.ConnectorKind, 0, len(c.Connectors))
	for _, k := range c.Connectors {
		kinds = append(kinds, wallet.ConnectorKind(k))
	}
	return wallet.ModalConfig{Connectors: kinds, RPC: c.RPCEndpoints, ChainID: c.ChainID}
}

// Run blocks in the REPL until the user exits, then releases resources.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	a.session.Close()
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing database", "error", err)
	}
}
