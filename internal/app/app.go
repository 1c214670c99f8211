package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/stpnv0/HotelDesk/internal/config"
	"github.com/stpnv0/HotelDesk/internal/domain"
	"github.com/stpnv0/HotelDesk/internal/repository"
	"github.com/stpnv0/HotelDesk/internal/service"
	"github.com/stpnv0/HotelDesk/internal/shell"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg    *config.Config
	log    logger.Logger
	ledger *service.Ledger
	shell  *shell.Shell
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"HotelDesk",
		cfg.Logger.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	catalog := domain.NewCatalog(cfg.Hotel.Classes())
	store := repository.NewFileStore(cfg.Storage.Path, log)
	app.ledger = service.NewLedger(context.Background(), catalog, store, log)

	app.log.LogAttrs(context.Background(), logger.InfoLevel, "ledger loaded",
		logger.String("storage", cfg.Storage.Path),
		logger.Int("bookings", len(app.ledger.ListAll())),
	)

	app.shell = shell.New(app.ledger, os.Stdin, os.Stdout, cfg.Payment.ProcessingDelay)

	return app, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.shell.Run(ctx); err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
