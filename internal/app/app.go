// Package app assembles the stores, services and HTTP surface of the point of sale.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"pos/internal/config"
	"pos/internal/database"
	"pos/internal/middleware"
	"pos/internal/model"
	"pos/internal/repository"
	"pos/internal/seed"
	"pos/internal/service"
	"pos/internal/websocket"
	"pos/pkg/clock"

	"gorm.io/gorm"
)

// App holds every long-lived component. It is built once per process.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Clock  clock.Clock

	Hub  *websocket.Hub
	Auth *middleware.Authenticator

	Session  service.SessionService
	Catalog  service.CatalogService
	Cart     *service.Cart
	Ledger   *service.Ledger
	Checkout service.CheckoutService
	Settings service.SettingsService
	Backup   service.BackupService
	Reports  service.ReportService
	Export   service.ExportService
	Receipts service.ReceiptService
	Roles    service.RoleService
	Audit    service.AuditService

	cancel context.CancelFunc
}

// New opens the configured database and builds the application.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := database.NewConnection(cfg)
	if err != nil {
		return nil, err
	}
	a, err := NewWithDB(ctx, cfg, db, clock.System{}, logger)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	return a, nil
}

// NewWithDB builds the application on an already migrated database and
// restores every store from it.
func NewWithDB(ctx context.Context, cfg *config.Config, db *gorm.DB, clk clock.Clock, logger *slog.Logger) (*App, error) {
	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	creds, err := service.HashCredentials(credentialInputs(data.Users), cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	hubCtx, cancel := context.WithCancel(context.Background())
	a := &App{Config: cfg, Logger: logger, DB: db, Clock: clk, cancel: cancel}
	a.Hub = websocket.NewHub(logger)
	go a.Hub.Run(hubCtx)

	// Repositories
	docs := repository.NewDocumentRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	txManager := repository.NewTransactionManager(db)
	menuRepo := repository.NewMenuRepository(docs)
	stockRepo := repository.NewStockRepository(docs)
	txnRepo := repository.NewTransactionRepository(docs)
	settingsRepo := repository.NewSettingsRepository(docs)

	// Services
	a.Session = service.NewSessionService(creds, repository.NewSessionRepository(docs), auditRepo, txManager, a.Hub, clk, logger)
	a.Catalog = service.NewCatalogService(menuRepo, stockRepo, auditRepo, txManager, a.Session, a.Hub, clk,
		service.CatalogDefaults{Menu: data.Menu, Stock: data.Stock})
	a.Cart = service.NewCart()
	a.Ledger = service.NewLedger(txnRepo)
	a.Checkout = service.NewCheckoutService(a.Cart, a.Ledger, txnRepo, auditRepo, txManager, a.Session, a.Hub, clk, cfg.CheckoutTaxRate, logger)
	a.Settings = service.NewSettingsService(settingsRepo, auditRepo, txManager, a.Session, model.DefaultSettings())
	a.Backup = service.NewBackupService(service.BackupStores{
		Menu:         menuRepo,
		Stock:        stockRepo,
		Transactions: txnRepo,
		Settings:     settingsRepo,
	}, a.Catalog, a.Ledger, a.Settings, a.Cart, auditRepo, txManager, a.Session, a.Hub, clk)
	a.Reports = service.NewReportService(a.Ledger, a.Catalog, clk, cfg.Location)
	a.Export = service.NewExportService(cfg.Location)
	a.Receipts = service.NewReceiptService(a.Settings, cfg.Location)
	a.Roles = service.NewRoleService()
	a.Audit = service.NewAuditService(auditRepo)

	a.Auth = middleware.NewAuthenticator(cfg.JWTSecret, cfg.SessionTTL, cfg.GinMode == "release", a.Session, clk)

	if err := a.restore(ctx); err != nil {
		cancel()
		return nil, err
	}
	return a, nil
}

func (a *App) restore(ctx context.Context) error {
	if err := a.Session.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if err := a.Catalog.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore catalog: %w", err)
	}
	if err := a.Ledger.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore transactions: %w", err)
	}
	if err := a.Settings.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore settings: %w", err)
	}

	if stored := a.Settings.Get().TaxRate; !stored.Equal(a.Checkout.TaxRate()) {
		a.Logger.Warn("settings tax rate differs from checkout tax rate; checkout uses CHECKOUT_TAX_RATE",
			"settings_tax_rate", stored.String(),
			"checkout_tax_rate", a.Checkout.TaxRate().String())
	}
	a.Logger.Info("stores restored",
		"menu_items", len(a.Catalog.ListMenuItems()),
		"stock_items", len(a.Catalog.ListStockItems()),
		"transactions", a.Ledger.Len())
	return nil
}

// Close stops the websocket hub and releases the database.
func (a *App) Close() error {
	a.cancel()
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func credentialInputs(users []seed.User) []service.CredentialInput {
	out := make([]service.CredentialInput, 0, len(users))
	for _, u := range users {
		out = append(out, service.CredentialInput{
			ID:       u.ID,
			Username: u.Username,
			Password: u.Password,
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
		})
	}
	return out
}
