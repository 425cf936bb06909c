package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pos/internal/model"
	"pos/internal/repository"
	"pos/internal/testutil"
	"pos/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errStorage = errors.New("storage unavailable")

var jakarta = time.FixedZone("WIB", 7*3600)

// fixedNow is a Wednesday afternoon in Jakarta.
var fixedNow = time.Date(2024, time.March, 13, 14, 30, 0, 0, jakarta)

type recordedEvent struct {
	Name string
	Data interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Publish(event string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Name: event, Data: data})
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Name
	}
	return out
}

// failingCollection wraps a collection and fails every Save while fail is set.
type failingCollection[T any] struct {
	repository.Collection[T]
	fail bool
}

func (f *failingCollection[T]) Save(ctx context.Context, v T) error {
	if f.fail {
		return errStorage
	}
	return f.Collection.Save(ctx, v)
}

type fixture struct {
	db           *gorm.DB
	clock        *clock.Manual
	events       *recordingPublisher
	docs         repository.DocumentRepository
	audit        repository.AuditRepository
	tx           repository.TransactionManager
	menuRepo     *failingCollection[[]model.MenuItem]
	stockRepo    *failingCollection[[]model.StockItem]
	txnRepo      *failingCollection[[]model.Transaction]
	settingsRepo repository.SettingsRepository

	session  SessionService
	catalog  CatalogService
	cart     *Cart
	ledger   *Ledger
	checkout CheckoutService
	settings SettingsService
	backup   BackupService
	reports  ReportService
}

var testCredentials = []CredentialInput{
	{ID: 1, Username: "superadmin", Password: "super123", Name: "Super Administrator", Role: model.RoleSuperAdmin},
	{ID: 3, Username: "manager", Password: "manager123", Name: "Store Manager", Role: model.RoleManager},
	{ID: 4, Username: "kasir", Password: "kasir123", Name: "Kasir", Role: model.RoleCashier},
}

var testDefaults = CatalogDefaults{
	Menu: []model.MenuItem{
		{ID: 1, Name: "Espresso", Price: 15000, Category: model.CategoryCoffee, Stock: 50, Ingredients: []string{"Coffee Beans", "Water"}},
		{ID: 2, Name: "Cappuccino", Price: 25000, Category: model.CategoryCoffee, Stock: 45, Ingredients: []string{"Coffee Beans", "Milk", "Water"}},
		{ID: 5, Name: "Croissant", Price: 18000, Category: model.CategoryFood, Stock: 0},
	},
	Stock: []model.StockItem{
		{ID: 1, Name: "Coffee Beans", Quantity: 500, Unit: "kg", MinStock: 50},
		{ID: 2, Name: "Milk", Quantity: 20, Unit: "liter", MinStock: 30},
	},
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &fixture{
		db:     testutil.NewDB(t),
		clock:  clock.NewManual(fixedNow),
		events: &recordingPublisher{},
	}
	f.docs = repository.NewDocumentRepository(f.db)
	f.audit = repository.NewAuditRepository(f.db)
	f.tx = repository.NewTransactionManager(f.db)
	f.menuRepo = &failingCollection[[]model.MenuItem]{Collection: repository.NewMenuRepository(f.docs)}
	f.stockRepo = &failingCollection[[]model.StockItem]{Collection: repository.NewStockRepository(f.docs)}
	f.txnRepo = &failingCollection[[]model.Transaction]{Collection: repository.NewTransactionRepository(f.docs)}
	f.settingsRepo = repository.NewSettingsRepository(f.docs)

	creds, err := HashCredentials(testCredentials, bcrypt.MinCost)
	require.NoError(t, err)

	f.session = NewSessionService(creds, repository.NewSessionRepository(f.docs), f.audit, f.tx, nil, f.clock, logger)
	f.catalog = NewCatalogService(f.menuRepo, f.stockRepo, f.audit, f.tx, f.session, f.events, f.clock, testDefaults)
	f.cart = NewCart()
	f.ledger = NewLedger(f.txnRepo)
	f.checkout = NewCheckoutService(f.cart, f.ledger, f.txnRepo, f.audit, f.tx, f.session, f.events, f.clock, decimal.RequireFromString("0.10"), logger)
	f.settings = NewSettingsService(f.settingsRepo, f.audit, f.tx, f.session, model.DefaultSettings())
	f.backup = NewBackupService(f.backupStores(), f.catalog, f.ledger, f.settings, f.cart, f.audit, f.tx, f.session, f.events, f.clock)
	f.reports = NewReportService(f.ledger, f.catalog, f.clock, jakarta)

	require.NoError(t, f.catalog.Restore(ctx))
	require.NoError(t, f.ledger.Restore(ctx))
	require.NoError(t, f.settings.Restore(ctx))
	return f
}

func (f *fixture) login(t *testing.T, username, password string) *model.SessionUser {
	t.Helper()
	u, err := f.session.Login(context.Background(), LoginRequest{Username: username, Password: password})
	require.NoError(t, err)
	return u
}

func (f *fixture) menuItem(t *testing.T, id int64) model.MenuItem {
	t.Helper()
	m, ok := f.catalog.GetMenuItem(id)
	require.True(t, ok, "menu item %d", id)
	return m
}

func (f *fixture) backupStores() BackupStores {
	return BackupStores{Menu: f.menuRepo, Stock: f.stockRepo, Transactions: f.txnRepo, Settings: f.settingsRepo}
}
