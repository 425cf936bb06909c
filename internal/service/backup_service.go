package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"pos/internal/model"
	"pos/internal/repository"
	"pos/pkg/clock"
)

const backupVersion = 1

// Backup is a full export of the store data. On import, nil collections are left as they are.
type Backup struct {
	Version      int                 `json:"version"`
	ExportedAt   time.Time           `json:"exported_at"`
	Menu         []model.MenuItem    `json:"menu"`
	Stock        []model.StockItem   `json:"stock"`
	Transactions []model.Transaction `json:"transactions"`
	Settings     *model.Settings     `json:"settings"`
}

// BackupService exports, imports and resets the persisted collections.
type BackupService interface {
	Export() Backup
	Import(ctx context.Context, b Backup) error
	Reset(ctx context.Context) error
}

// BackupStores groups the collections a backup touches.
type BackupStores struct {
	Menu         repository.MenuRepository
	Stock        repository.StockRepository
	Transactions repository.TransactionRepository
	Settings     repository.SettingsRepository
}

type backupService struct {
	stores    BackupStores
	catalog   CatalogService
	ledger    *Ledger
	settings  SettingsService
	cart      *Cart
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	actor     Actor
	events    EventPublisher
	clock     clock.Clock
}

func NewBackupService(
	stores BackupStores,
	catalog CatalogService,
	ledger *Ledger,
	settings SettingsService,
	cart *Cart,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	actor Actor,
	events EventPublisher,
	clk clock.Clock,
) BackupService {
	return &backupService{
		stores:    stores,
		catalog:   catalog,
		ledger:    ledger,
		settings:  settings,
		cart:      cart,
		auditRepo: auditRepo,
		txManager: txManager,
		actor:     actor,
		events:    orDiscard(events),
		clock:     clk,
	}
}

func (s *backupService) Export() Backup {
	settings := s.settings.Get()
	return Backup{
		Version:      backupVersion,
		ExportedAt:   s.clock.Now(),
		Menu:         s.catalog.ListMenuItems(),
		Stock:        s.catalog.ListStockItems(),
		Transactions: s.ledger.List(),
		Settings:     &settings,
	}
}

// Import replaces every collection present in b in one database transaction,
// then reloads the in-memory stores.
func (s *backupService) Import(ctx context.Context, b Backup) error {
	if err := validateBackup(b); err != nil {
		return err
	}
	if b.Transactions != nil {
		b.Transactions = chronological(b.Transactions)
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if b.Menu != nil {
			if err := s.stores.Menu.Save(txCtx, b.Menu); err != nil {
				return err
			}
		}
		if b.Stock != nil {
			if err := s.stores.Stock.Save(txCtx, b.Stock); err != nil {
				return err
			}
		}
		if b.Transactions != nil {
			if err := s.stores.Transactions.Save(txCtx, b.Transactions); err != nil {
				return err
			}
		}
		if b.Settings != nil {
			if err := s.stores.Settings.Save(txCtx, *b.Settings); err != nil {
				return err
			}
		}
		return writeAudit(txCtx, s.auditRepo, auditEntry(s.actor, model.ActionImportBackup, "backup", "", map[string]int{
			"menu":         len(b.Menu),
			"stock":        len(b.Stock),
			"transactions": len(b.Transactions),
		}))
	})
	if err != nil {
		return fmt.Errorf("failed to import backup: %w", err)
	}

	if err := s.reload(ctx); err != nil {
		return err
	}
	s.events.Publish(EventCatalogChanged, map[string]interface{}{"action": "imported"})
	return nil
}

// Reset wipes every collection and restores the factory defaults.
func (s *backupService) Reset(ctx context.Context) error {
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		for _, wipe := range []func(context.Context) error{
			s.stores.Menu.Clear,
			s.stores.Stock.Clear,
			s.stores.Transactions.Clear,
			s.stores.Settings.Clear,
		} {
			if err := wipe(txCtx); err != nil {
				return err
			}
		}
		return writeAudit(txCtx, s.auditRepo, auditEntry(s.actor, model.ActionResetData, "all", "", nil))
	})
	if err != nil {
		return fmt.Errorf("failed to reset data: %w", err)
	}

	s.cart.Clear()
	if err := s.reload(ctx); err != nil {
		return err
	}
	s.events.Publish(EventDataReset, nil)
	return nil
}

func (s *backupService) reload(ctx context.Context) error {
	if err := s.catalog.Restore(ctx); err != nil {
		return fmt.Errorf("failed to reload catalog: %w", err)
	}
	if err := s.ledger.Restore(ctx); err != nil {
		return fmt.Errorf("failed to reload transactions: %w", err)
	}
	if err := s.settings.Restore(ctx); err != nil {
		return fmt.Errorf("failed to reload settings: %w", err)
	}
	return nil
}

func validateBackup(b Backup) error {
	seen := map[int64]bool{}
	for i, m := range b.Menu {
		if err := validateMenuItem(m); err != nil {
			return prefixField(fmt.Sprintf("menu[%d]", i), err)
		}
		if seen[m.ID] {
			return newValidationError(fmt.Sprintf("menu[%d].id", i), InvalidValue)
		}
		seen[m.ID] = true
	}

	clear(seen)
	for i, it := range b.Stock {
		if err := validateStockItem(it); err != nil {
			return prefixField(fmt.Sprintf("stock[%d]", i), err)
		}
		if seen[it.ID] {
			return newValidationError(fmt.Sprintf("stock[%d].id", i), InvalidValue)
		}
		seen[it.ID] = true
	}

	clear(seen)
	for i, t := range b.Transactions {
		if err := validateTransaction(t); err != nil {
			return prefixField(fmt.Sprintf("transactions[%d]", i), err)
		}
		if seen[t.ID] {
			return newValidationError(fmt.Sprintf("transactions[%d].id", i), InvalidValue)
		}
		seen[t.ID] = true
	}

	if b.Settings != nil {
		if err := validateRate(b.Settings.TaxRate); err != nil {
			return prefixField("settings", err)
		}
	}
	return nil
}

// validateTransaction checks the fields checkout guarantees for every sale.
func validateTransaction(t model.Transaction) error {
	switch {
	case t.ID <= 0:
		return newValidationError("id", InvalidValue)
	case len(t.Items) == 0:
		return newValidationError("items", MissingRequiredField)
	case !t.PaymentMethod.Valid():
		return newValidationError("payment_method", InvalidValue)
	case t.Timestamp.IsZero():
		return newValidationError("timestamp", MissingRequiredField)
	case t.Subtotal < 0:
		return newValidationError("subtotal", NegativeQuantity)
	case t.Tax < 0:
		return newValidationError("tax", NegativeQuantity)
	case t.ReceivedAmount < 0:
		return newValidationError("received_amount", NegativeQuantity)
	case t.Change < 0:
		return newValidationError("change", NegativeQuantity)
	case t.Total != t.Subtotal+t.Tax:
		return newValidationError("total", InvalidValue)
	}
	for i, l := range t.Items {
		if l.Quantity < 1 {
			return newValidationError(fmt.Sprintf("items[%d].quantity", i), InvalidValue)
		}
	}
	return nil
}

// chronological returns a copy ordered oldest first, ties broken by id.
func chronological(txns []model.Transaction) []model.Transaction {
	out := slices.Clone(txns)
	slices.SortStableFunc(out, func(a, b model.Transaction) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func prefixField(prefix string, err error) error {
	if v, ok := err.(*ValidationError); ok {
		return &ValidationError{Field: prefix + "." + v.Field, Kind: v.Kind}
	}
	return err
}
