package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"pos/internal/model"
	"pos/internal/repository"
	"pos/pkg/clock"
)

// DTOs
type CreateMenuItemRequest struct {
	Name        string         `json:"name"`
	Price       int64          `json:"price"`
	Category    model.Category `json:"category"`
	Image       string         `json:"image"`
	Stock       int            `json:"stock"`
	Ingredients []string       `json:"ingredients"`
}

type CreateStockItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	MinStock int    `json:"min_stock"`
}

// CatalogDefaults is the factory menu and stock used when nothing is persisted.
type CatalogDefaults struct {
	Menu  []model.MenuItem
	Stock []model.StockItem
}

// CatalogService owns the menu and stock collections.
// Update and Delete of an unknown id are no-ops reported through found=false.
type CatalogService interface {
	ListMenuItems() []model.MenuItem
	GetMenuItem(id int64) (model.MenuItem, bool)
	AddMenuItem(ctx context.Context, req CreateMenuItemRequest) (model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, patch model.MenuItemPatch) (model.MenuItem, bool, error)
	DeleteMenuItem(ctx context.Context, id int64) (bool, error)

	ListStockItems() []model.StockItem
	GetStockItem(id int64) (model.StockItem, bool)
	LowStockItems() []model.StockItem
	AddStockItem(ctx context.Context, req CreateStockItemRequest) (model.StockItem, error)
	UpdateStockItem(ctx context.Context, id int64, patch model.StockItemPatch) (model.StockItem, bool, error)
	DeleteStockItem(ctx context.Context, id int64) (bool, error)

	Restore(ctx context.Context) error
}

type inventoryService struct {
	menuRepo  repository.MenuRepository
	stockRepo repository.StockRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	actor     Actor
	events    EventPublisher
	defaults  CatalogDefaults

	menuIDs  *clock.IDSequence
	stockIDs *clock.IDSequence
	menu     []model.MenuItem
	stock    []model.StockItem
}

func NewCatalogService(
	menuRepo repository.MenuRepository,
	stockRepo repository.StockRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	actor Actor,
	events EventPublisher,
	clk clock.Clock,
	defaults CatalogDefaults,
) CatalogService {
	return &inventoryService{
		menuRepo:  menuRepo,
		stockRepo: stockRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		actor:     actor,
		events:    orDiscard(events),
		defaults:  defaults,
		menuIDs:   clock.NewIDSequence(clk),
		stockIDs:  clock.NewIDSequence(clk),
	}
}

// --- Menu ---

func (s *inventoryService) ListMenuItems() []model.MenuItem {
	out := make([]model.MenuItem, len(s.menu))
	for i, m := range s.menu {
		out[i] = cloneMenuItem(m)
	}
	return out
}

func (s *inventoryService) GetMenuItem(id int64) (model.MenuItem, bool) {
	i := s.menuIndex(id)
	if i < 0 {
		return model.MenuItem{}, false
	}
	return cloneMenuItem(s.menu[i]), true
}

func (s *inventoryService) AddMenuItem(ctx context.Context, req CreateMenuItemRequest) (model.MenuItem, error) {
	item := model.MenuItem{
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Category:    model.Category(strings.TrimSpace(string(req.Category))),
		Image:       req.Image,
		Stock:       req.Stock,
		Ingredients: cleanIngredients(req.Ingredients),
	}
	if err := validateMenuItem(item); err != nil {
		return model.MenuItem{}, err
	}
	item.ID = s.menuIDs.Next()

	next := append(s.ListMenuItems(), item)
	entry := auditEntry(s.actor, model.ActionCreateMenuItem, idString(item.ID), item.Name, req)
	if err := s.commitMenu(ctx, next, entry); err != nil {
		return model.MenuItem{}, err
	}

	s.events.Publish(EventCatalogChanged, map[string]interface{}{"action": "created", "menu_item": item})
	return cloneMenuItem(item), nil
}

func (s *inventoryService) UpdateMenuItem(ctx context.Context, id int64, patch model.MenuItemPatch) (model.MenuItem, bool, error) {
	i := s.menuIndex(id)
	if i < 0 {
		return model.MenuItem{}, false, nil
	}

	item := cloneMenuItem(s.menu[i])
	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Category != nil {
		item.Category = model.Category(strings.TrimSpace(string(*patch.Category)))
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}
	if patch.Stock != nil {
		item.Stock = *patch.Stock
	}
	if patch.Ingredients != nil {
		item.Ingredients = cleanIngredients(patch.Ingredients)
	}
	if err := validateMenuItem(item); err != nil {
		return model.MenuItem{}, true, err
	}

	next := s.ListMenuItems()
	next[i] = item
	entry := auditEntry(s.actor, model.ActionUpdateMenuItem, idString(id), item.Name, patch)
	if err := s.commitMenu(ctx, next, entry); err != nil {
		return model.MenuItem{}, true, err
	}

	s.events.Publish(EventCatalogChanged, map[string]interface{}{"action": "updated", "menu_item": item})
	return cloneMenuItem(item), true, nil
}

func (s *inventoryService) DeleteMenuItem(ctx context.Context, id int64) (bool, error) {
	i := s.menuIndex(id)
	if i < 0 {
		return false, nil
	}
	removed := s.menu[i]

	next := slices.Delete(s.ListMenuItems(), i, i+1)
	entry := auditEntry(s.actor, model.ActionDeleteMenuItem, idString(id), removed.Name, nil)
	if err := s.commitMenu(ctx, next, entry); err != nil {
		return true, err
	}

	s.events.Publish(EventCatalogChanged, map[string]interface{}{"action": "deleted", "id": id})
	return true, nil
}

// --- Stock ---

func (s *inventoryService) ListStockItems() []model.StockItem {
	return slices.Clone(s.stock)
}

func (s *inventoryService) GetStockItem(id int64) (model.StockItem, bool) {
	i := s.stockIndex(id)
	if i < 0 {
		return model.StockItem{}, false
	}
	return s.stock[i], true
}

func (s *inventoryService) LowStockItems() []model.StockItem {
	var low []model.StockItem
	for _, it := range s.stock {
		if it.IsLow() {
			low = append(low, it)
		}
	}
	return low
}

func (s *inventoryService) AddStockItem(ctx context.Context, req CreateStockItemRequest) (model.StockItem, error) {
	item := model.StockItem{
		Name:     strings.TrimSpace(req.Name),
		Quantity: req.Quantity,
		Unit:     strings.TrimSpace(req.Unit),
		MinStock: req.MinStock,
	}
	if err := validateStockItem(item); err != nil {
		return model.StockItem{}, err
	}
	item.ID = s.stockIDs.Next()

	next := append(s.ListStockItems(), item)
	entry := auditEntry(s.actor, model.ActionCreateStockItem, idString(item.ID), item.Name, req)
	if err := s.commitStock(ctx, next, entry); err != nil {
		return model.StockItem{}, err
	}
	s.publishIfLow(item)
	return item, nil
}

func (s *inventoryService) UpdateStockItem(ctx context.Context, id int64, patch model.StockItemPatch) (model.StockItem, bool, error) {
	i := s.stockIndex(id)
	if i < 0 {
		return model.StockItem{}, false, nil
	}

	item := s.stock[i]
	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Delta != nil {
		item.Quantity += *patch.Delta
	}
	if patch.Unit != nil {
		item.Unit = strings.TrimSpace(*patch.Unit)
	}
	if patch.MinStock != nil {
		item.MinStock = *patch.MinStock
	}
	if err := validateStockItem(item); err != nil {
		return model.StockItem{}, true, err
	}

	next := s.ListStockItems()
	next[i] = item
	entry := auditEntry(s.actor, model.ActionUpdateStockItem, idString(id), item.Name, patch)
	if err := s.commitStock(ctx, next, entry); err != nil {
		return model.StockItem{}, true, err
	}
	s.publishIfLow(item)
	return item, true, nil
}

func (s *inventoryService) DeleteStockItem(ctx context.Context, id int64) (bool, error) {
	i := s.stockIndex(id)
	if i < 0 {
		return false, nil
	}
	removed := s.stock[i]

	next := slices.Delete(s.ListStockItems(), i, i+1)
	entry := auditEntry(s.actor, model.ActionDeleteStockItem, idString(id), removed.Name, nil)
	return true, s.commitStock(ctx, next, entry)
}

// Restore loads both collections, falling back to and persisting the defaults
// for any collection that was never saved.
func (s *inventoryService) Restore(ctx context.Context) error {
	menu, found, err := s.menuRepo.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		menu = make([]model.MenuItem, len(s.defaults.Menu))
		for i, m := range s.defaults.Menu {
			menu[i] = cloneMenuItem(m)
		}
		if err := s.menuRepo.Save(ctx, menu); err != nil {
			return err
		}
	}

	stock, found, err := s.stockRepo.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		stock = slices.Clone(s.defaults.Stock)
		if err := s.stockRepo.Save(ctx, stock); err != nil {
			return err
		}
	}

	s.menu, s.stock = menu, stock
	for _, m := range menu {
		s.menuIDs.Observe(m.ID)
	}
	for _, it := range stock {
		s.stockIDs.Observe(it.ID)
	}
	return nil
}

// commitMenu persists next with its audit entry and only then swaps it in.
func (s *inventoryService) commitMenu(ctx context.Context, next []model.MenuItem, entry *model.AuditLog) error {
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.menuRepo.Save(txCtx, next); err != nil {
			return err
		}
		return writeAudit(txCtx, s.auditRepo, entry)
	})
	if err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}
	s.menu = next
	return nil
}

func (s *inventoryService) commitStock(ctx context.Context, next []model.StockItem, entry *model.AuditLog) error {
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.stockRepo.Save(txCtx, next); err != nil {
			return err
		}
		return writeAudit(txCtx, s.auditRepo, entry)
	})
	if err != nil {
		return fmt.Errorf("failed to save stock: %w", err)
	}
	s.stock = next
	return nil
}

func (s *inventoryService) publishIfLow(item model.StockItem) {
	if item.IsLow() {
		s.events.Publish(EventStockLow, item)
	}
}

func (s *inventoryService) menuIndex(id int64) int {
	return slices.IndexFunc(s.menu, func(m model.MenuItem) bool { return m.ID == id })
}

func (s *inventoryService) stockIndex(id int64) int {
	return slices.IndexFunc(s.stock, func(it model.StockItem) bool { return it.ID == id })
}

func validateMenuItem(m model.MenuItem) error {
	switch {
	case m.Name == "":
		return newValidationError("name", MissingRequiredField)
	case m.Category == "":
		return newValidationError("category", MissingRequiredField)
	case m.Price < 0:
		return newValidationError("price", InvalidValue)
	case m.Stock < 0:
		return newValidationError("stock", NegativeQuantity)
	}
	return nil
}

func validateStockItem(it model.StockItem) error {
	switch {
	case it.Name == "":
		return newValidationError("name", MissingRequiredField)
	case it.Unit == "":
		return newValidationError("unit", MissingRequiredField)
	case it.Quantity < 0:
		return newValidationError("quantity", NegativeQuantity)
	case it.MinStock < 0:
		return newValidationError("min_stock", NegativeQuantity)
	}
	return nil
}

func cleanIngredients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, name := range in {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func cloneMenuItem(m model.MenuItem) model.MenuItem {
	m.Ingredients = slices.Clone(m.Ingredients)
	return m
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}
