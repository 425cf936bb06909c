package service

import (
	"context"
	"testing"

	"pos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestRestoreSeedsDefaults(t *testing.T) {
	f := newFixture(t)

	assert.Len(t, f.catalog.ListMenuItems(), len(testDefaults.Menu))
	assert.Len(t, f.catalog.ListStockItems(), len(testDefaults.Stock))

	stored, found, err := f.menuRepo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, testDefaults.Menu, stored)
}

func TestAddMenuItemAssignsFreshID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.catalog.AddMenuItem(ctx, CreateMenuItemRequest{Name: "Mocha", Price: 30000, Category: "Coffee"})
	require.NoError(t, err)
	b, err := f.catalog.AddMenuItem(ctx, CreateMenuItemRequest{Name: "Tea", Price: 12000, Category: "Beverage"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	for _, d := range testDefaults.Menu {
		assert.NotEqual(t, d.ID, a.ID)
	}

	items := f.catalog.ListMenuItems()
	require.Len(t, items, len(testDefaults.Menu)+2)
	assert.Equal(t, "Tea", items[len(items)-1].Name)
	assert.Contains(t, f.events.names(), EventCatalogChanged)
}

func TestAddMenuItemValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.catalog.AddMenuItem(ctx, CreateMenuItemRequest{Price: 1, Category: "Food"})
	var v *ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, MissingRequiredField, v.Kind)
	assert.Equal(t, "name", v.Field)

	_, err = f.catalog.AddMenuItem(ctx, CreateMenuItemRequest{Name: "X", Price: 1, Category: "Food", Stock: -1})
	assert.True(t, IsValidation(err))
	assert.Len(t, f.catalog.ListMenuItems(), len(testDefaults.Menu))
}

func TestUpdateMenuItemMergesFields(t *testing.T) {
	f := newFixture(t)

	got, found, err := f.catalog.UpdateMenuItem(context.Background(), 2, model.MenuItemPatch{Price: ptr(int64(26000))})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(26000), got.Price)
	assert.Equal(t, "Cappuccino", got.Name)
	assert.Equal(t, []string{"Coffee Beans", "Milk", "Water"}, got.Ingredients)
}

func TestUpdateAndDeleteUnknownAreNoOps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := f.catalog.ListMenuItems()

	_, found, err := f.catalog.UpdateMenuItem(ctx, 999, model.MenuItemPatch{Name: ptr("Ghost")})
	require.NoError(t, err)
	assert.False(t, found)

	found, err = f.catalog.DeleteMenuItem(ctx, 999)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = f.catalog.UpdateStockItem(ctx, 999, model.StockItemPatch{Delta: ptr(1)})
	require.NoError(t, err)
	assert.False(t, found)

	assert.Equal(t, before, f.catalog.ListMenuItems())
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.catalog.AddMenuItem(ctx, CreateMenuItemRequest{Name: "A", Price: 1, Category: "Food"})
	require.NoError(t, err)
	found, err := f.catalog.DeleteMenuItem(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, found)

	b, err := f.catalog.AddMenuItem(ctx, CreateMenuItemRequest{Name: "B", Price: 1, Category: "Food"})
	require.NoError(t, err)
	assert.Greater(t, b.ID, a.ID)
}

func TestMutationRolledBackOnStorageFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := f.catalog.ListMenuItems()

	f.menuRepo.fail = true
	_, err := f.catalog.AddMenuItem(ctx, CreateMenuItemRequest{Name: "Mocha", Price: 30000, Category: "Coffee"})
	assert.ErrorIs(t, err, errStorage)
	_, _, err = f.catalog.UpdateMenuItem(ctx, 1, model.MenuItemPatch{Name: ptr("Doppio")})
	assert.ErrorIs(t, err, errStorage)

	assert.Equal(t, before, f.catalog.ListMenuItems())
	_, total, err := f.audit.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestUpdateStockItemDeltaAndAbsolute(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, _, err := f.catalog.UpdateStockItem(ctx, 1, model.StockItemPatch{Delta: ptr(10)})
	require.NoError(t, err)
	assert.Equal(t, 510, got.Quantity)

	got, _, err = f.catalog.UpdateStockItem(ctx, 1, model.StockItemPatch{Quantity: ptr(40), Delta: ptr(-1)})
	require.NoError(t, err)
	assert.Equal(t, 39, got.Quantity)
	assert.Contains(t, f.events.names(), EventStockLow)

	_, _, err = f.catalog.UpdateStockItem(ctx, 1, model.StockItemPatch{Delta: ptr(-100)})
	var v *ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, NegativeQuantity, v.Kind)

	item, _ := f.catalog.GetStockItem(1)
	assert.Equal(t, 39, item.Quantity)
}

func TestLowStockItems(t *testing.T) {
	f := newFixture(t)

	low := f.catalog.LowStockItems()
	require.Len(t, low, 1)
	assert.Equal(t, "Milk", low[0].Name)
}

func TestStockAddAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sugar, err := f.catalog.AddStockItem(ctx, CreateStockItemRequest{Name: "Sugar", Quantity: 10, Unit: "kg", MinStock: 2})
	require.NoError(t, err)
	assert.Len(t, f.catalog.ListStockItems(), 3)

	found, err := f.catalog.DeleteStockItem(ctx, sugar.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, f.catalog.ListStockItems(), 2)

	_, err = f.catalog.AddStockItem(ctx, CreateStockItemRequest{Name: "Salt", Quantity: 1})
	assert.True(t, IsValidation(err))
}

func TestCatalogSurvivesRestart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "manager", "manager123")

	added, err := f.catalog.AddMenuItem(ctx, CreateMenuItemRequest{Name: "Mocha", Price: 30000, Category: "Coffee", Ingredients: []string{" Milk ", ""}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk"}, added.Ingredients)

	reloaded := NewCatalogService(f.menuRepo, f.stockRepo, f.audit, f.tx, f.session, nil, f.clock, CatalogDefaults{})
	require.NoError(t, reloaded.Restore(ctx))
	got, ok := reloaded.GetMenuItem(added.ID)
	require.True(t, ok)
	assert.Equal(t, added, got)

	logs, _, err := f.audit.List(ctx, 0, 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, model.ActionCreateMenuItem, logs[0].Action)
	assert.Equal(t, "manager", logs[0].Username)
}
