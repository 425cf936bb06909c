package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pos/internal/model"

	"gorm.io/gorm"
)

// Collection persists one value of type T as a single document.
// Every Save rewrites the whole value.
type Collection[T any] interface {
	// Load returns found=false when nothing has been saved yet.
	Load(ctx context.Context) (value T, found bool, err error)
	Save(ctx context.Context, value T) error
	Clear(ctx context.Context) error
	Key() string
}

type collection[T any] struct {
	docs DocumentRepository
	key  string
}

// NewCollection binds a document key to the type stored under it.
func NewCollection[T any](docs DocumentRepository, key string) Collection[T] {
	return &collection[T]{docs: docs, key: key}
}

func (c *collection[T]) Key() string { return c.key }

func (c *collection[T]) Load(ctx context.Context) (T, bool, error) {
	var value T
	doc, err := c.docs.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return value, false, nil
		}
		return value, false, fmt.Errorf("failed to load %s: %w", c.key, err)
	}
	if err := json.Unmarshal([]byte(doc.Body), &value); err != nil {
		return value, false, fmt.Errorf("failed to decode %s: %w", c.key, err)
	}
	return value, true, nil
}

func (c *collection[T]) Save(ctx context.Context, value T) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.docs.Put(ctx, c.key, body); err != nil {
		return fmt.Errorf("failed to save %s: %w", c.key, err)
	}
	return nil
}

func (c *collection[T]) Clear(ctx context.Context) error {
	if err := c.docs.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", c.key, err)
	}
	return nil
}

type (
	SessionRepository     = Collection[model.SessionUser]
	MenuRepository        = Collection[[]model.MenuItem]
	StockRepository       = Collection[[]model.StockItem]
	TransactionRepository = Collection[[]model.Transaction]
	SettingsRepository    = Collection[model.Settings]
)

func NewSessionRepository(docs DocumentRepository) SessionRepository {
	return NewCollection[model.SessionUser](docs, model.DocSession)
}

func NewMenuRepository(docs DocumentRepository) MenuRepository {
	return NewCollection[[]model.MenuItem](docs, model.DocMenu)
}

func NewStockRepository(docs DocumentRepository) StockRepository {
	return NewCollection[[]model.StockItem](docs, model.DocStock)
}

func NewTransactionRepository(docs DocumentRepository) TransactionRepository {
	return NewCollection[[]model.Transaction](docs, model.DocTransactions)
}

func NewSettingsRepository(docs DocumentRepository) SettingsRepository {
	return NewCollection[model.Settings](docs, model.DocSettings)
}
