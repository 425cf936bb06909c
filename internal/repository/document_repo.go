package repository

import (
	"context"
	"errors"
	"time"

	"pos/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentRepository stores whole collections as JSON documents keyed by name.
type DocumentRepository interface {
	Get(ctx context.Context, key string) (*model.Document, error)
	Put(ctx context.Context, key string, body []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]model.Document, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Get returns gorm.ErrRecordNotFound when the key has never been written.
func (r *documentRepository) Get(ctx context.Context, key string) (*model.Document, error) {
	var doc model.Document
	if err := GetDB(ctx, r.db).Where("doc_key = ?", key).First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) Put(ctx context.Context, key string, body []byte) error {
	doc := model.Document{Key: key, Body: string(body), UpdatedAt: time.Now()}
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "doc_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&doc).Error
}

// Delete is idempotent.
func (r *documentRepository) Delete(ctx context.Context, key string) error {
	err := GetDB(ctx, r.db).Where("doc_key = ?", key).Delete(&model.Document{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (r *documentRepository) List(ctx context.Context) ([]model.Document, error) {
	var docs []model.Document
	if err := GetDB(ctx, r.db).Order("doc_key asc").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
