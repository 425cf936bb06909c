package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionLogin           = "LOGIN"
	ActionLogout          = "LOGOUT"
	ActionCreateMenuItem  = "CREATE_MENU_ITEM"
	ActionUpdateMenuItem  = "UPDATE_MENU_ITEM"
	ActionDeleteMenuItem  = "DELETE_MENU_ITEM"
	ActionCreateStockItem = "CREATE_STOCK_ITEM"
	ActionUpdateStockItem = "UPDATE_STOCK_ITEM"
	ActionDeleteStockItem = "DELETE_STOCK_ITEM"
	ActionCheckout        = "CHECKOUT"
	ActionUpdateSettings  = "UPDATE_SETTINGS"
	ActionImportBackup    = "IMPORT_BACKUP"
	ActionResetData       = "RESET_DATA"
)

// AuditLog tracks who did what and when. Rows are only ever appended.
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID     *int64    `gorm:"index" json:"user_id"` // nil for automated actions
	Username   string    `gorm:"type:varchar(100)" json:"username"`
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string    `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string    `gorm:"type:varchar(255)" json:"entity_name,omitempty"`
	Details    string    `gorm:"type:text" json:"details"` // JSON payload of the action
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate assigns the id on the client so both postgres and sqlite work.
func (a *AuditLog) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
