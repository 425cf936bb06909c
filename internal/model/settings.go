package model

import "github.com/shopspring/decimal"

// Settings holds store-wide preferences shown on receipts and the back office.
type Settings struct {
	CompanyName   string          `json:"company_name" yaml:"company_name"`
	Address       string          `json:"address" yaml:"address"`
	Phone         string          `json:"phone" yaml:"phone"`
	Email         string          `json:"email" yaml:"email"`
	TaxRate       decimal.Decimal `json:"tax_rate" yaml:"-"`
	Currency      string          `json:"currency" yaml:"currency"`
	Language      string          `json:"language" yaml:"language"`
	Theme         string          `json:"theme" yaml:"theme"`
	ReceiptFooter string          `json:"receipt_footer" yaml:"receipt_footer"`
	AutoBackup    bool            `json:"auto_backup" yaml:"auto_backup"`
	LowStockAlert bool            `json:"low_stock_alert" yaml:"low_stock_alert"`
	PrintReceipt  bool            `json:"print_receipt" yaml:"print_receipt"`
}

// SettingsPatch carries a partial settings update.
type SettingsPatch struct {
	CompanyName   *string          `json:"company_name"`
	Address       *string          `json:"address"`
	Phone         *string          `json:"phone"`
	Email         *string          `json:"email"`
	TaxRate       *decimal.Decimal `json:"tax_rate"`
	Currency      *string          `json:"currency"`
	Language      *string          `json:"language"`
	Theme         *string          `json:"theme"`
	ReceiptFooter *string          `json:"receipt_footer"`
	AutoBackup    *bool            `json:"auto_backup"`
	LowStockAlert *bool            `json:"low_stock_alert"`
	PrintReceipt  *bool            `json:"print_receipt"`
}

// Apply merges the present fields of p into s.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.CompanyName != nil {
		s.CompanyName = *p.CompanyName
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.TaxRate != nil {
		s.TaxRate = *p.TaxRate
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.ReceiptFooter != nil {
		s.ReceiptFooter = *p.ReceiptFooter
	}
	if p.AutoBackup != nil {
		s.AutoBackup = *p.AutoBackup
	}
	if p.LowStockAlert != nil {
		s.LowStockAlert = *p.LowStockAlert
	}
	if p.PrintReceipt != nil {
		s.PrintReceipt = *p.PrintReceipt
	}
	return s
}

// DefaultSettings returns the factory settings.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:   "KopiBagus",
		Address:       "Jl. Kopi Bagus No. 123, Jakarta",
		Phone:         "(021) 123-4567",
		Email:         "info@kopibagus.com",
		TaxRate:       decimal.Zero,
		Currency:      "IDR",
		Language:      "id",
		Theme:         "dark",
		ReceiptFooter: "Terima kasih atas kunjungan Anda!",
		AutoBackup:    true,
		LowStockAlert: true,
		PrintReceipt:  true,
	}
}
