package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enum simulation
type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "cash"
	PaymentCard    PaymentMethod = "card"
	PaymentDigital PaymentMethod = "digital"
)

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentDigital}

// Valid reports whether m is an accepted payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentDigital:
		return true
	}
	return false
}

// CartLine is a menu item snapshot with the quantity being purchased.
type CartLine struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// LineTotal returns price times quantity.
func (l CartLine) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Transaction is an immutable completed sale.
type Transaction struct {
	ID             int64           `json:"id"`
	Items          []CartLine      `json:"items"`
	Subtotal       int64           `json:"subtotal"`
	Tax            int64           `json:"tax"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	Total          int64           `json:"total"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	ReceivedAmount int64           `json:"received_amount"`
	Change         int64           `json:"change"`
	CustomerName   string          `json:"customer_name"`
	CustomerPhone  string          `json:"customer_phone"`
	CashierID      int64           `json:"cashier_id,omitempty"`
	CashierName    string          `json:"cashier_name,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}
