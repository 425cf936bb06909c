package service

import (
	"fmt"
	"strings"
	"time"

	"pos/internal/model"
	"pos/pkg/currency"
)

const receiptWidth = 40

// ReceiptService renders printable plain-text receipts.
type ReceiptService interface {
	Render(t model.Transaction) string
}

type receiptService struct {
	settings SettingsService
	loc      *time.Location
}

func NewReceiptService(settings SettingsService, loc *time.Location) ReceiptService {
	if loc == nil {
		loc = time.Local
	}
	return &receiptService{settings: settings, loc: loc}
}

func (s *receiptService) Render(t model.Transaction) string {
	st := s.settings.Get()
	money := currency.New(st.Language, st.Currency)
	var b strings.Builder

	center(&b, st.CompanyName)
	center(&b, st.Address)
	center(&b, st.Phone)
	rule(&b)
	fmt.Fprintf(&b, "No: #%d\n", t.ID)
	fmt.Fprintf(&b, "Tanggal: %s\n", t.Timestamp.In(s.loc).Format(exportDateLayout))
	if t.CashierName != "" {
		fmt.Fprintf(&b, "Kasir: %s\n", t.CashierName)
	}
	fmt.Fprintf(&b, "Pelanggan: %s\n", t.CustomerName)
	rule(&b)
	for _, l := range t.Items {
		b.WriteString(l.Name + "\n")
		pair(&b, fmt.Sprintf("  %d x %s", l.Quantity, money.Format(l.Price)), money.Format(l.LineTotal()))
	}
	rule(&b)
	pair(&b, "Subtotal", money.Format(t.Subtotal))
	pair(&b, "Pajak ("+t.TaxRate.Shift(2).String()+"%)", money.Format(t.Tax))
	pair(&b, "Total", money.Format(t.Total))
	pair(&b, "Bayar ("+string(t.PaymentMethod)+")", money.Format(t.ReceivedAmount))
	pair(&b, "Kembali", money.Format(t.Change))
	rule(&b)
	center(&b, st.ReceiptFooter)
	return b.String()
}

func center(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	pad := (receiptWidth - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + s + "\n")
}

func pair(b *strings.Builder, left, right string) {
	gap := receiptWidth - len([]rune(left)) - len([]rune(right))
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + right + "\n")
}

func rule(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", receiptWidth) + "\n")
}
