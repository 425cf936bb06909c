package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"pos/internal/model"

	"github.com/tealeg/xlsx"
)

const exportDateLayout = "02/01/2006 15:04"

var exportHeader = []string{"No. Transaksi", "Tanggal", "Items", "Pembayaran", "Total"}

// ExportService writes transaction reports for download.
type ExportService interface {
	CSV(w io.Writer, txns []model.Transaction) error
	XLSX(w io.Writer, txns []model.Transaction, snap model.AnalyticsSnapshot) error
}

type exportService struct {
	loc *time.Location
}

func NewExportService(loc *time.Location) ExportService {
	if loc == nil {
		loc = time.Local
	}
	return &exportService{loc: loc}
}

func (s *exportService) CSV(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range txns {
		if err := cw.Write(s.row(t)); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *exportService) XLSX(w io.Writer, txns []model.Transaction, snap model.AnalyticsSnapshot) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transaksi")
	if err != nil {
		return fmt.Errorf("failed to create transactions sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range exportHeader {
		headerRow.AddCell().SetValue(h)
	}

	var total int64
	for _, t := range txns {
		row := sheet.AddRow()
		row.AddCell().SetValue(fmt.Sprintf("#%d", t.ID))
		row.AddCell().SetValue(t.Timestamp.In(s.loc).Format(exportDateLayout))
		row.AddCell().SetValue(itemsSummary(t.Items))
		row.AddCell().SetValue(string(t.PaymentMethod))
		row.AddCell().SetValue(t.Total)
		total += t.Total
	}
	footer := sheet.AddRow()
	footer.AddCell().SetValue("Total")
	footer.AddCell()
	footer.AddCell()
	footer.AddCell()
	footer.AddCell().SetValue(total)

	summary, err := file.AddSheet("Ringkasan")
	if err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	for _, kv := range []struct {
		label string
		value interface{}
	}{
		{"Periode", snap.Start.In(s.loc).Format("02/01/2006") + " - " + snap.End.In(s.loc).Format("02/01/2006")},
		{"Total Pendapatan", snap.TotalRevenue},
		{"Subtotal", snap.TotalSubtotal},
		{"Pajak", snap.TotalTax},
		{"Jumlah Pesanan", snap.TotalOrders},
		{"Rata-rata Pesanan", snap.AverageOrderValue},
	} {
		row := summary.AddRow()
		row.AddCell().SetValue(kv.label)
		row.AddCell().SetValue(kv.value)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

func (s *exportService) row(t model.Transaction) []string {
	return []string{
		fmt.Sprintf("#%d", t.ID),
		t.Timestamp.In(s.loc).Format(exportDateLayout),
		itemsSummary(t.Items),
		string(t.PaymentMethod),
		fmt.Sprintf("%d", t.Total),
	}
}

// itemsSummary renders lines as "Latte x2; Croissant x1".
func itemsSummary(lines []model.CartLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%s x%d", l.Name, l.Quantity))
	}
	return strings.Join(parts, "; ")
}
