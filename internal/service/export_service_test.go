package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"pos/internal/model"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func exportFixture() []model.Transaction {
	return []model.Transaction{
		{
			ID:            1710315000000,
			Items:         []model.CartLine{line(1, "Espresso", 15000, 2), line(5, "Croissant", 18000, 1)},
			Total:         52800,
			PaymentMethod: model.PaymentCash,
			Timestamp:     fixedNow,
		},
		{
			ID:            1710318600000,
			Items:         []model.CartLine{line(2, "Cappuccino", 25000, 1), line(7, "Roti, Keju", 0, 1)},
			Total:         27500,
			PaymentMethod: model.PaymentCard,
			Timestamp:     fixedNow.Add(time.Hour).UTC(),
		},
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExportService(jakarta).CSV(&buf, exportFixture()))

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "transactions_csv", buf.Bytes())
}

func TestExportCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExportService(jakarta).CSV(&buf, nil))
	assert.Equal(t, strings.Join(exportHeader, ",")+"\n", buf.String())
}

func TestExportXLSX(t *testing.T) {
	txns := exportFixture()
	snap := Summarize(txns, mustDayRange(t, fixedNow, fixedNow), jakarta)

	var buf bytes.Buffer
	require.NoError(t, NewExportService(jakarta).XLSX(&buf, txns, snap))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)

	sheet, ok := file.Sheet["Transaksi"]
	require.True(t, ok)
	require.Len(t, sheet.Rows, len(txns)+2)
	assert.Equal(t, "No. Transaksi", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "#1710315000000", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "13/03/2024 15:30", sheet.Rows[2].Cells[1].Value)
	assert.Equal(t, "Cappuccino x1; Roti, Keju x1", sheet.Rows[2].Cells[2].Value)
	assert.Equal(t, "Total", sheet.Rows[3].Cells[0].Value)
	assert.Equal(t, "80300", sheet.Rows[3].Cells[4].Value)

	summary, ok := file.Sheet["Ringkasan"]
	require.True(t, ok)
	assert.Equal(t, "Periode", summary.Rows[0].Cells[0].Value)
	assert.Equal(t, "13/03/2024 - 13/03/2024", summary.Rows[0].Cells[1].Value)
	assert.Equal(t, "80300", summary.Rows[1].Cells[1].Value)
}

func TestReceiptRender(t *testing.T) {
	f := newFixture(t)
	txn := model.Transaction{
		ID:             1710315000000,
		Items:          []model.CartLine{line(2, "Cappuccino", 25000, 1)},
		Subtotal:       25000,
		Tax:            2500,
		TaxRate:        decimal.RequireFromString("0.1"),
		Total:          27500,
		PaymentMethod:  model.PaymentCash,
		ReceivedAmount: 30000,
		Change:         2500,
		CustomerName:   "Guest",
		CashierName:    "Kasir",
		Timestamp:      fixedNow,
	}

	out := NewReceiptService(f.settings, jakarta).Render(txn)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	assert.Equal(t, "KopiBagus", strings.TrimSpace(lines[0]))
	assert.Contains(t, out, "No: #1710315000000\n")
	assert.Contains(t, out, "Tanggal: 13/03/2024 14:30\n")
	assert.Contains(t, out, "Kasir: Kasir\n")
	assert.Contains(t, out, "Pajak (10%)")
	assert.Equal(t, "Terima kasih atas kunjungan Anda!", strings.TrimSpace(lines[len(lines)-1]))
	for _, l := range lines {
		assert.LessOrEqual(t, len([]rune(l)), receiptWidth, "line %q", l)
	}

	var total string
	for _, l := range lines {
		if strings.HasPrefix(l, "Total") {
			total = l
		}
	}
	assert.True(t, strings.HasSuffix(total, "Rp 27.500"), total)
	assert.Len(t, []rune(total), receiptWidth)
}
