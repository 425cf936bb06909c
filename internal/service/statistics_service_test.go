package service

import (
	"context"
	"testing"
	"time"

	"pos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sale(id int64, at time.Time, method model.PaymentMethod, lines ...model.CartLine) model.Transaction {
	subtotal := subtotalOf(lines)
	return model.Transaction{
		ID:            id,
		Items:         lines,
		Subtotal:      subtotal,
		Total:         subtotal,
		PaymentMethod: method,
		Timestamp:     at,
	}
}

func line(id int64, name string, price int64, qty int) model.CartLine {
	return model.CartLine{MenuItem: model.MenuItem{ID: id, Name: name, Price: price}, Quantity: qty}
}

func mustDayRange(t *testing.T, from, to time.Time) DateRange {
	t.Helper()
	r, err := DayRange(from, to, jakarta)
	require.NoError(t, err)
	return r
}

func TestSummarizeNoTransactionsKeepsEveryDay(t *testing.T) {
	from := fixedNow.AddDate(0, 0, -4)
	snap := Summarize(nil, mustDayRange(t, from, fixedNow), jakarta)

	assert.Zero(t, snap.TotalOrders)
	assert.Zero(t, snap.TotalRevenue)
	assert.Zero(t, snap.AverageOrderValue)
	require.Len(t, snap.Daily, 5)
	for i, day := range snap.Daily {
		assert.Equal(t, from.AddDate(0, 0, i).In(jakarta).Format("2006-01-02"), day.Date)
		assert.Zero(t, day.Revenue)
		assert.Zero(t, day.Orders)
	}
	assert.Empty(t, snap.TopProducts)
	assert.Empty(t, snap.PaymentDistribution)
}

func TestDayRangeLimits(t *testing.T) {
	r, err := DayRange(fixedNow, fixedNow.AddDate(0, 0, MaxReportDays-1), jakarta)
	require.NoError(t, err)
	assert.Len(t, Summarize(nil, r, jakarta).Daily, MaxReportDays)

	_, err = DayRange(fixedNow, fixedNow.AddDate(0, 0, MaxReportDays), jakarta)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "to", verr.Field)
	assert.Equal(t, InvalidValue, verr.Kind)

	_, err = DayRange(time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC), jakarta)
	assert.True(t, IsValidation(err))

	_, err = DayRange(fixedNow, fixedNow.AddDate(0, 0, -1), jakarta)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "from", verr.Field)

	same, err := DayRange(fixedNow.Add(time.Hour), fixedNow, jakarta)
	require.NoError(t, err, "same calendar day in either order")
	assert.True(t, same.Contains(fixedNow))
}

func TestSummarizeInvertedInterval(t *testing.T) {
	txns := []model.Transaction{sale(1, fixedNow, model.PaymentCash, line(1, "Espresso", 15000, 1))}

	snap := Summarize(txns, DateRange{Start: fixedNow, End: fixedNow.Add(-time.Hour)}, jakarta)
	assert.Zero(t, snap.TotalOrders)
	assert.Zero(t, snap.TotalRevenue)
	assert.Zero(t, snap.AverageOrderValue)
	assert.Empty(t, snap.Daily)
	assert.Empty(t, snap.PaymentDistribution)
}

func TestSummarizeBucketsEveryDay(t *testing.T) {
	monday := fixedNow.AddDate(0, 0, -2)
	txns := []model.Transaction{
		sale(1, monday, model.PaymentCash, line(1, "Espresso", 15000, 2)),
		sale(2, fixedNow, model.PaymentCard, line(2, "Cappuccino", 25000, 1)),
		sale(3, fixedNow.AddDate(0, 0, 1), model.PaymentCash, line(1, "Espresso", 15000, 1)),
	}

	snap := Summarize(txns, mustDayRange(t, monday, fixedNow), jakarta)

	require.Len(t, snap.Daily, 3)
	assert.Equal(t, model.DailyRevenue{Date: "2024-03-11", Revenue: 30000, Orders: 1}, snap.Daily[0])
	assert.Equal(t, model.DailyRevenue{Date: "2024-03-12"}, snap.Daily[1])
	assert.Equal(t, model.DailyRevenue{Date: "2024-03-13", Revenue: 25000, Orders: 1}, snap.Daily[2])
	assert.Equal(t, 2, snap.TotalOrders)
	assert.Equal(t, int64(55000), snap.TotalRevenue)
	assert.InDelta(t, 27500, snap.AverageOrderValue, 0.001)
}

func TestSummarizeBoundsAreInclusive(t *testing.T) {
	r := DateRange{Start: fixedNow, End: fixedNow.Add(time.Hour)}
	txns := []model.Transaction{
		sale(1, r.Start, model.PaymentCash, line(1, "Espresso", 15000, 1)),
		sale(2, r.End, model.PaymentCash, line(1, "Espresso", 15000, 1)),
		sale(3, r.End.Add(time.Nanosecond), model.PaymentCash, line(1, "Espresso", 15000, 1)),
	}

	assert.Equal(t, 2, Summarize(txns, r, jakarta).TotalOrders)
}

func TestSummarizeMergesProductsByName(t *testing.T) {
	txns := []model.Transaction{
		sale(1, fixedNow, model.PaymentCash, line(1, "Latte", 28000, 1), line(5, "Croissant", 18000, 3)),
		sale(2, fixedNow, model.PaymentCash, line(9, "Latte", 30000, 2)),
	}

	snap := Summarize(txns, mustDayRange(t, fixedNow, fixedNow), jakarta)

	require.Len(t, snap.Products, 2)
	assert.Equal(t, model.ProductSales{Name: "Latte", Quantity: 3, Revenue: 88000}, snap.Products[0])
	assert.Equal(t, model.ProductSales{Name: "Croissant", Quantity: 3, Revenue: 54000}, snap.Products[1])
}

func TestSummarizeTopProductsByQuantity(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	var lines []model.CartLine
	for i, n := range names {
		lines = append(lines, line(int64(i+1), n, int64(1000*(len(names)-i)), i+1))
	}
	snap := Summarize([]model.Transaction{sale(1, fixedNow, model.PaymentCash, lines...)}, mustDayRange(t, fixedNow, fixedNow), jakarta)

	require.Len(t, snap.TopProducts, topProductsLimit)
	assert.Equal(t, "G", snap.TopProducts[0].Name)
	assert.Equal(t, "C", snap.TopProducts[4].Name)
	assert.Len(t, snap.Products, len(names))
}

func TestSummarizeHourlyAndPayments(t *testing.T) {
	morning := time.Date(2024, time.March, 13, 8, 5, 0, 0, jakarta)
	txns := []model.Transaction{
		sale(1, morning, model.PaymentCash, line(1, "Espresso", 15000, 1)),
		sale(2, morning.Add(10*time.Minute), model.PaymentCash, line(1, "Espresso", 15000, 1)),
		sale(3, fixedNow, model.PaymentCash, line(2, "Cappuccino", 25000, 1)),
		sale(4, fixedNow.UTC(), model.PaymentCard, line(2, "Cappuccino", 25000, 1)),
	}

	snap := Summarize(txns, mustDayRange(t, fixedNow, fixedNow), jakarta)

	assert.Equal(t, int64(30000), snap.Hourly[8])
	assert.Equal(t, int64(50000), snap.Hourly[14], "hours use the reporting location")

	require.Len(t, snap.PaymentDistribution, 2)
	assert.Equal(t, model.PaymentCash, snap.PaymentDistribution[0].Method)
	assert.Equal(t, 3, snap.PaymentDistribution[0].Count)
	assert.InDelta(t, 75, snap.PaymentDistribution[0].Percentage, 0.001)
	assert.Equal(t, model.PaymentCard, snap.PaymentDistribution[1].Method)
	assert.InDelta(t, 25, snap.PaymentDistribution[1].Percentage, 0.001)
}

func TestPeriodRange(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, jakarta) }
	last := func(y int, m time.Month, d int) time.Time { return day(y, m, d).Add(24*time.Hour - time.Nanosecond) }

	tests := []struct {
		period string
		want   DateRange
	}{
		{PeriodToday, DateRange{Start: day(2024, 3, 13), End: last(2024, 3, 13)}},
		{PeriodWeek, DateRange{Start: day(2024, 3, 6), End: last(2024, 3, 13)}},
		{PeriodMonth, DateRange{Start: day(2024, 2, 12), End: last(2024, 3, 13)}},
		{PeriodThisMonth, DateRange{Start: day(2024, 3, 1), End: last(2024, 3, 31)}},
		{PeriodQuarter, DateRange{Start: day(2024, 1, 1), End: last(2024, 3, 31)}},
		{PeriodYear, DateRange{Start: day(2023, 4, 1), End: last(2024, 3, 31)}},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			got, err := PeriodRange(tt.period, fixedNow)
			require.NoError(t, err)
			assert.True(t, tt.want.Start.Equal(got.Start), "start %s", got.Start)
			assert.True(t, tt.want.End.Equal(got.End), "end %s", got.End)
		})
	}

	_, err := PeriodRange("decade", fixedNow)
	assert.True(t, IsValidation(err))
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	f.cart.Add(f.menuItem(t, 2))
	_, err := f.checkout.Checkout(context.Background(), CheckoutRequest{PaymentMethod: model.PaymentCard})
	require.NoError(t, err)

	d := f.reports.Dashboard()
	assert.Equal(t, int64(27500), d.TodayRevenue)
	assert.Equal(t, 1, d.TodayOrders)
	assert.Equal(t, len(testDefaults.Menu), d.MenuCount)
	require.Len(t, d.LowStock, 1)
	assert.Equal(t, "Milk", d.LowStock[0].Name)
	assert.Len(t, d.RecentTransactions, 1)

	snap, err := f.reports.SummarizePeriod(PeriodThisMonth)
	require.NoError(t, err)
	assert.Len(t, snap.Daily, 31)
	assert.Equal(t, 1, snap.TotalOrders)
}
