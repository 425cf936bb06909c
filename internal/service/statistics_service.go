package service

import (
	"cmp"
	"slices"
	"time"

	"pos/internal/model"
	"pos/pkg/clock"
)

const (
	PeriodToday     = "today"
	PeriodWeek      = "week"
	PeriodMonth     = "month"
	PeriodThisMonth = "this_month"
	PeriodQuarter   = "quarter"
	PeriodYear      = "year"

	// MaxReportDays bounds custom ranges; Summarize allocates one bucket per day.
	MaxReportDays = 366

	topProductsLimit = 5
	dayLayout        = "2006-01-02"
)

// DateRange is a closed interval [Start, End].
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies inside the closed interval.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// PeriodRange resolves a named period relative to now.
// Day periods count back from today, month periods span whole calendar months.
func PeriodRange(period string, now time.Time) (DateRange, error) {
	switch period {
	case PeriodToday:
		return DateRange{Start: startOfDay(now), End: endOfDay(now)}, nil
	case PeriodWeek:
		return DateRange{Start: startOfDay(now.AddDate(0, 0, -7)), End: endOfDay(now)}, nil
	case PeriodMonth:
		return DateRange{Start: startOfDay(now.AddDate(0, 0, -30)), End: endOfDay(now)}, nil
	case PeriodThisMonth:
		return DateRange{Start: startOfMonth(now), End: endOfMonth(now)}, nil
	case PeriodQuarter:
		return DateRange{Start: startOfMonth(startOfMonth(now).AddDate(0, -2, 0)), End: endOfMonth(now)}, nil
	case PeriodYear:
		return DateRange{Start: startOfMonth(startOfMonth(now).AddDate(0, -11, 0)), End: endOfMonth(now)}, nil
	}
	return DateRange{}, newValidationError("period", InvalidValue)
}

// DayRange spans whole days from the date of from to the date of to in loc.
// It rejects an inverted range and one covering more than MaxReportDays days.
func DayRange(from, to time.Time, loc *time.Location) (DateRange, error) {
	from, to = from.In(loc), to.In(loc)
	days := civilDays(to) - civilDays(from) + 1
	if days < 1 {
		return DateRange{}, newValidationError("from", InvalidValue)
	}
	if days > MaxReportDays {
		return DateRange{}, newValidationError("to", InvalidValue)
	}
	return DateRange{Start: startOfDay(from), End: endOfDay(to)}, nil
}

// civilDays counts days since the zero date, ignoring zone offsets and DST.
func civilDays(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// Summarize aggregates the transactions falling inside r. Day and hour buckets
// use loc; every calendar day of the interval gets a bucket, including empty ones.
func Summarize(txns []model.Transaction, r DateRange, loc *time.Location) model.AnalyticsSnapshot {
	if loc == nil {
		loc = time.Local
	}
	snap := model.AnalyticsSnapshot{
		Start:               r.Start,
		End:                 r.End,
		Daily:               []model.DailyRevenue{},
		Products:            []model.ProductSales{},
		TopProducts:         []model.ProductSales{},
		PaymentDistribution: []model.PaymentShare{},
	}

	dayIndex := map[string]int{}
	if !r.End.Before(r.Start) {
		last := startOfDay(r.End.In(loc))
		for d := startOfDay(r.Start.In(loc)); !d.After(last); d = d.AddDate(0, 0, 1) {
			key := d.Format(dayLayout)
			dayIndex[key] = len(snap.Daily)
			snap.Daily = append(snap.Daily, model.DailyRevenue{Date: key})
		}
	}

	productIndex := map[string]int{}
	paymentIndex := map[model.PaymentMethod]int{}
	for _, m := range model.PaymentMethods {
		paymentIndex[m] = len(snap.PaymentDistribution)
		snap.PaymentDistribution = append(snap.PaymentDistribution, model.PaymentShare{Method: m})
	}

	for _, t := range txns {
		if !r.Contains(t.Timestamp) {
			continue
		}
		local := t.Timestamp.In(loc)

		snap.TotalOrders++
		snap.TotalRevenue += t.Total
		snap.TotalSubtotal += t.Subtotal
		snap.TotalTax += t.Tax
		snap.Hourly[local.Hour()] += t.Total

		if i, ok := dayIndex[local.Format(dayLayout)]; ok {
			snap.Daily[i].Revenue += t.Total
			snap.Daily[i].Orders++
		}

		for _, line := range t.Items {
			i, ok := productIndex[line.Name]
			if !ok {
				i = len(snap.Products)
				productIndex[line.Name] = i
				snap.Products = append(snap.Products, model.ProductSales{Name: line.Name})
			}
			snap.Products[i].Quantity += line.Quantity
			snap.Products[i].Revenue += line.LineTotal()
		}

		i, ok := paymentIndex[t.PaymentMethod]
		if !ok {
			i = len(snap.PaymentDistribution)
			paymentIndex[t.PaymentMethod] = i
			snap.PaymentDistribution = append(snap.PaymentDistribution, model.PaymentShare{Method: t.PaymentMethod})
		}
		snap.PaymentDistribution[i].Count++
		snap.PaymentDistribution[i].Amount += t.Total
	}

	if snap.TotalOrders > 0 {
		snap.AverageOrderValue = float64(snap.TotalRevenue) / float64(snap.TotalOrders)
	}

	used := snap.PaymentDistribution[:0]
	for _, p := range snap.PaymentDistribution {
		if p.Count == 0 {
			continue
		}
		p.Percentage = float64(p.Count) / float64(snap.TotalOrders) * 100
		used = append(used, p)
	}
	snap.PaymentDistribution = used

	slices.SortStableFunc(snap.Products, func(a, b model.ProductSales) int {
		return cmp.Compare(b.Revenue, a.Revenue)
	})
	top := slices.Clone(snap.Products)
	slices.SortStableFunc(top, func(a, b model.ProductSales) int {
		return cmp.Compare(b.Quantity, a.Quantity)
	})
	if len(top) > topProductsLimit {
		top = top[:topProductsLimit]
	}
	snap.TopProducts = top

	return snap
}

// ReportService answers reporting queries over the ledger and catalog.
type ReportService interface {
	Summarize(r DateRange) model.AnalyticsSnapshot
	SummarizePeriod(period string) (model.AnalyticsSnapshot, error)
	Transactions(r DateRange) []model.Transaction
	Dashboard() model.Dashboard
	Location() *time.Location
	Now() time.Time
}

type statisticsService struct {
	ledger  *Ledger
	catalog CatalogService
	clock   clock.Clock
	loc     *time.Location
}

func NewReportService(ledger *Ledger, catalog CatalogService, clk clock.Clock, loc *time.Location) ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &statisticsService{ledger: ledger, catalog: catalog, clock: clk, loc: loc}
}

func (s *statisticsService) Location() *time.Location { return s.loc }

func (s *statisticsService) Now() time.Time { return s.clock.Now().In(s.loc) }

func (s *statisticsService) Summarize(r DateRange) model.AnalyticsSnapshot {
	return Summarize(s.ledger.List(), r, s.loc)
}

func (s *statisticsService) SummarizePeriod(period string) (model.AnalyticsSnapshot, error) {
	r, err := PeriodRange(period, s.Now())
	if err != nil {
		return model.AnalyticsSnapshot{}, err
	}
	return s.Summarize(r), nil
}

// Transactions returns the ledger entries inside r, oldest first.
func (s *statisticsService) Transactions(r DateRange) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.ledger.List() {
		if r.Contains(t.Timestamp) {
			out = append(out, t)
		}
	}
	return out
}

func (s *statisticsService) Dashboard() model.Dashboard {
	now := s.Now()
	today := s.Summarize(DateRange{Start: startOfDay(now), End: endOfDay(now)})
	low := s.catalog.LowStockItems()
	if low == nil {
		low = []model.StockItem{}
	}
	return model.Dashboard{
		TodayRevenue:       today.TotalRevenue,
		TodayOrders:        today.TotalOrders,
		MenuCount:          len(s.catalog.ListMenuItems()),
		LowStock:           low,
		RecentTransactions: s.ledger.Recent(5),
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}
