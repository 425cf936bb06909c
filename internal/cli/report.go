package cli

import (
	"fmt"
	"io"
	"time"

	"pos/internal/app"
	"pos/internal/model"
	"pos/internal/service"
	"pos/pkg/currency"

	"github.com/spf13/cobra"
)

const dateFlagLayout = "2006-01-02"

// rangeFlags selects a reporting interval by name or by dates.
type rangeFlags struct {
	period string
	from   string
	to     string
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.period, "period", "", "today|week|month|this_month|quarter|year")
	cmd.Flags().StringVar(&f.from, "from", "", "start date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&f.to, "to", "", "end date (yyyy-mm-dd)")
	cmd.MarkFlagsMutuallyExclusive("period", "from")
	cmd.MarkFlagsMutuallyExclusive("period", "to")
}

// resolve defaults to the current month.
func (f *rangeFlags) resolve(reports service.ReportService) (service.DateRange, error) {
	now := reports.Now()
	if f.from == "" && f.to == "" {
		period := f.period
		if period == "" {
			period = service.PeriodThisMonth
		}
		r, err := service.PeriodRange(period, now)
		if err != nil {
			return r, WrapExitError(ExitCommandError, "invalid --period", err)
		}
		return r, nil
	}

	from, to := now, now
	var err error
	if f.from != "" {
		if from, err = time.ParseInLocation(dateFlagLayout, f.from, reports.Location()); err != nil {
			return service.DateRange{}, WrapExitError(ExitCommandError, "invalid --from", err)
		}
	}
	if f.to != "" {
		if to, err = time.ParseInLocation(dateFlagLayout, f.to, reports.Location()); err != nil {
			return service.DateRange{}, WrapExitError(ExitCommandError, "invalid --to", err)
		}
	}
	r, err := service.DayRange(from, to, reports.Location())
	if err != nil {
		return r, WrapExitError(ExitCommandError, "invalid date range", err)
	}
	return r, nil
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:           "report",
		Short:         "Summarize sales over a period",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootOpts, func(a *app.App, out *OutputFormatter) error {
				r, err := rf.resolve(a.Reports)
				if err != nil {
					return err
				}
				out.VerboseLog("summarizing %s to %s", r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339))
				snap := a.Reports.Summarize(r)
				money := currency.New(a.Settings.Get().Language, a.Settings.Get().Currency)
				return out.Success(snap, func(w io.Writer) { writeReport(w, snap, money) })
			})
		},
	}
	rf.register(cmd)
	return cmd
}

func writeReport(w io.Writer, snap model.AnalyticsSnapshot, money *currency.Formatter) {
	fmt.Fprintf(w, "Period:         %s - %s\n", snap.Start.Format(dateFlagLayout), snap.End.Format(dateFlagLayout))
	fmt.Fprintf(w, "Orders:         %d\n", snap.TotalOrders)
	fmt.Fprintf(w, "Revenue:        %s\n", money.Format(snap.TotalRevenue))
	fmt.Fprintf(w, "Tax:            %s\n", money.Format(snap.TotalTax))
	fmt.Fprintf(w, "Average order:  %s\n", money.Format(int64(snap.AverageOrderValue+0.5)))

	if len(snap.TopProducts) > 0 {
		fmt.Fprintln(w, "\nTop products:")
		for i, p := range snap.TopProducts {
			fmt.Fprintf(w, "  %d. %-20s %4d  %s\n", i+1, p.Name, p.Quantity, money.Format(p.Revenue))
		}
	}
	if len(snap.PaymentDistribution) > 0 {
		fmt.Fprintln(w, "\nPayments:")
		for _, p := range snap.PaymentDistribution {
			fmt.Fprintf(w, "  %-8s %4d  %5.1f%%  %s\n", p.Method, p.Count, p.Percentage, money.Format(p.Amount))
		}
	}
}
