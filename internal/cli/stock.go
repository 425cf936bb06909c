package cli

import (
	"fmt"
	"io"
	"strings"

	"pos/internal/app"
	"pos/internal/model"
	"pos/internal/service"

	"github.com/spf13/cobra"
)

// NewStockCommand creates the stock command group.
func NewStockCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Inspect and adjust ingredient stock",
	}
	cmd.AddCommand(newStockListCommand(rootOpts))
	cmd.AddCommand(newStockAdjustCommand(rootOpts))
	return cmd
}

func newStockListCommand(rootOpts *RootOptions) *cobra.Command {
	var lowOnly bool
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List stock items",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootOpts, func(a *app.App, out *OutputFormatter) error {
				items := a.Catalog.ListStockItems()
				if lowOnly {
					items = a.Catalog.LowStockItems()
				}
				return out.Success(items, func(w io.Writer) { writeStock(w, items) })
			})
		},
	}
	cmd.Flags().BoolVar(&lowOnly, "low", false, "only items at or below their minimum")
	return cmd
}

func newStockAdjustCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "adjust <id> <delta>",
		Short: "Add to or subtract from a stock item",
		Example: `  posctl stock adjust 2 25
  posctl stock adjust 2 -- -5`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := service.ParseQuantity("id", args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid id", err)
			}
			delta, err := service.ParseQuantity("delta", args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid delta", err)
			}

			return withApp(cmd, rootOpts, func(a *app.App, out *OutputFormatter) error {
				item, found, err := a.Catalog.UpdateStockItem(cmd.Context(), int64(id), model.StockItemPatch{Delta: &delta})
				if err != nil {
					return WrapExitError(ExitFailure, "adjust failed", err)
				}
				if !found {
					return NewExitError(ExitFailure, fmt.Sprintf("stock item %d not found", id))
				}
				return out.Success(item, func(w io.Writer) {
					fmt.Fprintf(w, "%s: %d %s", item.Name, item.Quantity, item.Unit)
					if item.IsLow() {
						fmt.Fprintf(w, " (low, minimum %d)", item.MinStock)
					}
					fmt.Fprintln(w)
				})
			})
		},
	}
}

func writeStock(w io.Writer, items []model.StockItem) {
	fmt.Fprintf(w, "%-4s %-16s %8s %-6s %s\n", "ID", "NAME", "QTY", "UNIT", "MIN")
	for _, it := range items {
		flag := ""
		if it.IsLow() {
			flag = "  LOW"
		}
		fmt.Fprintf(w, "%-4d %-16s %8d %-6s %d%s\n", it.ID, it.Name, it.Quantity, it.Unit, it.MinStock, flag)
	}
}

// NewRolesCommand creates the roles command.
func NewRolesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "roles",
		Short:         "Show the role and permission table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			roles := service.NewRoleService().ListRoles()
			return out.Success(roles, func(w io.Writer) {
				for _, r := range roles {
					fmt.Fprintf(w, "%d  %-12s %-20s %s\n", r.Level, r.Name, r.DisplayName, strings.Join(r.Permissions, ","))
				}
			})
		},
	}
}
