package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"pos/internal/app"
	"pos/internal/service"

	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var rf rangeFlags
	var fileType, outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as CSV or XLSX",
		Long: `Export the transactions in a period.

CSV goes to stdout unless --out is given. XLSX always needs --out.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fileType != "csv" && fileType != "xlsx" {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid --type %q: must be csv or xlsx", fileType))
			}
			if fileType == "xlsx" && outPath == "" {
				return NewExitError(ExitCommandError, "--out is required for xlsx")
			}
			return withApp(cmd, rootOpts, func(a *app.App, out *OutputFormatter) error {
				r, err := rf.resolve(a.Reports)
				if err != nil {
					return err
				}
				txns := a.Reports.Transactions(r)

				var buf bytes.Buffer
				if fileType == "xlsx" {
					err = a.Export.XLSX(&buf, txns, a.Reports.Summarize(r))
				} else {
					err = a.Export.CSV(&buf, txns)
				}
				if err != nil {
					return WrapExitError(ExitFailure, "export failed", err)
				}

				if outPath == "" {
					_, err := out.Writer.Write(buf.Bytes())
					return err
				}
				if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
					return WrapExitError(ExitCommandError, "failed to write "+outPath, err)
				}
				return out.Success(map[string]interface{}{"path": outPath, "transactions": len(txns)}, func(w io.Writer) {
					fmt.Fprintf(w, "Exported %d transactions to %s\n", len(txns), outPath)
				})
			})
		},
	}
	rf.register(cmd)
	cmd.Flags().StringVar(&fileType, "type", "csv", "file type (csv|xlsx)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file")
	return cmd
}

// NewBackupCommand creates the backup command.
func NewBackupCommand(rootOpts *RootOptions) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:           "backup",
		Short:         "Write a JSON backup of every collection",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootOpts, func(a *app.App, out *OutputFormatter) error {
				body, err := json.MarshalIndent(a.Backup.Export(), "", "  ")
				if err != nil {
					return WrapExitError(ExitFailure, "failed to encode backup", err)
				}
				if outPath == "" {
					_, err := fmt.Fprintln(out.Writer, string(body))
					return err
				}
				if err := os.WriteFile(outPath, body, 0o600); err != nil {
					return WrapExitError(ExitCommandError, "failed to write "+outPath, err)
				}
				return out.Success(map[string]string{"path": outPath}, func(w io.Writer) {
					fmt.Fprintf(w, "Backup written to %s\n", outPath)
				})
			})
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}

// NewRestoreCommand creates the restore command.
func NewRestoreCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "restore <backup.json>",
		Short:         "Replace store data from a JSON backup",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read backup", err)
			}
			var b service.Backup
			if err := json.Unmarshal(raw, &b); err != nil {
				return WrapExitError(ExitCommandError, "failed to parse backup", err)
			}
			return withApp(cmd, rootOpts, func(a *app.App, out *OutputFormatter) error {
				if err := a.Backup.Import(cmd.Context(), b); err != nil {
					return WrapExitError(ExitFailure, "restore failed", err)
				}
				return out.Success(map[string]int{
					"menu":         len(b.Menu),
					"stock":        len(b.Stock),
					"transactions": len(b.Transactions),
				}, func(w io.Writer) {
					fmt.Fprintf(w, "Restored %d menu items, %d stock items, %d transactions\n", len(b.Menu), len(b.Stock), len(b.Transactions))
				})
			})
		},
	}
}
