// Package cli implements the datesqr command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the datesqr command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "datesqr",
		Short: "Provenance QR codes for Saudi dates products",
		Long: `datesqr renders, serves and verifies product QR codes.

COMMANDS:
  serve      Run the HTTP server (product pages, PNG codes, decode API)
  generate   Render a code for a catalog product or ad-hoc data
  scan       Read a code image or payload and print the product record

CONFIGURATION:
  Read from the environment and .env: APP_ENV, LOG_LEVEL, BASE_URL,
  SERVER_*, QR_*, STORAGE_DRIVER, STORAGE_LOCAL_DIR, S3_*.

EXAMPLES:
  datesqr serve --addr :8080
  datesqr generate --product 1 --lang ar
  datesqr generate --all --level H
  datesqr scan qrcodes/qr-Medjool-Dates-1.png
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")

	root.AddCommand(
		newServeCmd(a),
		newGenerateCmd(a),
		newScanCmd(a),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	root := NewRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}
