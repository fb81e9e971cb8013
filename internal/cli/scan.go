package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/nakhla/datesqr/pkg/productqr"
	"github.com/nakhla/datesqr/pkg/qrcode"
)

var ErrNotProductCode = errors.New("not a dates product code")

type scanResult struct {
	Data      productqr.ProductQRData `json:"data"`
	Timestamp string                  `json:"timestamp,omitempty"`
}

func newScanCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "scan <file.png | payload>",
		Short: "Decode a product QR code and print the record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := args[0]
			if !raw {
				text, err := qrcode.ScanFile(content)
				if err != nil {
					return err
				}
				content = text
			}

			payload, ok := productqr.ParsePayload(content)
			if !ok {
				a.logger.DebugContext(cmd.Context(), "foreign code", "content_length", len(content))
				return ErrNotProductCode
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(scanResult{Data: payload.Data(), Timestamp: payload.Timestamp})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Treat the argument as a payload string instead of an image path")
	return cmd
}
