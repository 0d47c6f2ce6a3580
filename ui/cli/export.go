// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// export.go holds the `export` command (a compressed JSON snapshot of the
// administrator aggregates) and the `history` command over the local action
// log.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"github.com/toeirei/rentmaster/internal/db"
	"github.com/toeirei/rentmaster/internal/i18n"
	"github.com/toeirei/rentmaster/internal/model"
)

// exportData is the snapshot shape written by `rentmaster export`.
type exportData struct {
	ExportedAt  string              `json:"exported_at"`
	Houses      []model.House       `json:"houses"`
	Bookings    []model.Booking     `json:"bookings"`
	Payments    []model.Payment     `json:"payments"`
	Feedback    []model.Feedback    `json:"feedback"`
	Tenants     []model.UserProfile `json:"tenants"`
	HouseOwners []model.UserProfile `json:"house_owners"`
}

var historyLimit int

// exportCmd dumps the administrator aggregates into a Zstandard-compressed
// JSON file, suitable for offline reporting or archival.
var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export a compressed (zstd) JSON snapshot of all data",
	Long: `Fetches every aggregate visible to the administrator session (houses,
bookings, payments, feedback, tenants, house owners) and writes them as a
single Zstandard-compressed JSON file.

If an output file is specified, '.zst' will be appended to the name if it's
not already present. If no output file is specified, a default filename
'rentmaster-export-YYYY-MM-DD.json.zst' is used.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		var outputFile string
		if len(args) == 0 {
			outputFile = fmt.Sprintf("rentmaster-export-%s.json.zst", time.Now().Format("2006-01-02"))
		} else {
			outputFile = args[0]
			if !strings.HasSuffix(outputFile, ".zst") {
				outputFile += ".zst"
			}
		}

		ctx := cmd.Context()
		data := exportData{ExportedAt: time.Now().UTC().Format(time.RFC3339)}
		var err error
		if data.Houses, err = apiClient.AdminHouses(ctx); err != nil {
			log.Fatalf("%s", i18n.T("export.error_fetch", err))
		}
		if data.Bookings, err = apiClient.AdminBookings(ctx); err != nil {
			log.Fatalf("%s", i18n.T("export.error_fetch", err))
		}
		if data.Payments, err = apiClient.AdminPayments(ctx); err != nil {
			log.Fatalf("%s", i18n.T("export.error_fetch", err))
		}
		if data.Feedback, err = apiClient.AdminFeedback(ctx); err != nil {
			log.Fatalf("%s", i18n.T("export.error_fetch", err))
		}
		if data.Tenants, err = apiClient.AdminTenants(ctx); err != nil {
			log.Fatalf("%s", i18n.T("export.error_fetch", err))
		}
		if data.HouseOwners, err = apiClient.AdminHouseOwners(ctx); err != nil {
			log.Fatalf("%s", i18n.T("export.error_fetch", err))
		}

		if err := writeCompressedExport(outputFile, &data); err != nil {
			log.Fatalf("%s", i18n.T("export.error_write", err))
		}
		fmt.Println(i18n.T("export.success", outputFile))
	},
}

// writeCompressedExport streams the JSON encoding directly to the zstd
// writer for memory efficiency.
func writeCompressedExport(filename string, data *exportData) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zstdWriter, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	defer func() { _ = zstdWriter.Close() }()

	encoder := json.NewEncoder(zstdWriter)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}

	return nil
}

// historyCmd prints the local action log, newest first.
var historyCmd = &cobra.Command{
	Use:     "history",
	Short:   "Show the local action history",
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := db.GetHistory(historyLimit)
		if err != nil {
			log.Fatalf("%s", i18n.T("history.error_fetch", err))
		}
		if len(entries) == 0 {
			fmt.Println(i18n.T("history.none"))
			return
		}
		for _, e := range entries {
			line := fmt.Sprintf("%s  %-12s %s", e.Timestamp, e.Role, e.Action)
			if e.Details != "" {
				line += "  " + e.Details
			}
			fmt.Println(line)
		}
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to show")
}
