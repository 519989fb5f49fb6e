package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ahmednasr/luis/server/internal/config"
	"github.com/ahmednasr/luis/server/internal/exporter"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the timetable to an ICS file",
	Long:  `Writes one weekly-recurring all-day event per class, starting from --from (default today).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		tt := loadTimetable(cmd, cfg)
		if len(tt) == 0 {
			return fmt.Errorf("timetable is empty, nothing to export")
		}

		output, _ := cmd.Flags().GetString("output")
		fromStr, _ := cmd.Flags().GetString("from")

		from := cfg.Clock()()
		if fromStr != "" {
			var err error
			from, err = time.ParseInLocation("2006-01-02", fromStr, cfg.TimeLocation())
			if err != nil {
				return fmt.Errorf("invalid --from %q, expected YYYY-MM-DD: %w", fromStr, err)
			}
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(tt, from, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully exported %d day(s) to %s\n", len(tt.Days()), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "timetable.ics", "Output file path")
	exportCmd.Flags().String("from", "", "First date of the calendar (YYYY-MM-DD)")
}
