package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ahmednasr/luis/server/internal/config"
	"github.com/ahmednasr/luis/server/internal/timetable"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	titleCaser = cases.Title(language.English)
)

var rootCmd = &cobra.Command{
	Use:   "luisctl",
	Short: "Operate the LUIS timetable assistant from the terminal",
	Long: `luisctl shares configuration with the LUIS server. Use it to check how
a question is resolved, preview prompts, ask the configured model directly
and export the timetable as a calendar.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("timetable", "t", "", "Timetable file (defaults to TIMETABLE_PATH or schedule.json)")
}

// loadTimetable honours --timetable before falling back to configuration.
func loadTimetable(cmd *cobra.Command, cfg config.Config) timetable.Timetable {
	path, _ := cmd.Flags().GetString("timetable")
	if path == "" {
		path = cfg.TimetablePath
	}
	return timetable.Load(path)
}

// resolveDate parses --date (YYYY-MM-DD) in the configured zone, or returns now.
func resolveDate(cmd *cobra.Command, cfg config.Config) (time.Time, error) {
	raw, _ := cmd.Flags().GetString("date")
	if raw == "" {
		return cfg.Clock()(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, cfg.TimeLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD: %w", raw, err)
	}
	return t, nil
}

func messageFrom(args []string) string {
	return strings.Join(args, " ")
}

func title(day string) string {
	return titleCaser.String(day)
}
