package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahmednasr/luis/server/internal/config"
	"github.com/ahmednasr/luis/server/internal/service"
)

var dayCmd = &cobra.Command{
	Use:   "day [message...]",
	Short: "Show which day a question resolves to, and its classes",
	Long:  `Runs the day resolver offline. Nothing is sent to the completion provider.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		tt := loadTimetable(cmd, cfg)

		today, err := resolveDate(cmd, cfg)
		if err != nil {
			return err
		}

		msg := service.NormalizeMessage(messageFrom(args))
		day := service.ResolveDay(msg, today, tt)

		classes := tt.Classes(day)
		list := service.NoClassInfo
		if len(classes) > 0 {
			list = strings.Join(classes, ", ")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", accentStyle.Render("Today:"), today.Format("Monday 2006-01-02"))
		fmt.Fprintf(out, "%s %s\n", accentStyle.Render("Resolved:"), title(day))
		fmt.Fprintf(out, "%s %s\n", accentStyle.Render("Classes:"), list)
		return nil
	},
}

var promptCmd = &cobra.Command{
	Use:   "prompt [message...]",
	Short: "Print the prompt that would be sent for a question",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		tt := loadTimetable(cmd, cfg)

		today, err := resolveDate(cmd, cfg)
		if err != nil {
			return err
		}

		msg := service.NormalizeMessage(messageFrom(args))
		day := service.ResolveDay(msg, today, tt)
		fmt.Fprintln(cmd.OutOrStdout(), service.ComposePrompt(msg, today, tt, day))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(promptCmd)

	dayCmd.Flags().StringP("date", "d", "", "Pretend today is this date (YYYY-MM-DD)")
	promptCmd.Flags().StringP("date", "d", "", "Pretend today is this date (YYYY-MM-DD)")
}
