package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahmednasr/luis/server/internal/config"
	"github.com/ahmednasr/luis/server/internal/database"
	"github.com/ahmednasr/luis/server/internal/repository"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently answered questions from the exchange log",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is not set; the exchange log is disabled")
		}
		limit, _ := cmd.Flags().GetInt64("limit")

		client, err := database.NewMongo(cmd.Context(), cfg.MongoURI)
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		defer client.Disconnect(context.Background())

		repo := repository.NewExchangeRepository(client.Database(cfg.DBName))
		exchanges, err := repo.Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("failed to read exchanges: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, e := range exchanges {
			status := accentStyle.Render(title(e.Day))
			if e.Failed {
				status = errorStyle.Render("failed")
			}
			fmt.Fprintf(out, "%s  %-9s  %q\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), status, e.Message)
			if e.Reply != "" {
				fmt.Fprintf(out, "    %s\n", e.Reply)
			}
		}
		if len(exchanges) == 0 {
			fmt.Fprintln(out, "No exchanges recorded yet.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().Int64P("limit", "n", 20, "Number of exchanges to show")
}
