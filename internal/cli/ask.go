package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahmednasr/luis/server/internal/config"
	"github.com/ahmednasr/luis/server/internal/service"
)

var askCmd = &cobra.Command{
	Use:   "ask [message...]",
	Short: "Ask the configured model a question, exactly as the chat endpoint would",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		tt := loadTimetable(cmd, cfg)

		llm, closer, err := service.NewBackend(cmd.Context(), service.BackendOptions{
			Backend:         cfg.CompletionBackend,
			APIKey:          cfg.GeminiAPIKey,
			Model:           cfg.Model,
			ProjectID:       cfg.ProjectID,
			Location:        cfg.Location,
			CredentialsFile: cfg.CredentialsFile,
		})
		if err != nil {
			return err
		}
		defer closer.Close()

		completion := service.NewCompletionClient(llm, cfg.Model)
		svc := service.NewChatService(tt, completion, nil, cfg.Clock())

		reply, err := svc.Ask(cmd.Context(), messageFrom(args))
		if err != nil {
			return fmt.Errorf("ask failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", accentStyle.Render("LUIS:"), reply)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
