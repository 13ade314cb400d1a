package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"kotoba/backend/internal/scheduler"
	"kotoba/backend/internal/service"
)

var (
	errRunFailed     = errors.New("daily summary run failed")
	errRunSendFailed = errors.New("daily summary email was not sent")
)

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Daily summary commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run the daily summary job once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			result := scheduler.RunOnce(cmd.Context(), a.job)
			fmt.Fprintf(cmd.OutOrStdout(), "outcome: %s\n", result.Outcome)
			if result.Summary != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "summary: %d (generated: %t, sent: %t)\n", result.Summary.ID, result.Generated, result.Sent)
			}
			return outcomeError(result)
		},
	})
	return cmd
}

// outcomeError turns an unsuccessful manual run into a non-zero exit.
// Skipped days are not failures.
func outcomeError(result service.RunResult) error {
	switch result.Outcome {
	case service.OutcomeFailed:
		return fmt.Errorf("%w (run %s)", errRunFailed, result.RunID)
	case service.OutcomeSendFailed:
		return fmt.Errorf("%w (run %s)", errRunSendFailed, result.RunID)
	}
	return nil
}
