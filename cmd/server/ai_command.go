package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const aiTestTimeout = 30 * time.Second

func newAICommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "AI provider commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "test",
		Short: "Send a short prompt to the configured provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			provider, err := newProvider(cfg.AI)
			if err != nil {
				return err
			}

			testCtx, cancel := context.WithTimeout(cmd.Context(), aiTestTimeout)
			defer cancel()
			reply, err := provider.Test(testCtx)
			if err != nil {
				return fmt.Errorf("%s: %w", provider.Name(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", provider.Name(), cfg.AI.Model, reply)
			return nil
		},
	})
	return cmd
}
