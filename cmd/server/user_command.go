package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage login accounts",
	}

	var (
		id       string
		email    string
		password string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user or reset its email and password",
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

			if err := a.auth.SaveUser(cmd.Context(), id, email, password); err != nil {
				return fmt.Errorf("save user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %s saved\n", id)
			return nil
		},
	}
	create.Flags().StringVar(&id, "id", "", "User id, also the login username")
	create.Flags().StringVar(&email, "email", "", "Email address used for summaries")
	create.Flags().StringVar(&password, "password", "", "Login password")
	_ = create.MarkFlagRequired("id")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}
