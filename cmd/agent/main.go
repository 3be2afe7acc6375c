package main

import (
	"context"
	"fmt"
	"os"
	"rentdesk/config"
	"rentdesk/di"
	"rentdesk/internal/domains/agent/model/dto"
	"rentdesk/shared/constant"
	"rentdesk/shared/logger"

	"github.com/spf13/cobra"
)

func main() {
	logger.Init(config.Get())

	rootCmd := &cobra.Command{
		Use:   "agent",
		Short: "Manage rental desk agent accounts",
	}

	rootCmd.AddCommand(
		createCmd(),
		statusCmd("activate", "Allow an agent to sign in again", constant.AgentStatusActive),
		statusCmd("deactivate", "Stop an agent from signing in", constant.AgentStatusInactive),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> <password>",
		Short: "Create an active agent",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			name, password := args[0], args[1]

			id, err := di.InitializeAgentService().Create(context.Background(), dto.CreateAgentRequest{
				Name:     name,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("create agent: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "agent %q created with id %d\n", name, id)

			return nil
		},
	}
}

func statusCmd(use, short string, statusID int64) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := di.InitializeAgentService().SetStatus(context.Background(), name, statusID); err != nil {
				return fmt.Errorf("%s agent: %w", use, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "agent %q %sd\n", name, use)

			return nil
		},
	}
}
