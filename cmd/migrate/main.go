package main

import (
	"fmt"
	"os"
	"rentdesk/config"
	"rentdesk/helper"
	"rentdesk/shared/logger"

	"github.com/spf13/cobra"
)

func main() {
	logger.Init(config.Get())

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the rental desk schema",
	}

	rootCmd.AddCommand(
		actionCmd(helper.ActionUp, "Apply all pending migrations"),
		actionCmd(helper.ActionStepUp, "Apply the next pending migration"),
		actionCmd(helper.ActionDown, "Roll back the last migration"),
		actionCmd(helper.ActionDrop, "Roll back every migration"),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func actionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return helper.Run(config.Get(), action)
		},
	}
}
