package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"selectkit/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a sample catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultNames[0]
		if len(args) > 0 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.NewConfigService().SaveToPath(config.SampleConfig(), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}
