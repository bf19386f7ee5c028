package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"selectkit/internal/config"
)

var version = "0.1.0"

var logPath string

var rootCmd = &cobra.Command{
	Use:   "selectkit",
	Short: "Pick values from a catalog in the terminal",
	Long:  "selectkit runs a single- or multi-select dropdown over a TOML or YAML catalog and prints what was picked.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(logPath)
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "selectkit %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "selectkit.log", "file to write the debug log to")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
}

// setupLogging sends the standard logger to path; the terminal belongs to the UI
func setupLogging(path string) {
	if path == "" {
		return
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return
	}
	log.SetOutput(logFile)
}

// loadConfig loads the catalog named by args, or the default one in the
// working directory
func loadConfig(args []string) (*config.Config, string, error) {
	svc := config.NewConfigService()
	if len(args) > 0 {
		cfg, err := svc.LoadFromPath(args[0])
		return cfg, args[0], err
	}
	return svc.Load(".")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
