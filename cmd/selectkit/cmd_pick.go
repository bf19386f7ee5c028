package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/ui"
)

var errCancelled = errors.New("cancelled")

var (
	pickMulti      bool
	pickSearchable bool
	pickLabels     bool
)

var pickCmd = &cobra.Command{
	Use:   "pick [catalog-file]",
	Short: "Open the dropdown and print the picked value",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(args)
		if err != nil {
			return err
		}
		if pickMulti {
			cfg.Mode = domain.Multiple.String()
		}
		if pickSearchable {
			cfg.Searchable = true
		}

		model, err := ui.NewModel(eventbus.New(), cfg)
		if err != nil {
			return err
		}

		// The UI draws on stderr so the result can be piped
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithOutput(os.Stderr))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running picker: %w", err)
		}

		res := model.Result()
		if res == nil || res.Cancelled {
			return errCancelled
		}
		printResult(cmd.OutOrStdout(), res, pickLabels)
		return nil
	},
}

func init() {
	pickCmd.Flags().BoolVar(&pickMulti, "multi", false, "allow picking more than one value")
	pickCmd.Flags().BoolVar(&pickSearchable, "searchable", false, "filter options by typing")
	pickCmd.Flags().BoolVar(&pickLabels, "labels", false, "print labels instead of keys")
}

// printResult writes one picked value per line
func printResult(w io.Writer, res *ui.Result, labels bool) {
	if labels {
		for _, l := range res.Labels {
			fmt.Fprintln(w, l)
		}
		return
	}
	for _, k := range res.Value.Keys() {
		fmt.Fprintln(w, k)
	}
}
