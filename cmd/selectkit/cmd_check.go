package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"selectkit/internal/config"
	"selectkit/internal/domain"
	"selectkit/internal/ui/services/catalog"
	"selectkit/internal/ui/services/events"
	"selectkit/internal/ui/services/selection"
)

var checkCmd = &cobra.Command{
	Use:   "check [catalog-file]",
	Short: "Validate a catalog and report anomalies",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig(args)
		if err != nil {
			return err
		}
		diags, err := diagnose(cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		out := cmd.OutOrStdout()
		if len(diags) == 0 {
			fmt.Fprintf(out, "%s: ok\n", path)
			return nil
		}
		for _, d := range diags {
			fmt.Fprintf(out, "  ⚠️  %s\n", d)
		}
		return fmt.Errorf("%s: %d problem(s)", path, len(diags))
	},
}

// diagnose runs the catalog and initial value through the same services the
// dropdown uses and collects what they warn about
func diagnose(cfg *config.Config) ([]string, error) {
	mode, err := cfg.SelectionMode()
	if err != nil {
		return nil, err
	}
	options, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	value, err := cfg.InitialValue()
	if err != nil {
		return nil, err
	}

	var diags []string
	warn := func(format string, args ...any) {
		diags = append(diags, fmt.Sprintf(format, args...))
	}

	bus := events.NewBus()
	cat := catalog.New(bus, warn)
	cat.Set(options)
	if value == nil {
		return diags, nil
	}

	sel := selection.NewService(bus, cat, mode)
	sel.Reconcile(*value)
	for _, k := range sel.Selection().Keys() {
		if cat.IsDisabled(k) {
			warn("initial value %q is a disabled option", k)
		}
	}
	if mode == domain.Single && value.Len() > 1 {
		warn("single mode keeps only the first of %d initial values", value.Len())
	}
	return diags, nil
}
