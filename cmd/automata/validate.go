package main

import (
	"fmt"

	"github.com/aretw0/automata/internal/validator"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [name]",
		Short: "Check an automaton for consistency",
		Long: `Builds the automaton, which rejects structural errors, then crawls it from the
initial state and back from the accepting states to report unreachable and dead states.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, closeStore, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			def, _, err := resolveDefinition(cmd, eng, args)
			if err != nil {
				return err
			}
			m, err := eng.Build(def)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			report := validator.Inspect(m)
			fmt.Fprintln(cmd.OutOrStdout(), report.String())

			strict, _ := cmd.Flags().GetBool("strict")
			if issues := report.Issues(); strict && len(issues) > 0 {
				return fmt.Errorf("validation failed: %d issue(s)", len(issues))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Automaton is valid! ✅")
			return nil
		},
	}

	addFileFlag(cmd)
	cmd.Flags().Bool("strict", false, "Treat unreachable and dead states as errors")
	return cmd
}
