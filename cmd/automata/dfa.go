package main

import (
	"github.com/spf13/cobra"
)

func newDFACmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dfa [name]",
		Short: "Convert an automaton to a DFA",
		Long: `Applies subset construction and prints the resulting definition.
States of the DFA are named after the NFA states they stand for, e.g. {q1,q3}.`,
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
				return err
			}
			dfa, err := eng.DeterminizeAutomaton(m)
			if err != nil {
				return err
			}

			out := dfa.Definition()
			if save, _ := cmd.Flags().GetBool("save"); save {
				if err := eng.Save(cmd.Context(), out); err != nil {
					return err
				}
			}
			return writeDefinition(cmd, out)
		},
	}

	addFileFlag(cmd)
	addFormatFlag(cmd)
	cmd.Flags().Bool("save", false, "Store the DFA under its own name")
	return cmd
}
