package main

import (
	"fmt"

	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/spf13/cobra"
)

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <pattern>",
		Short: "Build an automaton from a regular expression",
		Long: `Builds the Thompson NFA of a regular expression over single-character symbols.
Supported operators: | (union), * (star), juxtaposition or . (concatenation) and parentheses.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, closeStore, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				name = args[0]
			}
			m, err := eng.Compile(name, args[0])
			if err != nil {
				return err
			}
			if asDFA, _ := cmd.Flags().GetBool("dfa"); asDFA {
				if m, err = eng.DeterminizeAutomaton(m); err != nil {
					return err
				}
			}

			def := m.Definition()
			if save, _ := cmd.Flags().GetBool("save"); save {
				if err := eng.Save(cmd.Context(), def); err != nil {
					return err
				}
			}
			return writeDefinition(cmd, def)
		},
	}

	addFormatFlag(cmd)
	cmd.Flags().String("name", "", "Name of the automaton (defaults to the pattern)")
	cmd.Flags().Bool("save", false, "Store the result")
	cmd.Flags().Bool("dfa", false, "Determinize the Thompson NFA")
	return cmd
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "yaml", "Output format: yaml or json")
}

func writeDefinition(cmd *cobra.Command, def *domain.Definition) error {
	format, _ := cmd.Flags().GetString("output")
	switch file.Format(format) {
	case file.FormatYAML, file.FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	data, err := file.Encode(def, file.Format(format))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
