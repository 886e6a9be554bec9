package main

import (
	"fmt"

	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [name]",
		Short: "Export the automaton as a diagram or transition table",
		Long: `Outputs a Mermaid flowchart, a Graphviz digraph or a markdown transition table.
With --word the states active after reading the word are highlighted.`,
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

			var overlay *graph.Overlay
			if cmd.Flags().Changed("word") {
				word, _ := cmd.Flags().GetString("word")
				m, err := eng.Build(def)
				if err != nil {
					return err
				}
				trace, err := eng.RunAutomaton(m, domain.SymbolsOf(word))
				if err != nil {
					return err
				}
				overlay = &graph.Overlay{Active: trace.Final()}
			}

			out := cmd.OutOrStdout()
			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "mermaid":
				fmt.Fprint(out, graph.GenerateMermaid(def, overlay))
			case "dot":
				fmt.Fprint(out, graph.GenerateDot(def, overlay))
			case "table":
				render, err := tui.NewRenderer(isTerminal(out))
				if err != nil {
					return err
				}
				rendered, err := render(graph.GenerateTable(def))
				if err != nil {
					return err
				}
				fmt.Fprint(out, rendered)
			default:
				return fmt.Errorf("unknown graph format %q", format)
			}
			return nil
		},
	}

	addFileFlag(cmd)
	cmd.Flags().String("format", "mermaid", "Output format: mermaid, dot or table")
	cmd.Flags().String("word", "", "Highlight the states active after this word")
	return cmd
}
