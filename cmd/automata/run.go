package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [name] [word...]",
		Short: "Run words through an automaton",
		Long: `Simulates the automaton on each word and prints ACCEPT or REJECT.
Each character of a word is one symbol unless --sep is given. Pass "" for the empty word.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, closeStore, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			def, words, err := resolveDefinition(cmd, eng, args)
			if err != nil {
				return err
			}
			m, err := eng.Build(def)
			if err != nil {
				return err
			}
			if asDFA, _ := cmd.Flags().GetBool("dfa"); asDFA {
				if m, err = eng.DeterminizeAutomaton(m); err != nil {
					return err
				}
			}

			sep, _ := cmd.Flags().GetString("sep")
			showTrace, _ := cmd.Flags().GetBool("trace")
			jsonMode, _ := cmd.Flags().GetBool("json")

			out := cmd.OutOrStdout()
			profile := profileFor(out)
			enc := json.NewEncoder(out)
			for _, word := range words {
				trace, err := eng.RunAutomaton(m, splitWord(word, sep))
				if err != nil {
					return fmt.Errorf("word %q: %w", word, err)
				}

				if jsonMode {
					// NDJSON: one trace per line
					if err := enc.Encode(trace); err != nil {
						return err
					}
					continue
				}

				fmt.Fprintf(out, "%s\t%s\n", displayWord(word), tui.Verdict(trace.Accepted, profile))
				if showTrace {
					for _, line := range traceLines(trace) {
						fmt.Fprintln(out, tui.Muted("  "+line, profile))
					}
				}
			}
			return nil
		},
	}

	addFileFlag(cmd)
	cmd.Flags().String("sep", "", "Symbol separator for multi-character symbols")
	cmd.Flags().Bool("trace", false, "Print the active states after every symbol")
	cmd.Flags().Bool("json", false, "Print each run as a JSON trace (NDJSON)")
	cmd.Flags().Bool("dfa", false, "Determinize before running")
	return cmd
}

func splitWord(word, sep string) []domain.Symbol {
	if sep == "" {
		return domain.SymbolsOf(word)
	}
	if word == "" {
		return nil
	}
	parts := strings.Split(word, sep)
	symbols := make([]domain.Symbol, len(parts))
	for i, p := range parts {
		symbols[i] = domain.Symbol(p)
	}
	return symbols
}

func displayWord(word string) string {
	if word == "" {
		return domain.Epsilon.String()
	}
	return word
}

func traceLines(trace *domain.Trace) []string {
	lines := []string{"{" + strings.Join(trace.Initial, ",") + "}"}
	for _, step := range trace.Steps {
		lines = append(lines, fmt.Sprintf("-%s-> {%s}", step.Symbol, strings.Join(step.Active, ",")))
	}
	return lines
}
