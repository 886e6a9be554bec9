package main

import (
	"fmt"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of automata",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if isTerminal(out) {
				tui.PrintBanner(out, profileFor(out))
			}
			fmt.Fprintf(out, "automata version %s\n", automata.Version)
		},
	}
}
