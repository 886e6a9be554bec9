package main

import (
	"fmt"

	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, closeStore, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			names, err := eng.Definitions(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Validate definition files and put them in the store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, closeStore, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			for _, path := range args {
				def, err := file.LoadFile(path)
				if err != nil {
					return err
				}
				if err := eng.Save(cmd.Context(), def); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", def.Name)
			}
			return nil
		},
	}
}
