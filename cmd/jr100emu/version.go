package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set by the linker at release build time; it reads "dev" during
// development.
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print jr100emu's version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}
