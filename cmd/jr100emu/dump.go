package main

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/zabaglione/pyjr100emu/jr100"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <prog-file>",
		Short: "parse a PROG container and print its report without running anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp := jr100.NewComputer()
			info, err := jr100.LoadProgram(comp.Memory, args[0])
			if err != nil {
				return err
			}
			spew.Fdump(os.Stdout, info)
			return nil
		},
	}
}
