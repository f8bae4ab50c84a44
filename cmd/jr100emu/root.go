package main

import (
	"github.com/spf13/cobra"
)

var (
	flagROM string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jr100emu",
		Short: "JR-100 emulation core CLI",
	}
	root.PersistentFlags().StringVar(&flagROM, "rom", "", "path to the BASIC ROM bootstrap image (falls back to JR100EMU_ROM)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newDumpCmd())
	root.AddCommand(newVersionCmd())
	return root
}
