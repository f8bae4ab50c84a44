package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/zabaglione/pyjr100emu/jr100"
)

var (
	flagProgram string
	flagCycles  uint64
	flagDump    bool
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "boot the machine and run it for a fixed number of cycles",
		RunE:  runRun,
	}
	cmd.Flags().StringVar(&flagProgram, "program", "", "PROG container or BASIC text file to load after boot")
	cmd.Flags().Uint64Var(&flagCycles, "cycles", 1_000_000, "number of clock cycles to run")
	cmd.Flags().BoolVar(&flagDump, "dump", false, "dump a full state snapshot after running")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	comp := jr100.NewComputer()

	romPath, err := jr100.ResolveROMPath(flagROM)
	if err != nil {
		return err
	}
	romData, err := os.ReadFile(romPath)
	if err != nil {
		return err
	}
	if err := jr100.LoadBasicROMBootstrap(comp.BasicROM, romData); err != nil {
		return err
	}
	if err := comp.Display.LoadCharacterROM(comp.BasicROM.FontBytes()); err != nil {
		return err
	}

	if flagProgram != "" {
		info, err := jr100.LoadProgram(comp.Memory, flagProgram)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "loaded %q (%d region(s))\n", info.Name, len(info.Regions))
	}

	comp.PowerOn()
	// The first Tick after PowerOn only services the pending reset.
	if err := comp.Tick(1); err != nil {
		return err
	}
	if err := comp.Tick(flagCycles); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ran %d cycles, pc=%#04x\n", comp.CPU.ClockCount(), comp.CPU.PC)

	if flagDump {
		spew.Fdump(cmd.OutOrStdout(), comp.Capture())
	}
	return nil
}
