package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"gohack/pkg/cpu"
)

var (
	runMaxCycles  uint64
	runScreenshot string
	runSnapshot   string
	runRestore    string
	runDump       string
)

var runCmd = &cobra.Command{
	Use:   "run file.hack",
	Short: "Run a .hack binary on the emulator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		vm := cpu.NewCPU()

		if runRestore != "" {
			if err := vm.RestoreFromFile(runRestore); err != nil {
				return fmt.Errorf("restore failed for %q: %w", runRestore, err)
			}
		} else {
			words, err := cpu.LoadHackFile(path)
			if err != nil {
				return err
			}
			if err := vm.Load(words); err != nil {
				return err
			}
		}

		if runSnapshot != "" {
			// Snapshot on every exit path, including an interrupted run.
			atexit.Register(func() {
				if err := vm.HibernateToFile(runSnapshot); err != nil {
					fmt.Fprintf(os.Stderr, "snapshot failed: %v\n", err)
				}
			})
		}

		budget := runMaxCycles
		if !cmd.Flags().Changed("max-cycles") {
			budget = envMaxCycles()
		}
		used := vm.Run(budget)

		status := "halted"
		if !vm.Halted {
			status = "cycle budget exhausted"
		}
		fmt.Printf(
			"run complete (%s, %s): cycles=%d PC=%d A=%d D=%d SP=%d\n",
			path, status, used, vm.PC, vm.A, vm.D, vm.RAM[0],
		)

		if runDump != "" {
			ranges, err := parseRanges(runDump)
			if err != nil {
				return err
			}
			printRAM(cmd.OutOrStdout(), vm, ranges)
		}

		if runScreenshot != "" {
			if err := vm.SaveScreenshot(runScreenshot); err != nil {
				return fmt.Errorf("screenshot failed: %w", err)
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().Uint64Var(&runMaxCycles, "max-cycles", defaultMaxCycles, "instruction budget, 0 for none (default $HACK_MAX_CYCLES)")
	runCmd.Flags().StringVar(&runScreenshot, "screenshot", "", "write the screen as PNG after the run")
	runCmd.Flags().StringVar(&runSnapshot, "snapshot", "", "write a machine snapshot (zip) on exit")
	runCmd.Flags().StringVar(&runRestore, "restore", "", "resume from a snapshot instead of loading the binary")
	runCmd.Flags().StringVar(&runDump, "dump", "", "RAM ranges to print after the run, e.g. 0-15,256-300")
}
