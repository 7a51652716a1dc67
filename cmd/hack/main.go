// Command hack translates VM code to assembly, assembles it to binary and
// runs binaries on the emulator.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"gohack/pkg/translator"
)

const defaultMaxCycles = 10_000_000

var rootCmd = &cobra.Command{
	Use:   "hack",
	Short: "VM translator, assembler and emulator for the Hack machine",
	Long: `Hack lowers stack VM programs to assembly, assembles them into
16-bit binary words and runs the result on an emulator.

Defaults can be set in a .env file in the working directory:
  HACK_ENTRY       function called by the bootstrap (default Sys.init)
  HACK_MAX_CYCLES  emulator instruction budget for "run"`,
	SilenceUsage: true,
}

func envEntry() string {
	if v := os.Getenv("HACK_ENTRY"); v != "" {
		return v
	}
	return translator.DefaultEntry
}

func envMaxCycles() uint64 {
	v := os.Getenv("HACK_MAX_CYCLES")
	if v == "" {
		return defaultMaxCycles
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring HACK_MAX_CYCLES=%q: %v\n", v, err)
		return defaultMaxCycles
	}
	return n
}

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	rootCmd.AddCommand(asmCmd, translateCmd, buildCmd, runCmd)

	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
