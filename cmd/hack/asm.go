package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gohack/pkg/asm"
	"gohack/pkg/utils"
)

var (
	asmOut         string
	asmShowSymbols bool
)

var asmCmd = &cobra.Command{
	Use:   "asm file.asm",
	Short: "Assemble a .asm file into a .hack file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath := args[0]
		source, err := os.ReadFile(inPath)
		if err != nil {
			return fmt.Errorf("failed to read input file %q: %w", inPath, err)
		}

		prog, err := asm.AssembleSource(string(source))
		if err != nil {
			return fmt.Errorf("assembly failed: %w", err)
		}

		output := asmOut
		if output == "" {
			output = utils.OutputPath(inPath, false, ".hack")
		}
		if err := utils.WriteLines(output, prog.Binary()); err != nil {
			return fmt.Errorf("failed to write %q: %w", output, err)
		}

		fmt.Printf("assembled %d words -> %s\n", len(prog.Words), output)
		if asmShowSymbols {
			printSymbols(cmd.OutOrStdout(), prog.Symbols)
		}
		return nil
	},
}

func init() {
	asmCmd.Flags().StringVarP(&asmOut, "out", "o", "", "output path (default: input with .hack extension)")
	asmCmd.Flags().BoolVar(&asmShowSymbols, "symbols", false, "print the label and variable tables")
}

// assembleLines is shared by build.
func assembleLines(lines []string) (*asm.Program, error) {
	prog, err := asm.NewAssembler().Assemble(lines)
	if err != nil {
		return nil, fmt.Errorf("assembly failed: %w", err)
	}
	return prog, nil
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
