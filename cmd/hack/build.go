package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gohack/pkg/utils"
)

var (
	buildOut         string
	buildKeepAsm     bool
	buildShowSymbols bool
)

var buildCmd = &cobra.Command{
	Use:   "build file.vm|dir",
	Short: "Translate and assemble VM code into a .hack file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, asmPath, err := translatePath(args[0], ".asm")
		if err != nil {
			return err
		}

		if buildKeepAsm {
			if err := utils.WriteLines(asmPath, lines); err != nil {
				return fmt.Errorf("failed to write %q: %w", asmPath, err)
			}
		}

		prog, err := assembleLines(lines)
		if err != nil {
			return err
		}

		output := buildOut
		if output == "" {
			output = utils.OutputPath(asmPath, false, ".hack")
		}
		if err := utils.WriteLines(output, prog.Binary()); err != nil {
			return fmt.Errorf("failed to write %q: %w", output, err)
		}

		fmt.Printf("built %d words -> %s\n", len(prog.Words), output)
		if buildShowSymbols {
			printSymbols(cmd.OutOrStdout(), prog.Symbols)
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output path (default: file.hack, or dir/dir.hack)")
	buildCmd.Flags().BoolVar(&buildKeepAsm, "keep-asm", false, "also write the intermediate .asm file")
	buildCmd.Flags().BoolVar(&buildShowSymbols, "symbols", false, "print the label and variable tables")
	addTranslateFlags(buildCmd)
}
