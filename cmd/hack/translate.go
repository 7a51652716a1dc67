package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gohack/pkg/translator"
	"gohack/pkg/utils"
)

var (
	translateOut       string
	translateBootstrap string
	translateEntry     string
	translatePrint     bool
)

var translateCmd = &cobra.Command{
	Use:   "translate file.vm|dir",
	Short: "Translate VM code into a .asm file",
	Long: `Translate lowers one .vm file, or every .vm file of a directory in name
order, into a single assembly file. Directories get the bootstrap (SP=256,
call the entry function) ahead of all code; single files do not unless
--bootstrap=on is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, output, err := translatePath(args[0], ".asm")
		if err != nil {
			return err
		}
		if translateOut != "" {
			output = translateOut
		}

		if translatePrint {
			fmt.Fprint(cmd.OutOrStdout(), joinLines(lines))
			return nil
		}
		if err := utils.WriteLines(output, lines); err != nil {
			return fmt.Errorf("failed to write %q: %w", output, err)
		}
		fmt.Printf("translated %d lines -> %s\n", len(lines), output)
		return nil
	},
}

func addTranslateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&translateBootstrap, "bootstrap", "auto", "emit the bootstrap: auto (directories only), on, off")
	cmd.Flags().StringVar(&translateEntry, "entry", "", "function called by the bootstrap (default $HACK_ENTRY or Sys.init)")
}

func init() {
	translateCmd.Flags().StringVarP(&translateOut, "out", "o", "", "output path (default: file.asm, or dir/dir.asm)")
	translateCmd.Flags().BoolVar(&translatePrint, "print", false, "write the assembly to stdout instead of a file")
	addTranslateFlags(translateCmd)
}

// translatePath loads and lowers path and derives the default output path
// with extension ext.
func translatePath(path, ext string) ([]string, string, error) {
	units, isDir, err := translator.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load %q: %w", path, err)
	}

	bootstrap := isDir
	switch translateBootstrap {
	case "on":
		bootstrap = true
	case "off":
		bootstrap = false
	case "auto":
	default:
		return nil, "", fmt.Errorf("invalid --bootstrap value %q", translateBootstrap)
	}

	entry := translateEntry
	if entry == "" {
		entry = envEntry()
	}

	t := translator.New(translator.WithEntry(entry))
	return t.TranslateProgram(units, bootstrap), utils.OutputPath(path, isDir, ext), nil
}
