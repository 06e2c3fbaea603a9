package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pixelforge-labs/pixelforge/internal/scaffold"
)

var (
	initDisplayName string
	initDir         string
)

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a new extension package",
	Long: `Create a skeleton extension package: a package.json manifest, a README,
and empty themes/ and palettes/ directories.

By default the skeleton is written to ./<name>.

Example:
  pixelforge init midnight-pack --display-name "Midnight Pack"`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initDisplayName, "display-name", "", "Display name for the extension (default: derived from <name>)")
	initCmd.Flags().StringVarP(&initDir, "dir", "d", "", "Output directory (default: ./<name>)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	dir := initDir
	if dir == "" {
		dir = filepath.Join(".", name)
	}

	result, err := scaffold.Generate(scaffold.NewData(name, initDisplayName), dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created extension skeleton in %s\n", result.Dir)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	fmt.Fprintf(out, "\nAdd themes under themes/ and palettes under palettes/, then zip the\ndirectory contents and run: %s install <file.zip>\n", rootCmd.Use)
	return nil
}
