package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install <file.zip>",
	Short: "Install an extension bundle",
	Long: `Install an extension from a zip bundle into ~/.pixelforge/extensions/.

The bundle must contain a package.json manifest; the extension is
installed under the name the manifest declares.

Example:
  pixelforge install midnight-pack.zip`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	ext, err := reg.InstallFromZip(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed %s (%s) to %s\n",
		ext.Name(), ext.DisplayName(), ext.Path())
	return nil
}
