package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <name>",
	Short: "Remove an installed extension",
	Long: `Delete an extension's files and remove it from the catalog.

Built-in extensions, the default theme extension, and the extension
contributing the currently selected theme cannot be uninstalled.`,
	Args: cobra.ExactArgs(1),
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	name := args[0]

	reg, err := openRegistry()
	if err != nil {
		return err
	}

	ext, ok := reg.Find(name)
	if !ok {
		return fmt.Errorf("extension %q is not installed", name)
	}
	if !ext.CanBeUninstalled() {
		if ext.IsBuiltIn() {
			return fmt.Errorf("extension %q is built-in and cannot be uninstalled", name)
		}
		return fmt.Errorf("extension %q is in use and cannot be uninstalled", name)
	}

	if err := reg.Uninstall(ext); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Uninstalled %s\n", name)
	return nil
}
