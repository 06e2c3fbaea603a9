package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable <name>",
	Short: "Enable an extension",
	Long:  `Make an extension's themes and palettes visible again.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(cmd, args[0], true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <name>",
	Short: "Disable an extension",
	Long: `Hide an extension's themes and palettes without deleting its files.

The default theme extension and the extension contributing the
currently selected theme cannot be disabled.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(cmd, args[0], false)
	},
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}

func setEnabled(cmd *cobra.Command, name string, state bool) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	ext, ok := reg.Find(name)
	if !ok {
		return fmt.Errorf("extension %q is not installed", name)
	}

	if !state && ext.IsEnabled() && !ext.CanBeDisabled() {
		return fmt.Errorf("extension %q is in use and cannot be disabled", name)
	}

	if err := reg.Enable(ext, state); err != nil {
		return err
	}

	verb := "Enabled"
	if !state {
		verb = "Disabled"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, name)
	return nil
}
