package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pixelforge-labs/pixelforge/internal/branding"
	"github.com/pixelforge-labs/pixelforge/internal/config"
	"github.com/pixelforge-labs/pixelforge/internal/registry"
	"github.com/pixelforge-labs/pixelforge/internal/userdata"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	rootVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` manages extensions: self-contained bundles that
contribute themes and palettes to the editor. Extensions are discovered
under the installation data directory and ~/.pixelforge/extensions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// openRegistry builds a Registry backed by the on-disk config store and
// preferences file.
func openRegistry() (*registry.Registry, error) {
	store, err := config.NewDefaultFileStore()
	if err != nil {
		return nil, fmt.Errorf("opening config store: %w", err)
	}

	prefs, err := userdata.LoadPreferences()
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}

	reg, err := registry.New(registry.Options{
		Store: store,
		Prefs: prefs,
	})
	if err != nil {
		return nil, fmt.Errorf("loading extensions: %w", err)
	}
	return reg, nil
}
