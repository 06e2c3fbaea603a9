package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed extensions",
	Long:  `List every discovered extension with its state and contributions.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one extension for display.
type listEntry struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Version     string `json:"version,omitempty"`
	Enabled     bool   `json:"enabled"`
	BuiltIn     bool   `json:"builtIn"`
	Themes      int    `json:"themes"`
	Palettes    int    `json:"palettes"`
	Path        string `json:"path"`
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	var entries []listEntry
	for _, ext := range reg.List() {
		entries = append(entries, listEntry{
			Name:        ext.Name(),
			DisplayName: ext.DisplayName(),
			Version:     ext.Version(),
			Enabled:     ext.IsEnabled(),
			BuiltIn:     ext.IsBuiltIn(),
			Themes:      len(ext.Themes()),
			Palettes:    len(ext.Palettes()),
			Path:        ext.Path(),
		})
	}

	// Catalog order is discovery order; sort for display.
	c := collate.New(language.English)
	sort.Slice(entries, func(i, j int) bool {
		return c.CompareString(entries[i].Name, entries[j].Name) < 0
	})

	if listJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling extension list: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No extensions installed.")
		fmt.Fprintf(cmd.OutOrStdout(), "Use `%s install <file.zip>` to add one.\n", rootCmd.Use)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISPLAY NAME\tVERSION\tSTATUS\tTHEMES\tPALETTES")
	for _, e := range entries {
		status := "enabled"
		if !e.Enabled {
			status = "disabled"
		}
		if e.BuiltIn {
			status += " (built-in)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			e.Name, e.DisplayName, e.Version, status, e.Themes, e.Palettes)
	}
	return w.Flush()
}
