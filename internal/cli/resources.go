package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List themes contributed by enabled extensions",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}

		merged := make(map[string]string)
		for _, ext := range reg.List() {
			if !ext.IsEnabled() {
				continue
			}
			for id := range ext.Themes() {
				if p, ok := reg.ThemePath(id); ok {
					merged[id] = p
				}
			}
		}
		return printResources(cmd, merged)
	},
}

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List palettes contributed by enabled extensions",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		return printResources(cmd, reg.Palettes())
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(palettesCmd)
}

func printResources(cmd *cobra.Command, resources map[string]string) error {
	if len(resources) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "None available.")
		return nil
	}

	ids := make([]string, 0, len(resources))
	for id := range resources {
		ids = append(ids, id)
	}
	c := collate.New(language.English)
	sort.Slice(ids, func(i, j int) bool {
		return c.CompareString(ids[i], ids[j]) < 0
	})

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tPATH")
	for _, id := range ids {
		fmt.Fprintf(w, "%s\t%s\n", id, resources[id])
	}
	return w.Flush()
}
