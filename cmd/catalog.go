package cmd

import (
	"io"

	"github.com/jsphweid/stavecards/catalog"
	"github.com/jsphweid/stavecards/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lists every note that gets a card",
	Long:  `Lists every note that gets a card, as YAML`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(dumpCatalog(cmd.OutOrStdout()))
	},
}

type catalogEntry struct {
	model.Note `yaml:",inline"`
	Placement  string `yaml:"placement"`
}

func catalogEntries(notes []model.Note) []catalogEntry {
	res := make([]catalogEntry, 0, len(notes))
	for _, n := range notes {
		placement := "space"
		if n.OnLine() {
			placement = "line"
		}
		res = append(res, catalogEntry{Note: n, Placement: placement})
	}
	return res
}

func dumpCatalog(out io.Writer) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(map[model.Clef][]catalogEntry{
		model.Treble: catalogEntries(catalog.Treble()),
		model.Bass:   catalogEntries(catalog.Bass()),
	})
}
