package cmd

import (
	"fmt"
	"net/http"

	"github.com/jsphweid/stavecards/constants"
	"github.com/jsphweid/stavecards/deck"
	"github.com/jsphweid/stavecards/preview"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves card previews",
	Long:  `Serves the catalog, single cards and whole sheets over HTTP on :8080`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, err := deck.Load(".")
		cobra.CheckErr(err)
		fmt.Fprintf(cmd.OutOrStdout(), "Serving previews on %v\n", constants.ServeAddr)
		cobra.CheckErr(http.ListenAndServe(constants.ServeAddr, preview.NewRouter(d)))
	},
}
