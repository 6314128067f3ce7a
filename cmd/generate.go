package cmd

import (
	"github.com/jsphweid/stavecards/deck"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Writes the flashcard sheets",
	Long:  `Reads treble.png and bass-clef.png from the working directory and writes flashcards_sheet_<N>.png next to them.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		generate(cmd)
	},
}

func generate(cmd *cobra.Command) {
	_, err := deck.Generate(cmd.OutOrStdout(), ".")
	cobra.CheckErr(err)
}
