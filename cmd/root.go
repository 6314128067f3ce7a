package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flashcards",
	Short: "Printable music note flashcards",
	Long: `Renders fold-in-half flashcards for the treble and bass clef notes
and arranges them on A4 sheets ready to print at 300 DPI.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	},
	Run: func(cmd *cobra.Command, args []string) {
		generate(cmd)
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
