package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/jsphweid/stavecards/constants"
	"github.com/jsphweid/stavecards/deck"
	"github.com/jsphweid/stavecards/watch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerates sheets when the backgrounds change",
	Long:  `Writes the sheets once, then again every time treble.png or bass-clef.png is saved`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		out := cmd.OutOrStdout()
		regenerate := func() {
			if _, err := deck.Generate(out, "."); err != nil {
				// keep watching, the next save may fix it
				slog.Error("could not generate sheets", "err", err)
			}
		}

		regenerate()
		w := watch.New(".", []string{constants.TrebleBackground, constants.BassBackground}, 500*time.Millisecond)
		cobra.CheckErr(w.Run(ctx, regenerate))
	},
}
