package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/stavecards/catalog"
	"github.com/jsphweid/stavecards/constants"
	"github.com/jsphweid/stavecards/model"
	"github.com/jsphweid/stavecards/sheet"
	"github.com/jsphweid/stavecards/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Prints the sheet layout",
	Long:  `Prints the card size and how many cards fit on each A4 sheet`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		report(cmd.OutOrStdout(), sheet.A4())
	},
}

func report(out io.Writer, l sheet.Layout) {
	var perClef []int
	for _, clef := range model.Clefs {
		n := len(catalog.ForClef(clef))
		perClef = append(perClef, n)
		fmt.Fprintf(out, "%v clef cards: %v\n", clef, n)
	}
	total := int(util.Sum(perClef))

	fmt.Fprintf(out, "card: %vx%vpx (%vmm x %vmm)\n", l.Card.Width, l.Card.Height, constants.CardWidthMM, constants.CardHeightMM)
	fmt.Fprintf(out, "sheet: %vx%vpx (%vmm x %vmm)\n", l.Sheet.Width, l.Sheet.Height, constants.SheetWidthMM, constants.SheetHeightMM)
	fmt.Fprintf(out, "margin: %vpx (%vmm)\n", l.Margin, constants.MarginMM)
	fmt.Fprintf(out, "cards per sheet: %v (%v x %v)\n", l.Capacity(), l.PerRow(), l.PerCol())
	fmt.Fprintf(out, "total cards: %v\n", total)
	fmt.Fprintf(out, "sheets needed: %v\n", l.SheetsFor(total))
}
