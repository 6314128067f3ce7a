package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/stavecards/background"
	"github.com/jsphweid/stavecards/stave"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <image>",
	Short: "Shows the stave lines found in an image",
	Long:  `Shows the stave lines found in an image, as the card renderer would see them before resizing.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(inspect(cmd.OutOrStdout(), args[0]))
	},
}

func inspect(out io.Writer, path string) error {
	bg, err := background.Load(path)
	if err != nil {
		return err
	}
	if !bg.Loaded() {
		return errors.Errorf("%v does not exist", path)
	}

	b := bg.Image.Bounds()
	x := b.Min.X + b.Dx()/2
	g := stave.Detect(bg.Image)
	fmt.Fprintf(out, "size: %vx%v\n", b.Dx(), b.Dy())
	fmt.Fprintf(out, "dark runs at x=%v: %v\n", x, stave.ScanColumn(bg.Image, x))
	fmt.Fprintf(out, "lines: %v\n", g.Lines)
	fmt.Fprintf(out, "detected: %v\n", g.Detected)
	fmt.Fprintf(out, "spacing: %v\n", g.Spacing())
	return nil
}
