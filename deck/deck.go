// Package deck runs the whole pipeline: render every catalog note as a
// card, tile the cards onto sheets and write the sheets out.
package deck

import (
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/jsphweid/stavecards/background"
	"github.com/jsphweid/stavecards/card"
	"github.com/jsphweid/stavecards/catalog"
	"github.com/jsphweid/stavecards/constants"
	"github.com/jsphweid/stavecards/file"
	"github.com/jsphweid/stavecards/model"
	"github.com/jsphweid/stavecards/sheet"
)

type Deck struct {
	Renderer *card.Renderer
	Layout   sheet.Layout
}

func New(backgrounds background.Set, opts card.Options) *Deck {
	return &Deck{
		Renderer: card.NewRenderer(backgrounds, opts),
		Layout:   sheet.A4(),
	}
}

// Load reads the clef backgrounds from dir and sets up the default deck.
func Load(dir string) (*Deck, error) {
	backgrounds, err := background.LoadSet(dir)
	if err != nil {
		return nil, err
	}
	return New(backgrounds, card.DefaultOptions()), nil
}

func (d *Deck) Cards(notes []model.Note) []image.Image {
	res := make([]image.Image, 0, len(notes))
	for _, n := range notes {
		res = append(res, d.Renderer.Render(n))
	}
	return res
}

func (d *Deck) Sheets(notes []model.Note) ([]sheet.Sheet, error) {
	return d.Layout.Tile(d.Cards(notes))
}

func SheetPath(dir string, number int) string {
	return filepath.Join(dir, fmt.Sprintf(constants.SheetFilePattern, number))
}

// Write renders the full catalog and saves the sheets into dir, printing
// progress to out. It returns the paths written.
func (d *Deck) Write(out io.Writer, dir string) ([]string, error) {
	fmt.Fprintln(out, "Generating musical note flashcards...")

	var cards []image.Image
	for _, clef := range model.Clefs {
		notes := catalog.ForClef(clef)
		fmt.Fprintf(out, "Creating %v %v clef flashcards...\n", len(notes), clef)
		cards = append(cards, d.Cards(notes)...)
	}
	fmt.Fprintf(out, "\nTotal flashcards: %v\n", len(cards))

	fmt.Fprintln(out, "\nArranging flashcards on A4 sheets...")
	fmt.Fprintf(out, "Cards per sheet: %v (%v x %v)\n", d.Layout.Capacity(), d.Layout.PerRow(), d.Layout.PerCol())
	fmt.Fprintf(out, "Print margin: %vmm on each side\n", constants.MarginMM)
	sheets, err := d.Layout.Tile(cards)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "\nSaving %v A4 sheet(s)...\n", len(sheets))
	var paths []string
	for _, s := range sheets {
		path := SheetPath(dir, s.Number)
		if err := file.SavePNG(path, s.Image, constants.DPI); err != nil {
			return paths, err
		}
		fmt.Fprintf(out, "Saved: %v\n", filepath.Base(path))
		paths = append(paths, path)
	}

	fmt.Fprintln(out, "\nDone! Print the sheet(s) in landscape orientation and cut/fold each card along the center line.")
	fmt.Fprintf(out, "Each card is %vmm x %vmm (folds to %vmm x %vmm).\n",
		constants.CardWidthMM, constants.CardHeightMM, float64(constants.CardWidthMM)/2, constants.CardHeightMM)
	return paths, nil
}

// Generate is the one-shot run: load backgrounds from dir, write sheets
// back into dir.
func Generate(out io.Writer, dir string) ([]string, error) {
	d, err := Load(dir)
	if err != nil {
		return nil, err
	}
	return d.Write(out, dir)
}
