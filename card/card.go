// Package card draws a single fold-and-flip flashcard: the stave with the
// note on the left half, and the note's name upside down on the right half
// so it reads correctly once the card is folded along the centre line.
package card

import (
	"image"
	"image/color"
	"log/slog"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/jsphweid/stavecards/background"
	"github.com/jsphweid/stavecards/constants"
	"github.com/jsphweid/stavecards/model"
	"github.com/jsphweid/stavecards/stave"
	"golang.org/x/image/font"
)

// Positions -1 and 9 are the spaces just outside the stave and need no
// ledger line.
const (
	LowestUnledgered  = -1
	HighestUnledgered = 9
)

var (
	Black = color.RGBA{0, 0, 0, 255}
	Gray  = color.RGBA{128, 128, 128, 255}
	White = color.RGBA{255, 255, 255, 255}
)

type Options struct {
	Width  int
	Height int

	HeadWidth  float64
	HeadHeight float64
	StemLength float64
	StemWidth  float64

	LedgerHalfLength float64
	LedgerWidth      float64

	// note x is Width / NoteXDivisor, independent of the stave image
	NoteXDivisor float64

	FoldDash  float64
	FoldGap   float64
	FoldWidth float64

	BorderWidth float64

	FontSize    float64
	FontPaths   []string
	TextPadding int
}

func DefaultOptions() Options {
	return Options{
		Width:            constants.CardWidth,
		Height:           constants.CardHeight,
		HeadWidth:        38,
		HeadHeight:       28,
		StemLength:       80,
		StemWidth:        6,
		LedgerHalfLength: 25,
		LedgerWidth:      2,
		NoteXDivisor:     3.5,
		FoldDash:         10,
		FoldGap:          5,
		FoldWidth:        1,
		BorderWidth:      2,
		FontSize:         60,
		// a .ttc loads its first font
		FontPaths: []string{
			"/System/Library/Fonts/Helvetica.ttc",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
		},
		TextPadding: 10,
	}
}

func NeedsLedger(position int) bool {
	return position < LowestUnledgered || position > HighestUnledgered
}

type Stem struct {
	X  float64
	Y1 float64
	Y2 float64
}

// StemFor picks the stem by which half of the card the note head is in:
// lower half gets an up-stem on the right, upper half a down-stem on the
// left. This follows the card, not the stave's middle line.
func StemFor(x float64, y int, o Options) Stem {
	half := o.HeadWidth / 2
	if y > o.Height/2 {
		return Stem{X: x + half, Y1: float64(y), Y2: float64(y) - o.StemLength}
	}
	return Stem{X: x - half, Y1: float64(y), Y2: float64(y) + o.StemLength}
}

// FitPanel scales a background of bw x bh to the panel width, or to the
// card height when the width fit would be too tall.
func FitPanel(bw, bh, panelWidth, height int) (int, int) {
	aspect := float64(bh) / float64(bw)
	h := int(float64(panelWidth) * aspect)
	if h <= height {
		return panelWidth, h
	}
	w := int(float64(height) / aspect)
	if w < 1 {
		w = 1
	}
	return w, height
}

// panel is a clef background already resized and placed on the left half.
type panel struct {
	image    *image.NRGBA
	x, y     int
	geometry stave.Geometry // card coordinates
}

type Placement struct {
	X      float64
	Y      int
	Ledger bool
	Stem   Stem
}

type Renderer struct {
	opts   Options
	font   FontSource
	panels map[model.Clef]panel

	// font faces aren't safe for concurrent use
	mu sync.Mutex
}

func NewRenderer(backgrounds background.Set, opts Options) *Renderer {
	r := &Renderer{
		opts:   opts,
		font:   LoadFont(opts.FontPaths, opts.FontSize),
		panels: make(map[model.Clef]panel),
	}
	for _, clef := range model.Clefs {
		bg := backgrounds.For(clef)
		if !bg.Loaded() {
			continue
		}
		p := r.placeBackground(bg.Image)
		if !p.geometry.Detected {
			slog.Warn("stave lines not detected, assuming even spacing", "clef", clef, "path", bg.Path)
		}
		r.panels[clef] = p
	}
	return r
}

func (r *Renderer) placeBackground(img *image.NRGBA) panel {
	o := r.opts
	half := o.Width / 2
	b := img.Bounds()
	w, h := FitPanel(b.Dx(), b.Dy(), half, o.Height)
	resized := imaging.Resize(img, w, h, imaging.Lanczos)
	p := panel{
		image: resized,
		x:     (half - w) / 2,
		y:     (o.Height - h) / 2,
	}
	// lines are found on the resized image, then moved into card space
	p.geometry = stave.Detect(resized).Offset(p.y)
	return p
}

func (r *Renderer) Options() Options {
	return r.opts
}

func (r *Renderer) Font() FontSource {
	return r.font
}

// HasStave reports whether cards for clef get a stave and note drawn.
func (r *Renderer) HasStave(clef model.Clef) bool {
	_, ok := r.panels[clef]
	return ok
}

// Geometry is the stave of clef in card coordinates.
func (r *Renderer) Geometry(clef model.Clef) (stave.Geometry, bool) {
	p, ok := r.panels[clef]
	return p.geometry, ok
}

// Place works out where the note head goes. ok is false when the clef has
// no background, since there is no stave to place it on.
func (r *Renderer) Place(note model.Note) (Placement, bool) {
	p, ok := r.panels[note.Clef]
	if !ok {
		return Placement{}, false
	}
	x := float64(r.opts.Width) / r.opts.NoteXDivisor
	y := int(p.geometry.NoteY(note.Position))
	return Placement{
		X:      x,
		Y:      y,
		Ledger: NeedsLedger(note.Position),
		Stem:   StemFor(x, y, r.opts),
	}, true
}

func (r *Renderer) Render(note model.Note) *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()

	o := r.opts
	dc := gg.NewContext(o.Width, o.Height)
	dc.SetColor(White)
	dc.Clear()

	if p, ok := r.panels[note.Clef]; ok {
		dc.DrawImage(p.image, p.x, p.y)
		placement, _ := r.Place(note)
		r.drawNote(dc, placement)
	}
	r.drawFoldLine(dc)
	ans := r.answer(note.Name)
	ax, ay := r.answerOrigin(ans.Bounds().Size())
	dc.DrawImage(ans, ax, ay)
	r.drawBorder(dc)

	return dc.Image().(*image.RGBA)
}

func (r *Renderer) drawNote(dc *gg.Context, p Placement) {
	o := r.opts
	y := float64(p.Y)
	dc.SetColor(Black)

	if p.Ledger {
		dc.SetLineWidth(o.LedgerWidth)
		dc.DrawLine(p.X-o.LedgerHalfLength, y, p.X+o.LedgerHalfLength, y)
		dc.Stroke()
	}

	dc.DrawEllipse(p.X, y, o.HeadWidth/2, o.HeadHeight/2)
	dc.Fill()

	dc.SetLineWidth(o.StemWidth)
	dc.DrawLine(p.Stem.X, p.Stem.Y1, p.Stem.X, p.Stem.Y2)
	dc.Stroke()
}

func (r *Renderer) drawFoldLine(dc *gg.Context) {
	o := r.opts
	// centre of the pixel column so a 1px line stays 1px wide
	x := float64(o.Width/2) + 0.5
	dc.SetColor(Gray)
	dc.SetLineWidth(o.FoldWidth)
	dc.SetDash(o.FoldDash, o.FoldGap)
	dc.DrawLine(x, 0, x, float64(o.Height))
	dc.Stroke()
	dc.SetDash()
}

func (r *Renderer) drawBorder(dc *gg.Context) {
	o := r.opts
	inset := o.BorderWidth / 2
	dc.SetColor(Black)
	dc.SetLineWidth(o.BorderWidth)
	dc.DrawRectangle(inset, inset, float64(o.Width)-o.BorderWidth, float64(o.Height)-o.BorderWidth)
	dc.Stroke()
}

// answer renders text on its own padded white tile and turns it upside
// down.
func (r *Renderer) answer(text string) *image.NRGBA {
	pad := r.opts.TextPadding
	bounds, _ := font.BoundString(r.font.Face, text)
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	w := bounds.Max.X.Ceil() - minX
	h := bounds.Max.Y.Ceil() - minY

	tc := gg.NewContext(w+2*pad, h+2*pad)
	tc.SetColor(White)
	tc.Clear()
	tc.SetFontFace(r.font.Face)
	tc.SetColor(Black)
	// dot is the baseline origin; shift it so the ink starts at the padding
	tc.DrawString(text, float64(pad-minX), float64(pad-minY))

	return imaging.Rotate180(tc.Image())
}

// answerOrigin centres a tile of the given size on the right half.
func (r *Renderer) answerOrigin(size image.Point) (int, int) {
	half := r.opts.Width / 2
	return half + (half-size.X)/2, (r.opts.Height - size.Y) / 2
}
