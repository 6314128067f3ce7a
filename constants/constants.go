package constants

const DPI = 300

const MMPerInch = 25.4

// physical sizes, millimetres
const (
	CardWidthMM   = 69 // 34.5mm once folded
	CardHeightMM  = 27
	SheetWidthMM  = 297 // A4 landscape
	SheetHeightMM = 210
	MarginMM      = 10
)

const (
	TrebleBackground = "treble.png"
	BassBackground   = "bass-clef.png"
)

const SheetFilePattern = "flashcards_sheet_%d.png"

// fixed preview address, same as the old serve command
const ServeAddr = ":8080"

// MMToPixels truncates like the printed layout always has: 69mm is 814px,
// not 815.
func MMToPixels(mm float64) int {
	return int(mm / MMPerInch * DPI)
}

var (
	CardWidth   = MMToPixels(CardWidthMM)
	CardHeight  = MMToPixels(CardHeightMM)
	SheetWidth  = MMToPixels(SheetWidthMM)
	SheetHeight = MMToPixels(SheetHeightMM)
	Margin      = MMToPixels(MarginMM)
)
