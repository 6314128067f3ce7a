package model

type Clef string

const (
	Treble Clef = "treble"
	Bass   Clef = "bass"
)

var Clefs = []Clef{Treble, Bass}

// Position 0 is the bottom stave line and goes up by one per line or space,
// so even positions sit on a line and odd ones in a space.
type Note struct {
	Name     string `json:"name" yaml:"name"`
	Clef     Clef   `json:"clef" yaml:"clef"`
	Position int    `json:"position" yaml:"position"`
	Key      uint8  `json:"key" yaml:"key"`
}

func (n Note) OnLine() bool {
	return n.Position%2 == 0
}
