package catalog

import (
	"github.com/jsphweid/stavecards/midi"
	"github.com/jsphweid/stavecards/model"
)

type entry struct {
	key      uint8
	position int
}

// middle C (60) is one ledger line below the treble stave and one above
// the bass stave
var trebleEntries = []entry{
	{60, -2},
	{62, -1},
	{64, 0}, // bottom line
	{65, 1},
	{67, 2},
	{69, 3},
	{71, 4}, // middle line
	{72, 5},
	{74, 6},
	{76, 7},
	{77, 8}, // top line
	{79, 9},
	{81, 10},
}

var bassEntries = []entry{
	{40, -2},
	{41, -1},
	{43, 0}, // bottom line
	{45, 1},
	{47, 2},
	{48, 3},
	{50, 4}, // middle line
	{52, 5},
	{53, 6},
	{55, 7},
	{57, 8}, // top line
	{59, 9},
	{60, 10},
}

func build(clef model.Clef, entries []entry) []model.Note {
	res := make([]model.Note, 0, len(entries))
	for _, e := range entries {
		res = append(res, model.Note{
			Name:     midi.MustPitchClass(e.key),
			Clef:     clef,
			Position: e.position,
			Key:      e.key,
		})
	}
	return res
}

// Treble returns a fresh copy on every call so callers can't mutate the
// catalog.
func Treble() []model.Note {
	return build(model.Treble, trebleEntries)
}

func Bass() []model.Note {
	return build(model.Bass, bassEntries)
}

func ForClef(clef model.Clef) []model.Note {
	switch clef {
	case model.Treble:
		return Treble()
	case model.Bass:
		return Bass()
	}
	return nil
}

// All is the print order: every treble card, then every bass card.
func All() []model.Note {
	return append(Treble(), Bass()...)
}
