package midi

import (
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
)

// PitchClass returns the letter name of a natural MIDI key, e.g. 60 -> "C".
// Keys that need an accidental have no single-letter name.
func PitchClass(key uint8) (string, error) {
	if key > 127 {
		return "", errors.Errorf("key %v is outside the midi range", key)
	}
	name := midi.Note(key).Name()
	if len(name) != 1 {
		return "", errors.Errorf("key %v is not a natural note (%v)", key, name)
	}
	return name, nil
}

// MustPitchClass is for the fixed catalog where a bad key is a programming
// error.
func MustPitchClass(key uint8) string {
	name, err := PitchClass(key)
	if err != nil {
		panic("Could not name key: " + err.Error())
	}
	return name
}
