package model

// Dimensions of a card or sheet in pixels.
type Size struct {
	Width  int
	Height int
}
