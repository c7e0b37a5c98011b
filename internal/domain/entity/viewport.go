package entity

// Viewport is a captured (width, height) pair in logical pixels. It is
// only meaningful while the inline container is resized to fill the
// screen; nil pointers elsewhere mean "natural bounds".
type Viewport struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}
