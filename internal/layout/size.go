package layout

// Size is a width and height pair. The solver uses Size[Number] for
// available space and Size[float32] for resolved dimensions.
type Size[T any] struct {
	Width  T `json:"width"`
	Height T `json:"height"`
}

// ZeroSize is the empty resolved size.
var ZeroSize = Size[float32]{}

// nonNegative clamps both dimensions of s at zero.
func nonNegative(s Size[float32]) Size[float32] {
	return Size[float32]{Width: max(0, s.Width), Height: max(0, s.Height)}
}
