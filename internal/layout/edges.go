package layout

// Edges holds a value for each side of a box.
type Edges struct {
	Top    float32 `json:"top"`
	Right  float32 `json:"right"`
	Bottom float32 `json:"bottom"`
	Left   float32 `json:"left"`
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float32 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float32 {
	return e.Top + e.Bottom
}
