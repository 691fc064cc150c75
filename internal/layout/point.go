package layout

// Point is a position in logical pixels.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}
