package physics

// Vector2 represents anything with a 2D position.
type Vector2 interface {
	XY() (x, y float32)
}
