package physics

import (
	"errors"
	"fmt"
	"math"
)

var ErrDivisionByZero = errors.New("division by zero")

var _ Vector2 = Vec2{}

// Vec2 is a 2D vector with float32 components. The zero value is the zero vector.
type Vec2 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

func New(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func Zero() Vec2 { return Vec2{} }

func (v Vec2) XY() (x, y float32) { return v.X, v.Y }

// String renders the vector the way Print does, without the trailing newline.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

func (v *Vec2) AddSelf(o Vec2) {
	v.X += o.X
	v.Y += o.Y
}

func (v *Vec2) SubtractSelf(o Vec2) {
	v.X -= o.X
	v.Y -= o.Y
}

func (v *Vec2) ScaleSelf(k float32) {
	v.X *= k
	v.Y *= k
}

// DivideSelf divides both components by d. A zero divisor leaves v untouched.
func (v *Vec2) DivideSelf(d float32) error {
	if d == 0 {
		return ErrDivisionByZero
	}
	v.X /= d
	v.Y /= d
	return nil
}

// ConstrainSelf clamps X into [minX, maxX] and Y into [minY, maxY].
func (v *Vec2) ConstrainSelf(minX, maxX, minY, maxY float32) {
	v.X = constrain(v.X, minX, maxX)
	v.Y = constrain(v.Y, minY, maxY)
}

// Clamp01Self clamps both components into [0, 1], the servo position domain.
func (v *Vec2) Clamp01Self() {
	v.ConstrainSelf(0, 1, 0, 1)
}

// SetMagnitudeSelf rescales v to length m keeping its direction.
// A zero vector stays zero.
func (v *Vec2) SetMagnitudeSelf(m float32) {
	n := Normalize(*v)
	n.ScaleSelf(m)
	*v = n
}

func (v *Vec2) LimitSelf(lim float32) {
	if Magnitude(*v) > lim {
		v.SetMagnitudeSelf(lim)
	}
}

func Add(a, b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

func Subtract(a, b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func Scale(a Vec2, k float32) Vec2 { return Vec2{a.X * k, a.Y * k} }

// Divide returns a / d, or ErrDivisionByZero when d is zero.
func Divide(a Vec2, d float32) (Vec2, error) {
	if d == 0 {
		return Vec2{}, ErrDivisionByZero
	}
	return Vec2{a.X / d, a.Y / d}, nil
}

// Normalize returns the unit vector of a, or the zero vector when a has no length.
func Normalize(a Vec2) Vec2 {
	l := length(a)
	if l == 0 {
		return Zero()
	}
	return Vec2{float32(float64(a.X) / l), float32(float64(a.Y) / l)}
}

func Dot(a, b Vec2) float32 { return a.X*b.X + a.Y*b.Y }

// Magnitude is computed in float64 so components near the float32 limit
// do not overflow the sum of squares.
func Magnitude(a Vec2) float32 {
	return float32(length(a))
}

func length(a Vec2) float64 {
	x, y := float64(a.X), float64(a.Y)
	return math.Sqrt(x*x + y*y)
}

func constrain(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
