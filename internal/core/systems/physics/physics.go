package physics

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lshoek/shymirror/internal/core/observability/log"
)

// Distance computes the Euclidean distance between two points.
func Distance(a, b Vec2) float32 { return Magnitude(Subtract(b, a)) }

// DistanceV computes the distance between any two Vector2.
func DistanceV(a, b Vector2) float32 {
	ax, ay := a.XY()
	bx, by := b.XY()
	return Distance(New(ax, ay), New(bx, by))
}

// Equal reports whether a and b differ by at most tol on each component.
func Equal(a, b Vec2, tol float32) bool {
	return abs(a.X-b.X) <= tol && abs(a.Y-b.Y) <= tol
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// ToR2 widens a to a gonum vector.
func ToR2(a Vec2) r2.Vec { return r2.Vec{X: float64(a.X), Y: float64(a.Y)} }

// FromR2 narrows a gonum vector to float32 components.
func FromR2(v r2.Vec) Vec2 { return Vec2{X: float32(v.X), Y: float32(v.Y)} }

// Print writes a as "(x, y)\n" with two decimals.
func Print(w io.Writer, a Vec2) error {
	_, err := fmt.Fprintf(w, "%s\n", a)
	return err
}

// LogSink writes printed vectors to a logger at debug level.
type LogSink struct {
	logger log.Log
	msg    string
}

var _ io.Writer = (*LogSink)(nil)

func NewLogSink(logger log.Log, msg string) *LogSink {
	if msg == "" {
		msg = "vec2"
	}
	return &LogSink{logger: logger, msg: msg}
}

// Write logs p as a single entry, trimming the trailing newline Print adds.
func (s *LogSink) Write(p []byte) (int, error) {
	line := string(p)
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	s.logger.Debug(s.msg, log.String("value", line))
	return len(p), nil
}

// Log emits a as a structured entry with separate x and y fields.
func (s *LogSink) Log(a Vec2) {
	s.logger.Debug(s.msg, log.Float32("x", a.X), log.Float32("y", a.Y))
}
