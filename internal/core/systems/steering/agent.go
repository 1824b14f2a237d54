package steering

import (
	"github.com/lshoek/shymirror/internal/config"
	"github.com/lshoek/shymirror/internal/core/models"
	"github.com/lshoek/shymirror/internal/core/systems/physics"
)

// MaxAngle is the servo travel in degrees.
const MaxAngle = 180

// Agent moves one servo through normalized [0,1]² space with seek steering.
type Agent struct {
	Name     string
	Type     models.ServoType
	Position physics.Vec2
	Velocity physics.Vec2
	MaxSpeed float32
	MaxForce float32
	// SlowRadius is the distance below which Arrive starts braking.
	SlowRadius float32

	accel physics.Vec2
}

func NewAgent(s config.Servo) *Agent {
	return &Agent{
		Name:     s.Name,
		Type:     s.Type,
		Position: s.Rest,
		MaxSpeed: s.MaxSpeed,
		MaxForce: s.MaxForce,

		SlowRadius: s.SlowRadius,
	}
}

func (a *Agent) ApplyForce(f physics.Vec2) {
	a.accel.AddSelf(f)
}

// Seek returns the steering force toward target, limited to MaxForce.
func (a *Agent) Seek(target physics.Vec2) physics.Vec2 {
	desired := physics.Subtract(target, a.Position)
	desired.SetMagnitudeSelf(a.MaxSpeed)

	steer := physics.Subtract(desired, a.Velocity)
	steer.LimitSelf(a.MaxForce)
	return steer
}

// Arrive is Seek with a desired speed that falls off linearly inside
// SlowRadius, so the servo settles on target instead of oscillating.
func (a *Agent) Arrive(target physics.Vec2) physics.Vec2 {
	desired := physics.Subtract(target, a.Position)
	speed := a.MaxSpeed
	if d := physics.Magnitude(desired); d < a.SlowRadius {
		speed = a.MaxSpeed * d / a.SlowRadius
	}
	desired.SetMagnitudeSelf(speed)

	steer := physics.Subtract(desired, a.Velocity)
	steer.LimitSelf(a.MaxForce)
	return steer
}

// Update integrates one tick. Position stays inside the servo range.
func (a *Agent) Update() {
	a.Velocity.AddSelf(a.accel)
	a.Velocity.LimitSelf(a.MaxSpeed)
	a.Position.AddSelf(a.Velocity)
	a.Position.Clamp01Self()
	a.accel = physics.Zero()
}

// Angle maps the axis the servo drives to degrees: X for a base servo,
// Y for a joint.
func (a *Agent) Angle() float32 {
	if a.Type == models.ServoJoint {
		return a.Position.Y * MaxAngle
	}
	return a.Position.X * MaxAngle
}
