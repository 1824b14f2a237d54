package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/lshoek/shymirror/internal/core/models"
	"github.com/lshoek/shymirror/internal/core/systems/physics"
)

var ErrInvalidConfig = errors.New("invalid config")

// Rig describes the animatronic: its servos, mood colors and the initial
// trigger state.
type Rig struct {
	Name    string                          `json:"name" yaml:"name"`
	Log     LogConfig                       `json:"log" yaml:"log"`
	Servos  []Servo                         `json:"servos" yaml:"servos"`
	Moods   map[models.MoodState]models.RGB `json:"moods,omitempty" yaml:"moods,omitempty"`
	Trigger models.TriggerState             `json:"trigger" yaml:"trigger"`
}

type LogConfig struct {
	Level    string `json:"level,omitempty" yaml:"level,omitempty"`
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

// Servo describes one actuator. Rest is its normalized home position.
type Servo struct {
	ID       string           `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string           `json:"name" yaml:"name"`
	Type     models.ServoType `json:"type" yaml:"type"`
	Pin      int              `json:"pin" yaml:"pin"`
	Rest     physics.Vec2     `json:"rest" yaml:"rest"`
	MaxSpeed float32          `json:"max_speed" yaml:"max_speed"`
	MaxForce float32          `json:"max_force" yaml:"max_force"`

	SlowRadius float32 `json:"slow_radius,omitempty" yaml:"slow_radius,omitempty"`
}

// DefaultSlowRadius is used when a servo sets no slow_radius.
const DefaultSlowRadius float32 = 0.2

// ApplyDefaults fills unset fields. Trigger defaults to WAITING as its zero value.
func (r *Rig) ApplyDefaults() {
	if r.Log.Level == "" {
		r.Log.Level = "info"
	}
	if r.Log.Encoding == "" {
		r.Log.Encoding = "json"
	}
	for i := range r.Servos {
		if r.Servos[i].ID == "" {
			r.Servos[i].ID = uuid.NewString()
		}
		if r.Servos[i].SlowRadius == 0 {
			r.Servos[i].SlowRadius = DefaultSlowRadius
		}
	}
}

// Validate validates the rig configuration
func (r *Rig) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: rig name is required", ErrInvalidConfig)
	}
	if len(r.Servos) == 0 {
		return fmt.Errorf("%w: at least one servo is required", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(r.Servos))
	for i, s := range r.Servos {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("servo %d: %w", i, err)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("servo %d: %w: duplicate name %q", i, ErrInvalidConfig, s.Name)
		}
		seen[s.Name] = struct{}{}
	}

	return nil
}

// Validate validates the servo configuration
func (s *Servo) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: servo name is required", ErrInvalidConfig)
	}
	if !positive(s.MaxSpeed) {
		return fmt.Errorf("%w: %s: max_speed must be positive and finite", ErrInvalidConfig, s.Name)
	}
	if !positive(s.MaxForce) {
		return fmt.Errorf("%w: %s: max_force must be positive and finite", ErrInvalidConfig, s.Name)
	}
	if !(s.SlowRadius >= 0) || math.IsInf(float64(s.SlowRadius), 0) {
		return fmt.Errorf("%w: %s: slow_radius must be finite and not negative", ErrInvalidConfig, s.Name)
	}

	clamped := s.Rest
	clamped.Clamp01Self()
	if clamped != s.Rest {
		return fmt.Errorf("%w: %s: rest %s outside [0,1]", ErrInvalidConfig, s.Name, s.Rest)
	}

	return nil
}

// positive rejects NaN along with zero, negatives and infinities.
func positive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 1)
}

// MoodColor returns the configured color for m, or black.
func (r *Rig) MoodColor(m models.MoodState) models.RGB {
	return r.Moods[m]
}
