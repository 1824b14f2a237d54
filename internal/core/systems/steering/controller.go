package steering

import (
	"github.com/lshoek/shymirror/internal/config"
	"github.com/lshoek/shymirror/internal/core/models"
	"github.com/lshoek/shymirror/internal/core/observability/log"
	"github.com/lshoek/shymirror/internal/core/systems/physics"
)

// Controller drives every servo of a rig toward a shared target and carries
// the current mood and trigger state. It holds no transition logic.
type Controller struct {
	rig     *config.Rig
	agents  []*Agent
	logger  log.Log
	mood    models.MoodState
	trigger models.TriggerState
	ticks   int
}

func NewController(rig *config.Rig, logger log.Log) *Controller {
	agents := make([]*Agent, len(rig.Servos))
	for i, s := range rig.Servos {
		agents[i] = NewAgent(s)
	}
	return &Controller{
		rig:     rig,
		agents:  agents,
		logger:  logger.With(log.String("rig", rig.Name)),
		mood:    models.MoodIdle,
		trigger: rig.Trigger,
	}
}

func (c *Controller) Agents() []*Agent { return c.agents }

func (c *Controller) Mood() models.MoodState { return c.mood }

func (c *Controller) Trigger() models.TriggerState { return c.trigger }

func (c *Controller) Ticks() int { return c.ticks }

func (c *Controller) SetMood(m models.MoodState) {
	if m == c.mood {
		return
	}
	c.logger.Info("mood changed",
		log.Stringer("from", c.mood),
		log.Stringer("to", m),
		log.Stringer("color", c.rig.MoodColor(m)),
	)
	c.mood = m
}

func (c *Controller) SetTrigger(t models.TriggerState) {
	if t == c.trigger {
		return
	}
	c.logger.Info("trigger changed", log.Stringer("from", c.trigger), log.Stringer("to", t))
	c.trigger = t
}

// Color is the configured color of the current mood.
func (c *Controller) Color() models.RGB {
	return c.rig.MoodColor(c.mood)
}

// Step steers every agent toward target and advances one tick.
func (c *Controller) Step(target physics.Vec2) {
	c.ticks++
	for _, a := range c.agents {
		a.ApplyForce(a.Arrive(target))
		a.Update()
		c.logger.Debug("servo step",
			log.Int("tick", c.ticks),
			log.String("servo", a.Name),
			log.Stringer("position", a.Position),
			log.Float32("angle", a.Angle()),
		)
	}
}
