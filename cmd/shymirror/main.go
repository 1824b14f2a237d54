package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lshoek/shymirror/internal/core/models"
	"github.com/lshoek/shymirror/internal/core/observability/log"
	"github.com/lshoek/shymirror/internal/core/systems/physics"
	"github.com/lshoek/shymirror/internal/injector"
)

func main() {
	configPath := flag.String("config", "rig.yaml", "rig configuration file")
	x := flag.Float64("x", 0.5, "target x in [0,1]")
	y := flag.Float64("y", 0.5, "target y in [0,1]")
	ticks := flag.Int("ticks", 100, "number of steering ticks")
	interval := flag.Duration("interval", 20*time.Millisecond, "time between ticks")
	mood := flag.String("mood", "IDLE", "mood to run with")
	flag.Parse()

	if err := run(*configPath, physics.New(float32(*x), float32(*y)), *ticks, *interval, *mood); err != nil {
		fmt.Fprintln(os.Stderr, "shymirror:", err)
		os.Exit(1)
	}
}

func checkFlags(ticks int, interval time.Duration) error {
	if ticks < 0 {
		return errors.New("-ticks must not be negative")
	}
	if interval <= 0 {
		return errors.New("-interval must be positive")
	}
	return nil
}

func run(path string, target physics.Vec2, ticks int, interval time.Duration, mood string) error {
	if err := checkFlags(ticks, interval); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := injector.InitializeApp(injector.ConfigPath(path))
	if err != nil {
		return err
	}
	defer cleanup()

	m, err := models.ParseMoodState(mood)
	if err != nil {
		return err
	}

	fingerprint, err := app.Rig.Fingerprint()
	if err != nil {
		return err
	}
	app.Logger.Info("rig loaded",
		log.String("name", app.Rig.Name),
		log.String("fingerprint", fmt.Sprintf("%016x", fingerprint)),
		log.Int("servos", len(app.Rig.Servos)),
	)

	target.Clamp01Self()
	ctrl := app.Controller
	ctrl.SetMood(m)
	ctrl.SetTrigger(models.TriggerActive)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for ctrl.Ticks() < ticks {
		select {
		case <-ctx.Done():
			app.Logger.Warn("interrupted", log.Int("tick", ctrl.Ticks()))
			return nil
		case <-ticker.C:
			ctrl.Step(target)
		}
	}

	ctrl.SetTrigger(models.TriggerInactive)
	for _, a := range ctrl.Agents() {
		fmt.Printf("%s %s ", a.Name, a.Type)
		if err := physics.Print(os.Stdout, a.Position); err != nil {
			return err
		}
	}
	return nil
}
