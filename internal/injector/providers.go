package injector

import (
	"fmt"

	"github.com/google/wire"

	"github.com/lshoek/shymirror/internal/config"
	"github.com/lshoek/shymirror/internal/core/observability/log"
	"github.com/lshoek/shymirror/internal/core/systems/steering"
)

// ConfigPath is the rig file handed to the injector.
type ConfigPath string

// App bundles what the CLI needs after wiring.
type App struct {
	Rig        *config.Rig
	Logger     log.Log
	Controller *steering.Controller
}

var ProviderSet = wire.NewSet(
	ProvideRig,
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	steering.NewController,
	wire.Struct(new(App), "*"),
)

func ProvideRig(path ConfigPath) (*config.Rig, error) {
	return config.LoadFile(string(path))
}

// ProvideLogger builds the logger from the rig's log section. The cleanup
// flushes buffered entries.
func ProvideLogger(rig *config.Rig) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(rig.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("rig %s: %w", rig.Name, err)
	}
	logger, err := log.New(log.Options{Level: level, Encoding: rig.Log.Encoding})
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}
