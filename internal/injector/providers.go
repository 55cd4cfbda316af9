package injector

import (
	"github.com/svgar/svgar/internal/config"
	"github.com/svgar/svgar/internal/core/observability/log"
	"github.com/svgar/svgar/internal/core/scene"
)

// Runtime is what the command-line host needs to build scenes.
type Runtime struct {
	Logger       *log.Logger
	SceneOptions []scene.Option
}

func ProvideLogger(cfg config.Config) *log.Logger {
	return log.New(cfg.LogLevel())
}

func ProvideSceneOptions(cfg config.Config, logger *log.Logger) []scene.Option {
	return []scene.Option{
		scene.WithLogger(logger),
		scene.WithCameraExtents(cfg.Camera.Extents.W, cfg.Camera.Extents.H),
	}
}

func ProvideRuntime(logger *log.Logger, opts []scene.Option) Runtime {
	return Runtime{Logger: logger, SceneOptions: opts}
}
