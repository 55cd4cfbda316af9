package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgar/svgar/internal/config"
	"github.com/svgar/svgar/internal/core/observability/log"
	"github.com/svgar/svgar/internal/core/scene"
)

func TestInitializeRuntime(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "warn"
	cfg.Camera.Extents = scene.Extents{W: 3, H: 2}

	rt := InitializeRuntime(cfg)
	require.NotNil(t, rt.Logger)
	assert.Equal(t, log.LevelWarn, rt.Logger.GetLevel())

	s := scene.New(rt.SceneOptions...)
	assert.Equal(t, scene.Extents{W: 3, H: 2}, s.Camera().Extents)
}
