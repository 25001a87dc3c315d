package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/concentric/pkg/observability"
	"github.com/matzehuels/concentric/pkg/scene"
)

// Parse reads the scene named by opts.
func Parse(ctx context.Context, opts Options) (*scene.Scene, error) {
	if len(opts.SceneData) == 0 {
		return scene.Load(ctx, opts.Scene)
	}
	start := time.Now()
	s, err := scene.Decode(opts.SceneData, opts.SceneFormat)
	n := 0
	if s != nil {
		n = len(s.Elements)
	}
	observability.IO().OnSceneLoad(ctx, opts.Scene, opts.SceneFormat, n, time.Since(start), err)
	return s, err
}
