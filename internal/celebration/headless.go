package celebration

import (
	"go.uber.org/zap"

	"github.com/iburimskiy/celebration/internal/config"
	"github.com/iburimskiy/celebration/internal/fireworks"
	"github.com/iburimskiy/celebration/internal/render"
)

// RenderHeadless plays frames frames of a show seeded from cfg onto a fresh
// w×h raster and returns it with the final counters.
func RenderHeadless(cfg config.Fireworks, frames, w, h int, log *zap.Logger) (*render.Raster, fireworks.Stats, error) {
	q := fireworks.NewFrameQueue()
	show, err := fireworks.New(cfg, q, nil, log)
	if err != nil {
		return nil, fireworks.Stats{}, err
	}
	surface := render.NewRaster(w, h)
	surface.Fade(fireworks.NightSky, 1)

	show.Start(surface)
	for i := 0; i < frames; i++ {
		q.Step()
	}
	show.Stop()
	return surface, show.Stats(), nil
}
