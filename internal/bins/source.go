package bins

import (
	"context"

	"github.com/SimoSabev/sortex/internal/geo"
	"github.com/SimoSabev/sortex/internal/models"
)

// Source supplies raw candidate bins around a coordinate.
type Source interface {
	FetchAround(ctx context.Context, lat, lng float64, radiusMeters int) ([]models.Bin, error)
}

// StaticSource serves a fixed bin list, filtered to the requested radius.
type StaticSource struct {
	bins []models.Bin
}

func NewStaticSource(bins []models.Bin) *StaticSource {
	return &StaticSource{bins: bins}
}

func (s *StaticSource) FetchAround(_ context.Context, lat, lng float64, radiusMeters int) ([]models.Bin, error) {
	result := make([]models.Bin, 0, len(s.bins))
	for _, bin := range s.bins {
		if geo.DistanceKm(lat, lng, bin.Lat, bin.Lng)*1000 <= float64(radiusMeters) {
			result = append(result, bin)
		}
	}
	return result, nil
}
