package geo

import (
	"sort"

	"github.com/SimoSabev/sortex/internal/models"
)

// Nearby annotates each bin with its distance from the origin and returns
// the bins sorted ascending by distance. If typeFilter is "all" or empty no
// filtering is applied; otherwise only bins of that type are kept. Ties keep
// their input order.
func Nearby(originLat, originLng float64, bins []models.Bin, typeFilter string) []models.Bin {
	result := make([]models.Bin, 0, len(bins))
	for _, bin := range bins {
		if typeFilter != "" && typeFilter != "all" && bin.Type != typeFilter {
			continue
		}
		bin.DistanceKm = DistanceKm(originLat, originLng, bin.Lat, bin.Lng)
		result = append(result, bin)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})

	return result
}
