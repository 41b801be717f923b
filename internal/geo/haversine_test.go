package geo

import (
	"testing"

	"github.com/SimoSabev/sortex/internal/models"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm_Symmetry(t *testing.T) {
	d1 := DistanceKm(42.698334, 23.319941, 40.7589, -73.9851)
	d2 := DistanceKm(40.7589, -73.9851, 42.698334, 23.319941)
	require.Equal(t, d1, d2)
}

func TestDistanceKm_Zero(t *testing.T) {
	require.Equal(t, 0.0, DistanceKm(42.698334, 23.319941, 42.698334, 23.319941))
}

func TestDistanceKm_KnownSeparation(t *testing.T) {
	// Times Square to Central Park is about 3.26 km.
	d := DistanceKm(40.7589, -73.9851, 40.7829, -73.9654)
	require.InDelta(t, 3.26, d, 0.05)
}

func TestNearby_FilterAndSort(t *testing.T) {
	bins := []models.Bin{
		{ID: 1, Type: "glass", Lat: 40.7829, Lng: -73.9654},
		{ID: 2, Type: "plastic", Lat: 40.7589, Lng: -73.9851},
	}

	all := Nearby(40.7589, -73.9851, bins, "all")
	require.Len(t, all, 2)
	require.Equal(t, int64(2), all[0].ID)
	require.Equal(t, int64(1), all[1].ID)
	require.InDelta(t, 0.0, all[0].DistanceKm, 0.001)
	require.InDelta(t, 3.26, all[1].DistanceKm, 0.05)

	glassOnly := Nearby(40.7589, -73.9851, bins, "glass")
	require.Len(t, glassOnly, 1)
	require.Equal(t, int64(1), glassOnly[0].ID)
}

func TestNearby_EmptyFilterMeansAll(t *testing.T) {
	bins := []models.Bin{
		{ID: 1, Type: "glass"},
		{ID: 2, Type: "plastic"},
	}
	require.Len(t, Nearby(0, 0, bins, ""), 2)
}

func TestNearby_StableTieOrder(t *testing.T) {
	bins := []models.Bin{
		{ID: 7, Type: "metal", Lat: 42.0, Lng: 23.0},
		{ID: 8, Type: "paper", Lat: 42.0, Lng: 23.0},
	}
	sorted := Nearby(42.0, 23.0, bins, "all")
	require.Equal(t, int64(7), sorted[0].ID)
	require.Equal(t, int64(8), sorted[1].ID)
}
