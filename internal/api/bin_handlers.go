package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/SimoSabev/sortex/internal/geo"
	"github.com/SimoSabev/sortex/internal/models"
)

// Defaults mirror the map page: central Sofia, 2km radius, all bin types.
const (
	defaultBinLat    = 42.698334
	defaultBinLng    = 23.319941
	defaultBinRadius = 2000
)

type BinsResponse struct {
	Bins  []models.Bin `json:"bins"`
	Count int          `json:"count"`
}

// @Summary      Nearby recycling bins
// @Description  Returns recycling drop-off points around a coordinate, sorted ascending by Haversine distance and optionally filtered by material type.
// @Tags         bins
// @Produce      json
// @Param        lat     query  number  false  "Origin latitude (default central Sofia)"
// @Param        lng     query  number  false  "Origin longitude"
// @Param        radius  query  int     false  "Search radius in meters (default 2000)"
// @Param        type    query  string  false  "Material filter: plastic, glass, paper, metal, ewaste, textile, mixed or all"
// @Success      200  {object}  BinsResponse
// @Failure      502  {string}  string "Bin provider unavailable"
// @Router       /recycling-bins [get]
func (s *Server) RecyclingBinsHandler(w http.ResponseWriter, r *http.Request) {
	lat := parseFloatOr(r.URL.Query().Get("lat"), defaultBinLat)
	lng := parseFloatOr(r.URL.Query().Get("lng"), defaultBinLng)
	radius := parseIntOr(r.URL.Query().Get("radius"), defaultBinRadius)
	typeFilter := r.URL.Query().Get("type")
	if typeFilter == "" {
		typeFilter = "all"
	}

	candidates, err := s.binSource.FetchAround(r.Context(), lat, lng, radius)
	if err != nil {
		log.Printf("ERROR: bin source failed for (%f, %f): %v", lat, lng, err)
		http.Error(w, "Bin provider unavailable", http.StatusBadGateway)
		return
	}

	sorted := geo.Nearby(lat, lng, candidates, typeFilter)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BinsResponse{Bins: sorted, Count: len(sorted)})
}

func parseFloatOr(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseIntOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
