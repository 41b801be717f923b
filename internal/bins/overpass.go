package bins

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/SimoSabev/sortex/internal/models"
)

// knownMaterials maps Overpass recycling:* tag names to Sortex categories.
// OSM tags electronics; the rest of the system calls that category ewaste.
var knownMaterials = map[string]string{
	"glass":       "glass",
	"plastic":     "plastic",
	"paper":       "paper",
	"metal":       "metal",
	"textile":     "textile",
	"electronics": "ewaste",
}

// OverpassClient fetches recycling containers from the Overpass API. The
// public instance asks clients to throttle themselves, so all requests go
// through a shared rate limiter.
type OverpassClient struct {
	apiURL     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewOverpassClient(apiURL string) *OverpassClient {
	return &OverpassClient{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// FetchAround queries all amenity=recycling nodes within radiusMeters of the
// given coordinate.
func (c *OverpassClient) FetchAround(ctx context.Context, lat, lng float64, radiusMeters int) ([]models.Bin, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
    [out:json][timeout:25];
    (
      node["amenity"="recycling"](around:%d,%f,%f);
    );
    out body;
  `, radiusMeters, lat, lng)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(query))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	var data overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode overpass response: %w", err)
	}

	bins := make([]models.Bin, 0, len(data.Elements))
	for i, el := range data.Elements {
		bins = append(bins, binFromElement(el, i))
	}

	return bins, nil
}

// binFromElement turns a raw Overpass node into a Bin. Accepted materials
// come from recycling:<material>=yes tags; the first known material decides
// the bin type, anything else falls into the "mixed" bucket.
func binFromElement(el overpassElement, index int) models.Bin {
	var materials []string
	for key, val := range el.Tags {
		if strings.HasPrefix(key, "recycling:") && val == "yes" {
			materials = append(materials, strings.TrimPrefix(key, "recycling:"))
		}
	}
	sort.Strings(materials)

	binType := "mixed"
	for _, m := range materials {
		if mapped, ok := knownMaterials[m]; ok {
			binType = mapped
			break
		}
	}

	name := el.Tags["name"]
	if name == "" {
		name = fmt.Sprintf("Recycling Point #%d", index+1)
	}

	address := "Unknown address"
	if street := el.Tags["addr:street"]; street != "" {
		address = strings.TrimSpace(street + " " + el.Tags["addr:housenumber"])
	}

	hours := el.Tags["opening_hours"]
	if hours == "" {
		hours = "24/7"
	}

	return models.Bin{
		ID:          el.ID,
		Name:        name,
		Lat:         el.Lat,
		Lng:         el.Lon,
		Type:        binType,
		Address:     address,
		Description: strings.Join(materials, ", "),
		Hours:       hours,
	}
}
