package bins

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinFromElement_TagParsing(t *testing.T) {
	el := overpassElement{
		ID:  4242,
		Lat: 42.7,
		Lon: 23.3,
		Tags: map[string]string{
			"amenity":              "recycling",
			"name":                 "Main Square Containers",
			"addr:street":          "ul. Graf Ignatiev",
			"addr:housenumber":     "15",
			"opening_hours":        "Mo-Fr 08:00-20:00",
			"recycling:glass":      "yes",
			"recycling:batteries":  "yes",
			"recycling:cardboard":  "no",
			"recycling:electronic": "no",
		},
	}

	bin := binFromElement(el, 0)
	require.Equal(t, int64(4242), bin.ID)
	require.Equal(t, "Main Square Containers", bin.Name)
	require.Equal(t, "glass", bin.Type)
	require.Equal(t, "ul. Graf Ignatiev 15", bin.Address)
	require.Equal(t, "batteries, glass", bin.Description)
	require.Equal(t, "Mo-Fr 08:00-20:00", bin.Hours)
}

func TestBinFromElement_Defaults(t *testing.T) {
	el := overpassElement{
		ID:   7,
		Tags: map[string]string{"recycling:scrap_metal": "yes"},
	}

	bin := binFromElement(el, 2)
	require.Equal(t, "Recycling Point #3", bin.Name)
	require.Equal(t, "mixed", bin.Type, "unknown materials land in the mixed bucket")
	require.Equal(t, "Unknown address", bin.Address)
	require.Equal(t, "24/7", bin.Hours)
}

func TestBinFromElement_ElectronicsBecomesEwaste(t *testing.T) {
	el := overpassElement{
		ID:   8,
		Tags: map[string]string{"recycling:electronics": "yes"},
	}
	require.Equal(t, "ewaste", binFromElement(el, 0).Type)
}

func TestFetchAround(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{
			"elements": [
				{"id": 1, "lat": 42.69, "lon": 23.32, "tags": {"recycling:plastic": "yes"}},
				{"id": 2, "lat": 42.70, "lon": 23.33, "tags": {"recycling:glass": "yes", "name": "Glass Only"}}
			]
		}`))
	}))
	defer srv.Close()

	client := NewOverpassClient(srv.URL)
	found, err := client.FetchAround(context.Background(), 42.698334, 23.319941, 2000)
	require.NoError(t, err)
	require.Len(t, found, 2)
	require.Equal(t, "plastic", found[0].Type)
	require.Equal(t, "Glass Only", found[1].Name)
}

func TestFetchAround_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too busy", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewOverpassClient(srv.URL)
	_, err := client.FetchAround(context.Background(), 42.698334, 23.319941, 2000)
	require.Error(t, err)
}

func TestFixture_TypesAreValid(t *testing.T) {
	valid := map[string]bool{
		"plastic": true, "glass": true, "paper": true,
		"metal": true, "ewaste": true, "textile": true, "mixed": true,
	}
	for _, bin := range Fixture() {
		require.True(t, valid[bin.Type], "bin %d has type %q", bin.ID, bin.Type)
	}
}
