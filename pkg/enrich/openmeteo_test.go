package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newOpenMeteoServer(t *testing.T, known map[string][2]float64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		results := []map[string]float64{}
		if c, ok := known[r.URL.Query().Get("name")]; ok {
			results = append(results, map[string]float64{"latitude": c[0], "longitude": c[1]})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"results": results})
	})
	mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("daily") != "weather_code,temperature_2m_max,temperature_2m_min" {
			t.Errorf("daily = %q", q.Get("daily"))
		}
		if q.Get("latitude") != "48.8566" {
			t.Errorf("latitude = %q", q.Get("latitude"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"daily": map[string]any{
				"weather_code":       []int{3},
				"temperature_2m_max": []float64{12.4},
				"temperature_2m_min": []float64{5.2},
			},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestWeatherClientLookup(t *testing.T) {
	t.Parallel()

	srv := newOpenMeteoServer(t, map[string][2]float64{"Paris": {48.8566, 2.3522}})
	client := NewWeatherClient(srv.Client(), srv.URL+"/v1/search", srv.URL+"/v1/forecast")

	tests := []struct {
		name, place, hint string
	}{
		{"place geocodes", "Paris", ""},
		{"falls back to hint", "Le Marais", "Paris"},
	}
	for _, tt := range tests {
		got, err := client.Lookup(context.Background(), tt.place, tt.hint)
		if err != nil {
			t.Fatalf("%s: Lookup() error = %v", tt.name, err)
		}
		if got != "Overcast • 5-12°C" {
			t.Fatalf("%s: Lookup() = %q", tt.name, got)
		}
	}
}

func TestWeatherClientUnknownPlace(t *testing.T) {
	t.Parallel()

	srv := newOpenMeteoServer(t, nil)
	client := NewWeatherClient(srv.Client(), srv.URL+"/v1/search", srv.URL+"/v1/forecast")

	if _, err := client.Lookup(context.Background(), "Atlantis", ""); !errors.Is(err, ErrNoResult) {
		t.Fatalf("err = %v, want ErrNoResult", err)
	}
	if _, err := client.Lookup(context.Background(), "", ""); !errors.Is(err, ErrNoResult) {
		t.Fatalf("empty names: err = %v, want ErrNoResult", err)
	}
}
