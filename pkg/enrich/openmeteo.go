package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"wanderplan/pkg/planparse"
)

const (
	DefaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"
)

// WeatherClient reads today's forecast for a place from Open-Meteo.
type WeatherClient struct {
	HTTP        *http.Client
	GeocodeURL  string
	ForecastURL string
}

func NewWeatherClient(httpClient *http.Client, geocodeURL, forecastURL string) *WeatherClient {
	if httpClient == nil {
		httpClient = NewHTTPClient(DefaultTimeout)
	}
	if geocodeURL == "" {
		geocodeURL = DefaultGeocodeURL
	}
	if forecastURL == "" {
		forecastURL = DefaultForecastURL
	}
	return &WeatherClient{HTTP: httpClient, GeocodeURL: geocodeURL, ForecastURL: forecastURL}
}

type coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Lookup geocodes the place, or the destination when the place is unknown,
// and formats the first forecast day.
func (c *WeatherClient) Lookup(ctx context.Context, placeName, destinationHint string) (string, error) {
	var (
		loc coordinates
		err error
	)
	for _, name := range []string{placeName, destinationHint} {
		name = strings.TrimSpace(name)
		if name == "" || name == planparse.FallbackPlace {
			continue
		}
		if loc, err = c.geocode(ctx, name); err == nil {
			break
		}
	}
	if err != nil {
		return "", err
	}
	if loc == (coordinates{}) {
		return "", fmt.Errorf("open-meteo geocode: %w", ErrNoResult)
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', 4, 64))
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	q.Set("timezone", "auto")
	q.Set("forecast_days", "1")

	var payload struct {
		Daily struct {
			WeatherCode []int     `json:"weather_code"`
			TempMax     []float64 `json:"temperature_2m_max"`
			TempMin     []float64 `json:"temperature_2m_min"`
		} `json:"daily"`
	}
	if err := getJSON(ctx, c.HTTP, c.ForecastURL+"?"+q.Encode(), &payload); err != nil {
		return "", fmt.Errorf("open-meteo forecast: %w", err)
	}
	d := payload.Daily
	if len(d.WeatherCode) == 0 || len(d.TempMax) == 0 || len(d.TempMin) == 0 {
		return "", fmt.Errorf("open-meteo forecast: %w", ErrNoResult)
	}
	return planparse.FormatWeather(d.WeatherCode[0], d.TempMin[0], d.TempMax[0]), nil
}

func (c *WeatherClient) geocode(ctx context.Context, name string) (coordinates, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")

	var payload struct {
		Results []coordinates `json:"results"`
	}
	if err := getJSON(ctx, c.HTTP, c.GeocodeURL+"?"+q.Encode(), &payload); err != nil {
		return coordinates{}, fmt.Errorf("open-meteo geocode %q: %w", name, err)
	}
	if len(payload.Results) == 0 {
		return coordinates{}, fmt.Errorf("open-meteo geocode %q: %w", name, ErrNoResult)
	}
	return payload.Results[0], nil
}
