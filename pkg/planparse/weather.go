package planparse

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// weatherCodeLabels follows the WMO codes used by Open-Meteo.
var weatherCodeLabels = map[int]string{
	0:  "Clear",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snowfall",
	73: "Moderate snowfall",
	75: "Heavy snowfall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Severe thunderstorm with hail",
}

const unknownWeatherLabel = "Variable conditions"

const (
	weatherWinter  = "Cool winter-like • Around 0-10°C"
	weatherSpring  = "Mild spring-like • Around 10-20°C"
	weatherSummer  = "Warm summer-like • Around 20-30°C"
	weatherAutumn  = "Crisp autumn-like • Around 10-20°C"
	weatherUnknown = "Seasonal weather • Check the forecast closer to your dates"
)

var monthBands = map[string]string{
	"december":  weatherWinter,
	"dec":       weatherWinter,
	"january":   weatherWinter,
	"jan":       weatherWinter,
	"february":  weatherWinter,
	"feb":       weatherWinter,
	"march":     weatherSpring,
	"mar":       weatherSpring,
	"april":     weatherSpring,
	"apr":       weatherSpring,
	"may":       weatherSpring,
	"june":      weatherSummer,
	"jun":       weatherSummer,
	"july":      weatherSummer,
	"jul":       weatherSummer,
	"august":    weatherSummer,
	"aug":       weatherSummer,
	"september": weatherAutumn,
	"sep":       weatherAutumn,
	"sept":      weatherAutumn,
	"october":   weatherAutumn,
	"oct":       weatherAutumn,
	"november":  weatherAutumn,
	"nov":       weatherAutumn,
}

var seasonBands = []keywordRule{
	{weatherWinter, []string{"winter"}},
	{weatherSpring, []string{"spring"}},
	{weatherSummer, []string{"summer"}},
	{weatherAutumn, []string{"autumn"}},
}

var letterRun = regexp.MustCompile(`[A-Za-z]+`)

func WeatherCodeLabel(code int) string {
	if label, ok := weatherCodeLabels[code]; ok {
		return label
	}
	return unknownWeatherLabel
}

// FormatTemperatureRange renders "<min>-<max>°C" with whole degrees.
func FormatTemperatureRange(minC, maxC float64) string {
	return fmt.Sprintf("%d-%d°C", int(math.Round(minC)), int(math.Round(maxC)))
}

// FormatWeather joins a WMO label and a temperature range.
func FormatWeather(code int, minC, maxC float64) string {
	return WeatherCodeLabel(code) + " • " + FormatTemperatureRange(minC, maxC)
}

// InferApproxWeatherFromText guesses the weather from the first month named
// in text, then from season words. It never touches the network.
func InferApproxWeatherFromText(text string) string {
	for _, tok := range letterRun.FindAllString(text, -1) {
		lower := strings.ToLower(tok)
		band, ok := monthBands[lower]
		if !ok {
			continue
		}
		// "may" is a month only when capitalized.
		if lower == "may" && tok != "May" {
			continue
		}
		return band
	}
	if band, ok := firstRule(seasonBands, text); ok {
		return band
	}
	return weatherUnknown
}
