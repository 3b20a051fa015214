package mcp

import (
	"context"
	"fmt"
	"strings"
)

// Weather describes conditions for a location on a given date.
// Values are reported verbatim from the provider, which serves them as
// strings (e.g. TempC "21").
type Weather struct {
	Location    string `json:"location"`
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description"`
	TempC       string `json:"tempC"`
	FeelsLikeC  string `json:"feelsLikeC"`
	Humidity    string `json:"humidity"`

	// MinTempC and MaxTempC are set when the provider has a forecast
	// entry for Date, empty otherwise.
	MinTempC string `json:"minTempC,omitempty"`
	MaxTempC string `json:"maxTempC,omitempty"`
}

// String formats the weather as a single human-readable line.
func (w *Weather) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Weather for %s on %s: %s, %s°C (feels like %s°C)", w.Location, w.Date, w.Description, w.TempC, w.FeelsLikeC)
	if w.Humidity != "" {
		fmt.Fprintf(&sb, ", humidity %s%%", w.Humidity)
	}
	if w.MinTempC != "" && w.MaxTempC != "" {
		fmt.Fprintf(&sb, ", low %s°C, high %s°C", w.MinTempC, w.MaxTempC)
	}
	return sb.String()
}

// WeatherService reports weather conditions.
type WeatherService interface {
	// WeatherForDate returns conditions for a location on a date
	// (YYYY-MM-DD). An empty date selects today. Returns EINVALID for
	// a malformed date, EUNAVAILABLE if the provider cannot be reached.
	WeatherForDate(ctx context.Context, location, date string) (*Weather, error)
}
