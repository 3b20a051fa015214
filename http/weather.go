package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/flyingcloud-code/mcp"
)

// DefaultWeatherBaseURL is the wttr.in endpoint serving JSON forecasts.
const DefaultWeatherBaseURL = "https://wttr.in"

var _ mcp.WeatherService = (*WeatherService)(nil)

// WeatherService reports conditions using the wttr.in JSON API
// (?format=j1). Current conditions are always present; min/max
// temperatures are filled in when the requested date falls inside the
// provider's three-day forecast window.
type WeatherService struct {
	client  *http.Client
	baseURL string
	now     func() time.Time
}

// WeatherOption configures a WeatherService.
type WeatherOption func(*WeatherService)

// WithWeatherBaseURL overrides the provider endpoint. Used in tests.
func WithWeatherBaseURL(baseURL string) WeatherOption {
	return func(s *WeatherService) {
		s.baseURL = baseURL
	}
}

// WithWeatherClient overrides the HTTP client.
func WithWeatherClient(client *http.Client) WeatherOption {
	return func(s *WeatherService) {
		s.client = client
	}
}

// NewWeatherService creates a WeatherService against wttr.in.
func NewWeatherService(opts ...WeatherOption) *WeatherService {
	s := &WeatherService{
		baseURL: DefaultWeatherBaseURL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return s
}

// wttrResponse mirrors the slice of the j1 payload we read. The
// provider serves all numeric values as strings.
type wttrResponse struct {
	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		FeelsLikeC  string `json:"FeelsLikeC"`
		Humidity    string `json:"humidity"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
	Weather []struct {
		Date     string `json:"date"`
		MinTempC string `json:"mintempC"`
		MaxTempC string `json:"maxtempC"`
	} `json:"weather"`
}

// WeatherForDate returns conditions for a location on a date.
func (s *WeatherService) WeatherForDate(ctx context.Context, location, date string) (*mcp.Weather, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, mcp.Errorf(mcp.EINVALID, "location required")
	}
	if date == "" {
		date = s.now().Format(mcp.DateLayout)
	}
	if _, err := time.Parse(mcp.DateLayout, date); err != nil {
		return nil, mcp.Errorf(mcp.EINVALID, "invalid date %q, expected YYYY-MM-DD", date)
	}

	endpoint := s.baseURL + "/" + url.PathEscape(location) + "?format=j1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, mcp.Errorf(mcp.EINTERNAL, "build weather request: %s", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, mcp.Errorf(mcp.EUNAVAILABLE, "weather for %q: %s", location, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, mcp.Errorf(mcp.ENOTFOUND, "unknown location %q", location)
	case resp.StatusCode != http.StatusOK:
		return nil, mcp.Errorf(mcp.EUNAVAILABLE, "weather provider HTTP %d", resp.StatusCode)
	}

	var payload wttrResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, mcp.Errorf(mcp.EUNAVAILABLE, "decode weather response: %s", err)
	}
	if len(payload.CurrentCondition) == 0 {
		return nil, mcp.Errorf(mcp.ENOTFOUND, "no conditions reported for %q", location)
	}

	cur := payload.CurrentCondition[0]
	w := &mcp.Weather{
		Location:   location,
		Date:       date,
		TempC:      cur.TempC,
		FeelsLikeC: cur.FeelsLikeC,
		Humidity:   cur.Humidity,
	}
	if len(cur.WeatherDesc) > 0 {
		w.Description = strings.TrimSpace(cur.WeatherDesc[0].Value)
	}
	for _, day := range payload.Weather {
		if day.Date == date {
			w.MinTempC = day.MinTempC
			w.MaxTempC = day.MaxTempC
			break
		}
	}

	return w, nil
}
