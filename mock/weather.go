package mock

import (
	"context"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.WeatherService = (*WeatherService)(nil)

// WeatherService represents a mock of mcp.WeatherService.
type WeatherService struct {
	WeatherForDateFn func(ctx context.Context, location, date string) (*mcp.Weather, error)
}

func (s *WeatherService) WeatherForDate(ctx context.Context, location, date string) (*mcp.Weather, error) {
	return s.WeatherForDateFn(ctx, location, date)
}
