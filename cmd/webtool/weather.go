package main

import (
	"fmt"

	"github.com/flyingcloud-code/mcp"
)

// Run executes the weather command.
func (c *WeatherCmd) Run(deps *Dependencies) error {
	weather, err := deps.Weather.WeatherForDate(deps.Ctx, c.Location, c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, weather)
	return nil
}
