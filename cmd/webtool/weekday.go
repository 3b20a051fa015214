package main

import (
	"fmt"

	"github.com/flyingcloud-code/mcp"
)

// Run executes the weekday command.
func (c *WeekdayCmd) Run(deps *Dependencies) error {
	weekday, err := mcp.Weekday(c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, weekday)
	return nil
}
