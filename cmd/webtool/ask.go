package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/flyingcloud-code/mcp"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	if c.Interactive {
		return c.runInteractive(deps)
	}

	if strings.TrimSpace(c.Question) == "" {
		fmt.Fprintf(deps.Stderr, "error: question required\n")
		return mcp.Errorf(mcp.EINVALID, "question required")
	}

	answer, err := deps.Asker.Ask(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}

// runInteractive answers queries in a loop until "quit" or EOF.
// Each question is answered independently. A failed query is reported
// and the loop continues.
func (c *AskCmd) runInteractive(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Type your queries or 'quit' to exit.")

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "\nQuery: ")
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			return scanner.Err()
		}

		query := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(query, "quit") || strings.EqualFold(query, "exit") {
			return nil
		}
		if query == "" {
			continue
		}

		answer, err := deps.Asker.Ask(deps.Ctx, query)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
			continue
		}

		fmt.Fprintf(deps.Stdout, "\n%s\n", answer)
	}
}
