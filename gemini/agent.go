// Package gemini implements question answering and token counting on
// the Google Gemini API. The Agent drives a function-calling loop over
// the web tools, so the model can search, fetch pages and look up
// weather before composing an answer.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/flyingcloud-code/mcp"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when Agent.Model is empty.
const DefaultModel = "gemini-2.5-flash"

// DefaultMaxTurns bounds how many rounds of tool calls a single
// question may trigger before the agent gives up.
const DefaultMaxTurns = 5

var _ mcp.Asker = (*Agent)(nil)

// Agent answers natural language questions by letting Gemini call the
// web tools. Client is required; a tool whose service is nil is simply
// not offered to the model.
type Agent struct {
	Client   *genai.Client
	Content  mcp.ContentService
	Searcher mcp.Searcher
	Weather  mcp.WeatherService
	Sitemaps mcp.SitemapService

	// Model selects the Gemini model. Empty means DefaultModel.
	Model string

	// MaxTurns bounds tool-calling rounds. Zero means DefaultMaxTurns.
	MaxTurns int
}

// Ask answers a natural language question, calling tools as the model
// requests them. Tool failures are reported back to the model as tool
// output rather than aborting the loop, so it can recover or explain.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", mcp.Errorf(mcp.EINVALID, "question required")
	}

	model := a.Model
	if model == "" {
		model = DefaultModel
	}
	maxTurns := a.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	config := BuildConfig(a.Declarations())
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: question}},
	}}

	for turn := 0; turn < maxTurns; turn++ {
		result, err := a.Client.Models.GenerateContent(ctx, model, contents, config)
		if err != nil {
			return "", err
		}
		if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
			return "", mcp.Errorf(mcp.EINTERNAL, "gemini returned no candidates")
		}

		content := result.Candidates[0].Content
		calls := functionCalls(content)
		if len(calls) == 0 {
			return result.Text(), nil
		}

		// Echo the model turn, then answer every call it made.
		contents = append(contents, content)
		parts := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					Name:     call.Name,
					Response: map[string]any{"output": a.CallTool(ctx, call.Name, call.Args)},
				},
			})
		}
		contents = append(contents, &genai.Content{Role: "user", Parts: parts})
	}

	return "", mcp.Errorf(mcp.EINTERNAL, "no answer after %d tool turns", maxTurns)
}

// CallTool executes a single tool call and renders the outcome as the
// text the model sees. Errors come back as messages, never as Go
// errors, matching how the tools report failures to the model.
func (a *Agent) CallTool(ctx context.Context, name string, args map[string]any) string {
	switch name {
	case "get_web_content":
		return a.callGetWebContent(ctx, args)
	case "web_search":
		return a.callWebSearch(ctx, args)
	case "get_weather":
		return a.callGetWeather(ctx, args)
	case "get_weekday":
		return a.callGetWeekday(args)
	case "list_site_urls":
		return a.callListSiteURLs(ctx, args)
	}
	return fmt.Sprintf("Unknown tool %q.", name)
}

func (a *Agent) callGetWebContent(ctx context.Context, args map[string]any) string {
	if a.Content == nil {
		return "Web content is not available."
	}
	format, err := mcp.ParseFormat(stringArg(args, "format"))
	if err != nil {
		return mcp.ErrorMessage(err)
	}
	content, err := a.Content.GetWebContent(ctx, stringArg(args, "url"), format)
	if err != nil {
		return fmt.Sprintf("An error occurred while fetching the page: %s", mcp.ErrorMessage(err))
	}
	return content.Content
}

func (a *Agent) callWebSearch(ctx context.Context, args map[string]any) string {
	if a.Searcher == nil {
		return "Web search is not available."
	}
	query := stringArg(args, "query")
	results, err := a.Searcher.Search(ctx, query, intArg(args, "num_results"))
	if err != nil {
		return fmt.Sprintf("An error occurred during the search: %s", mcp.ErrorMessage(err))
	}
	if len(results) == 0 {
		return fmt.Sprintf("No results found for %q.", query)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Search results for %q:\n", query)
	for i, r := range results {
		fmt.Fprintf(&sb, "%d. %s\n   %s\n", i+1, r.Title, r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&sb, "   %s\n", r.Snippet)
		}
	}
	return sb.String()
}

func (a *Agent) callGetWeather(ctx context.Context, args map[string]any) string {
	if a.Weather == nil {
		return "Weather lookups are not available."
	}
	weather, err := a.Weather.WeatherForDate(ctx, stringArg(args, "city"), stringArg(args, "date"))
	if err != nil {
		return fmt.Sprintf("An error occurred while fetching the weather: %s", mcp.ErrorMessage(err))
	}
	return weather.String()
}

func (a *Agent) callGetWeekday(args map[string]any) string {
	weekday, err := mcp.Weekday(stringArg(args, "date"))
	if err != nil {
		return mcp.ErrorMessage(err)
	}
	return weekday
}

func (a *Agent) callListSiteURLs(ctx context.Context, args map[string]any) string {
	if a.Sitemaps == nil {
		return "Site URL listing is not available."
	}
	siteURL := stringArg(args, "site_url")
	urls, err := a.Sitemaps.DiscoverURLs(ctx, siteURL, nil)
	if err != nil {
		return fmt.Sprintf("An error occurred while reading the sitemap: %s", mcp.ErrorMessage(err))
	}
	if len(urls) == 0 {
		return fmt.Sprintf("No sitemap URLs found for %q.", siteURL)
	}
	return fmt.Sprintf("Found %d URLs:\n%s", len(urls), strings.Join(urls, "\n"))
}

// functionCalls collects the function call parts of a model turn.
func functionCalls(content *genai.Content) []*genai.FunctionCall {
	var calls []*genai.FunctionCall
	for _, part := range content.Parts {
		if part != nil && part.FunctionCall != nil {
			calls = append(calls, part.FunctionCall)
		}
	}
	return calls
}

// stringArg reads a string argument, returning "" when absent.
func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// intArg reads a numeric argument, returning 0 when absent. JSON
// numbers decode as float64.
func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// BuildConfig returns the GenerateContentConfig for the agent loop:
// the workflow instruction, deterministic sampling and the tool
// declarations.
func BuildConfig(declarations []*genai.FunctionDeclaration) *genai.GenerateContentConfig {
	temp := float32(0)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant equipped with several tools.\n\n" +
					"Workflow guidance:\n" +
					"1. Analyze the user's request.\n" +
					"2. If the request requires current information or details from the web, first use web_search to find relevant URLs.\n" +
					"3. If the search results provide promising URLs, use get_web_content on the most relevant URL to fetch its content.\n" +
					"4. Synthesize the information from the search results and the fetched content to answer the user's question.\n" +
					"5. For other requests, use the appropriate tool directly or answer based on your knowledge.",
			}},
		},
		Temperature: &temp,
	}
	if len(declarations) > 0 {
		config.Tools = []*genai.Tool{{FunctionDeclarations: declarations}}
	}
	return config
}
