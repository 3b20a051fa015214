package gemini

import "google.golang.org/genai"

// Tool declarations offered to the model. Descriptions are written for
// the model, not for humans reading godoc.
var (
	getWebContentDecl = &genai.FunctionDeclaration{
		Name:        "get_web_content",
		Description: "Fetches the main content of a web page with boilerplate like headers, footers and navigation removed, and returns it in the requested format.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"url": {
					Type:        genai.TypeString,
					Description: "The URL of the web page to fetch.",
				},
				"format": {
					Type:        genai.TypeString,
					Description: "The output format. Defaults to markdown.",
					Enum:        []string{"markdown", "html", "text"},
				},
			},
			Required: []string{"url"},
		},
	}

	webSearchDecl = &genai.FunctionDeclaration{
		Name:        "web_search",
		Description: "Performs a web search for the given query and returns the top results with titles, URLs and snippets.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"query": {
					Type:        genai.TypeString,
					Description: "The search query string.",
				},
				"num_results": {
					Type:        genai.TypeInteger,
					Description: "The maximum number of results to return. Defaults to 5.",
				},
			},
			Required: []string{"query"},
		},
	}

	getWeatherDecl = &genai.FunctionDeclaration{
		Name:        "get_weather",
		Description: "Returns current weather conditions for a city, with the forecast low and high when a date within the forecast window is given.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"city": {
					Type:        genai.TypeString,
					Description: "The city name, e.g. 'London' or 'New York'.",
				},
				"date": {
					Type:        genai.TypeString,
					Description: "The date in YYYY-MM-DD format. Defaults to today.",
				},
			},
			Required: []string{"city"},
		},
	}

	getWeekdayDecl = &genai.FunctionDeclaration{
		Name:        "get_weekday",
		Description: "Returns the English weekday name for a date.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date": {
					Type:        genai.TypeString,
					Description: "The date in YYYY-MM-DD format.",
				},
			},
			Required: []string{"date"},
		},
	}

	listSiteURLsDecl = &genai.FunctionDeclaration{
		Name:        "list_site_urls",
		Description: "Lists the page URLs of a website from its sitemap. Useful for finding which pages a site has before fetching one.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"site_url": {
					Type:        genai.TypeString,
					Description: "The base URL of the site, e.g. 'https://example.com'.",
				},
			},
			Required: []string{"site_url"},
		},
	}
)

// Declarations lists the tools offered to the model. A tool whose
// backing service is nil is left out; get_weekday needs no service and
// is always offered.
func (a *Agent) Declarations() []*genai.FunctionDeclaration {
	var decls []*genai.FunctionDeclaration
	if a.Content != nil {
		decls = append(decls, getWebContentDecl)
	}
	if a.Searcher != nil {
		decls = append(decls, webSearchDecl)
	}
	if a.Weather != nil {
		decls = append(decls, getWeatherDecl)
	}
	decls = append(decls, getWeekdayDecl)
	if a.Sitemaps != nil {
		decls = append(decls, listSiteURLsDecl)
	}
	return decls
}
