package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"pantry/internal/metrics"
)

// DefaultBaseURL is the public Spoonacular endpoint.
const DefaultBaseURL = "https://api.spoonacular.com"

// MaxResults caps how many recipes one search returns.
const MaxResults = 10

// Query describes one recipe search. Every list is sent comma-joined.
type Query struct {
	Ingredients  []string
	Cuisines     []string
	Diets        []string
	Intolerances []string
}

// Searcher finds recipes for a Query and returns the upstream result list
// exactly as received.
type Searcher interface {
	Search(ctx context.Context, q Query) (json.RawMessage, error)
}

// Client talks to the Spoonacular complexSearch endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a recipe API client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// Params builds the complexSearch query string for q. The API key is sent in
// the x-api-key header and must never appear in the URL.
func (c *Client) Params(q Query) url.Values {
	params := url.Values{}
	params.Set("includeIngredients", strings.Join(q.Ingredients, ","))
	params.Set("cuisine", strings.Join(q.Cuisines, ","))
	params.Set("diet", strings.Join(q.Diets, ","))
	params.Set("intolerances", strings.Join(q.Intolerances, ","))
	params.Set("fillIngredients", "true")
	params.Set("addRecipeInformation", "true")
	params.Set("addRecipeInstructions", "true")
	params.Set("addRecipeNutrition", "true")
	params.Set("instructionsRequired", "true")
	params.Set("number", strconv.Itoa(MaxResults))
	params.Set("ignorePantry", "true")
	return params
}

// Search calls complexSearch and returns the raw "results" array.
func (c *Client) Search(ctx context.Context, q Query) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/recipes/complexSearch?%s", c.baseURL, c.Params(q).Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		metrics.RecordRecipeCall("error")
		return nil, fmt.Errorf("build recipe request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordRecipeCall("error")
		return nil, fmt.Errorf("call recipe api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordRecipeCall("error")
		return nil, fmt.Errorf("read recipe response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.RecordRecipeCall("status_" + strconv.Itoa(resp.StatusCode))
		return nil, fmt.Errorf("recipe api returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	if !gjson.ValidBytes(body) {
		metrics.RecordRecipeCall("malformed")
		return nil, fmt.Errorf("recipe api returned invalid json")
	}
	results := gjson.GetBytes(body, "results")
	if !results.IsArray() {
		metrics.RecordRecipeCall("malformed")
		return nil, fmt.Errorf("recipe api response has no results array")
	}

	metrics.RecordRecipeCall("ok")
	return json.RawMessage(results.Raw), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
