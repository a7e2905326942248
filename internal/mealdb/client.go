// Package mealdb is an HTTP client for TheMealDB-compatible recipe APIs.
// It decodes the API's flat meal records into domain recipes, including
// structured cooking steps parsed from the free-text instructions.
package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// DefaultBaseURL is the public TheMealDB v1 endpoint with the test key.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// Compile-time interface check.
var _ domain.RecipeAPI = (*Client)(nil)

// ── Wire types ───────────────────────────────────────────────────

// meal is a raw meal record. Every field the API serves is a string or null.
type meal map[string]any

type mealsResponse struct {
	Meals []meal `json:"meals"`
}

func (m meal) str(key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// ── Client ───────────────────────────────────────────────────────

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPTimeout sets the HTTP client timeout.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// Client talks to a TheMealDB-compatible JSON API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient creates a client rooted at baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, log *logger.Logger, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search returns meals whose name matches query.
func (c *Client) Search(ctx context.Context, query string) ([]domain.RecipeCard, error) {
	var resp mealsResponse
	if err := c.get(ctx, "search.php", url.Values{"s": {query}}, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.RecipeCard, 0, len(resp.Meals))
	for _, m := range resp.Meals {
		out = append(out, toCard(m))
	}
	return out, nil
}

// Lookup returns the full recipe for id, or domain.ErrNotFound.
func (c *Client) Lookup(ctx context.Context, id string) (*domain.Recipe, error) {
	var resp mealsResponse
	if err := c.get(ctx, "lookup.php", url.Values{"i": {id}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Meals) == 0 {
		return nil, domain.ErrNotFound
	}
	return toRecipe(resp.Meals[0]), nil
}

// Random returns one random recipe.
func (c *Client) Random(ctx context.Context) (*domain.Recipe, error) {
	var resp mealsResponse
	if err := c.get(ctx, "random.php", nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Meals) == 0 {
		return nil, fmt.Errorf("mealdb: random returned no meals")
	}
	return toRecipe(resp.Meals[0]), nil
}

// Categories returns the category names known to the API.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp mealsResponse
	if err := c.get(ctx, "list.php", url.Values{"c": {"list"}}, &resp); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(resp.Meals))
	for _, m := range resp.Meals {
		if name := m.str("strCategory"); name != "" {
			out = append(out, name)
		}
	}
	return out, nil
}

// FilterByCategory returns the meals in category. The API only serves
// id, name and thumbnail here, so Category is filled from the argument.
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]domain.RecipeCard, error) {
	var resp mealsResponse
	if err := c.get(ctx, "filter.php", url.Values{"c": {category}}, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.RecipeCard, 0, len(resp.Meals))
	for _, m := range resp.Meals {
		card := toCard(m)
		if card.Category == "" {
			card.Category = category
		}
		out = append(out, card)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, into any) error {
	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("mealdb: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("mealdb: GET %s", u)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("mealdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("mealdb: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("mealdb: API %s: %s", resp.Status, truncate(string(body), 200))
	}

	if err := json.Unmarshal(body, into); err != nil {
		return fmt.Errorf("mealdb: unmarshal %s: %w", endpoint, err)
	}
	return nil
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
