package candidates

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/FuryACE007/team-ui/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// ErrRequestFailed covers network failures, non-2xx statuses and undecodable bodies alike.
var ErrRequestFailed = errors.New("candidates request failed")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	httpClient  HTTPClient
	baseURL     string
	page        int
	limit       int
	rateLimiter *rate.Limiter
	breaker     *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		page:       DefaultPage,
		limit:      DefaultLimit,
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

// SetTimeout bounds every request; zero leaves requests unbounded.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient = &http.Client{Timeout: timeout}
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	if maxRequestsPerSecond <= 0 {
		c.rateLimiter = nil
		return
	}
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) SetPaging(page, limit int) {
	c.page = page
	c.limit = limit
}

func (c *Client) SetCircuitBreaker(settings gobreaker.Settings) {
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](settings)
}

func (c *Client) GetCandidates(ctx context.Context, query models.QueryParameters) ([]models.Candidate, error) {

	params := SearchParameters{QueryParameters: query, Page: c.page, Limit: c.limit}

	body, err := c.sendRequest(ctx, http.MethodGet, c.baseURL+"?"+params.ToRawQuery(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	var candidates []models.Candidate
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&candidates); err != nil {
		return nil, fmt.Errorf("%w: error decoding JSON response: %v", ErrRequestFailed, err)
	}

	return candidates, nil
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, body io.Reader) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if c.breaker == nil {
		return c.doRequest(ctx, method, url, body)
	}

	return c.breaker.Execute(func() ([]byte, error) {
		return c.doRequest(ctx, method, url, body)
	})
}

func (c *Client) doRequest(ctx context.Context, method string, url string, body io.Reader) ([]byte, error) {

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed with status %v, body: %v", resp.StatusCode, string(body))
	}

	return body, nil
}
