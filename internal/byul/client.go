package byul

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/byul-ai/byul-mcp/internal/logging"
)

const (
	DefaultBaseURL = "https://api.byul.ai/api/v2"
	APIKeyHeader   = "X-API-Key"
	APIKeyEnv      = "BYUL_API_KEY"
	NewsPath       = "/news"
)

// Options configures a Client. It is read once by NewClient.
type Options struct {
	BaseURL string
	APIKey  string
}

// Client issues requests against the Byul REST API. It keeps no state between
// calls and is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *resty.Client
	log     logging.Logger
}

func NewClient(opts Options, log logging.Logger) *Client {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	log = log.WithValues("baseURL", baseURL)
	httpClient := resty.New()
	httpClient.SetLogger(restyLogger{log: log.WithName("resty")})

	return &Client{
		baseURL: baseURL,
		apiKey:  opts.APIKey,
		http:    httpClient,
		log:     log,
	}
}

// BaseURL returns the resolved upstream base address.
func (c *Client) BaseURL() string { return c.baseURL }

// Get performs a single GET against path with the non-empty params as query
// string and returns the decoded body. Non-2xx responses yield *HTTPError.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, &ConfigError{Key: APIKeyEnv}
	}

	query := make(map[string]string, len(params))
	for k, v := range params {
		if v != "" {
			query[k] = v
		}
	}

	endpoint := JoinURL(c.baseURL, path)
	c.log.Debug("calling upstream", "url", endpoint, "params", query)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(APIKeyHeader, c.apiKey).
		SetQueryParams(query).
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", endpoint, err)
	}

	body := DecodeBody(resp.Body())
	if !resp.IsSuccess() {
		httpErr := &HTTPError{
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(body, resp.StatusCode()),
			Body:       body,
		}
		c.log.Debug("upstream returned error", "url", endpoint, "status", httpErr.StatusCode, "message", httpErr.Message)
		return nil, httpErr
	}
	return body, nil
}

// FetchNews calls GET /news with the given filter.
func (c *Client) FetchNews(ctx context.Context, filter NewsFilter) (*NewsResponse, error) {
	raw, err := c.Get(ctx, NewsPath, filter.Params())
	if err != nil {
		return nil, err
	}
	news := DecodeNews(raw)
	c.log.Debug("fetched news", "items", len(news.Items))
	return &news, nil
}

// restyLogger routes resty's internal messages into the module logger.
type restyLogger struct {
	log logging.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error(nil, fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Info(fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug(fmt.Sprintf(format, v...))
}
