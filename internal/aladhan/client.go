package aladhan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/mihrab-app/mihrab/internal/xhttp"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

const defaultTimeout = 10 * time.Second

// Client talks to the AlAdhan prayer times API. The API is the
// astronomical calculation collaborator: coordinates, a calculation
// method, and a date in; timestamps for fajr through isha out.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithBaseURL overrides the API base URL, for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: xhttp.NewHTTPClient(xhttp.WithTimeout(defaultTimeout)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Params selects the location and calculation convention for a request.
// Method and School follow the AlAdhan numbering; negative values mean
// "let the API decide".
type Params struct {
	Latitude  float64
	Longitude float64
	Method    int
	School    int
}

func (p Params) values() url.Values {
	v := url.Values{}
	v.Set("latitude", strconv.FormatFloat(p.Latitude, 'f', 6, 64))
	v.Set("longitude", strconv.FormatFloat(p.Longitude, 'f', 6, 64))
	if p.Method >= 0 {
		v.Set("method", strconv.Itoa(p.Method))
	}
	if p.School >= 0 {
		v.Set("school", strconv.Itoa(p.School))
	}
	return v
}

// Timings fetches the timetable for one date.
func (c *Client) Timings(ctx context.Context, date time.Time, params Params) (*Data, error) {
	path := "/timings/" + date.Format("02-01-2006")

	var resp Response
	if err := c.do(ctx, path, params.values(), &resp); err != nil {
		return nil, err
	}

	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("aladhan: code=%d status=%s", resp.Code, resp.Status)
	}

	return &resp.Data, nil
}

func (c *Client) do(ctx context.Context, path string, query url.Values, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("aladhan: status %d: %s", resp.StatusCode, string(body))
	}

	if err := go_json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
