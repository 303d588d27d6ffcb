// Package livebench fetches model-judgment data from the LiveBench
// dataset on Hugging Face and renders it as a static leaderboard page.
package livebench

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/trendwatch"
	"github.com/go-resty/resty/v2"
)

const (
	defaultRowsURL     = "https://datasets-server.huggingface.co/rows"
	defaultMetadataURL = "https://huggingface.co/api/datasets/livebench/model_judgment"

	dataset = "livebench/model_judgment"

	rowsTimeout     = 30 * time.Second
	metadataTimeout = 10 * time.Second

	// pageLength is the largest page the dataset server allows per request.
	pageLength = 100

	// maxRequests caps pagination at 1000 rows per run.
	maxRequests = 10
)

// EvaluationSource fetches benchmark judgment rows.
type EvaluationSource interface {
	// FetchEvaluations returns judgment rows and the dataset's raw
	// last-modified timestamp, which is empty when unavailable.
	FetchEvaluations(ctx context.Context) (evals []trendwatch.Evaluation, lastModified string, err error)
}

// Compile-time interface verification.
var _ EvaluationSource = (*Client)(nil)

// Client fetches judgment rows from the Hugging Face dataset server.
type Client struct {
	http        *resty.Client
	rowsURL     string
	metadataURL string
}

// Option configures a Client.
type Option func(*Client)

// WithRowsURL overrides the dataset rows endpoint. Used in tests.
func WithRowsURL(rowsURL string) Option {
	return func(c *Client) {
		c.rowsURL = rowsURL
	}
}

// WithMetadataURL overrides the dataset metadata endpoint. Used in tests.
func WithMetadataURL(metadataURL string) Option {
	return func(c *Client) {
		c.metadataURL = metadataURL
	}
}

// WithTimeout sets the HTTP timeout for row requests.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// NewClient creates a new Client against the public Hugging Face API.
func NewClient(opts ...Option) *Client {
	http := resty.New()
	http.SetTimeout(rowsTimeout)

	c := &Client{
		http:        http,
		rowsURL:     defaultRowsURL,
		metadataURL: defaultMetadataURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type rowsResponse struct {
	Rows []struct {
		Row struct {
			Model    string  `json:"model"`
			Category string  `json:"category"`
			Score    float64 `json:"score"`
		} `json:"row"`
	} `json:"rows"`
}

// FetchEvaluations downloads judgment rows page by page. Pagination stops
// at the end of the dataset or on the first failed page; rows fetched
// before a mid-run failure are kept.
func (c *Client) FetchEvaluations(ctx context.Context) ([]trendwatch.Evaluation, string, error) {
	lastModified := c.fetchLastModified(ctx)

	var evals []trendwatch.Evaluation
	for i := 0; i < maxRequests; i++ {
		rows, err := c.fetchRows(ctx, i*pageLength)
		if err != nil {
			if len(evals) > 0 {
				break
			}
			return nil, "", err
		}
		if len(rows) == 0 {
			break
		}
		evals = append(evals, rows...)
		if len(rows) < pageLength {
			break
		}
	}
	if len(evals) == 0 {
		return nil, "", trendwatch.Errorf(trendwatch.EUNAVAILABLE, "benchmark dataset returned no rows")
	}
	return evals, lastModified, nil
}

func (c *Client) fetchRows(ctx context.Context, offset int) ([]trendwatch.Evaluation, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"dataset": dataset,
			"config":  "default",
			"split":   "leaderboard",
			"offset":  strconv.Itoa(offset),
			"length":  strconv.Itoa(pageLength),
		}).
		Get(c.rowsURL)
	if err != nil {
		return nil, fmt.Errorf("livebench: fetch rows at offset %d: %w", offset, err)
	}
	// 422 means the offset ran past the end of the dataset.
	if res.StatusCode() == http.StatusUnprocessableEntity {
		return nil, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("livebench: HTTP %d: %s", res.StatusCode(), res.String())
	}

	var body rowsResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return nil, fmt.Errorf("livebench: decode rows response: %w", err)
	}

	evals := make([]trendwatch.Evaluation, 0, len(body.Rows))
	for _, r := range body.Rows {
		evals = append(evals, trendwatch.Evaluation{
			Model:    r.Row.Model,
			Category: r.Row.Category,
			Score:    r.Row.Score,
		})
	}
	return evals, nil
}

// fetchLastModified is best effort. The rendered page shows a freshness
// warning when the timestamp is unavailable.
func (c *Client) fetchLastModified(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, metadataTimeout)
	defer cancel()

	res, err := c.http.R().SetContext(ctx).Get(c.metadataURL)
	if err != nil || res.IsError() {
		return ""
	}

	var body struct {
		LastModified string `json:"lastModified"`
	}
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return ""
	}
	return body.LastModified
}
