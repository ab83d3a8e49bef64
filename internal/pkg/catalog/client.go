package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/pkg/config"
	"github.com/endeavored/classwatch/internal/pkg/metrics"
	"github.com/endeavored/classwatch/internal/pkg/models"
	"github.com/endeavored/classwatch/internal/pkg/requests"
)

// Client searches the class catalog. One blocking GET per call, no retries.
type Client struct {
	cli     *fasthttp.Client
	baseURL string
	token   string
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewClient(cfg config.CatalogConfig, m *metrics.Metrics, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultCatalogURL
	}
	return &Client{
		cli:     &fasthttp.Client{Name: "classwatch"},
		baseURL: baseURL,
		token:   cfg.Token,
		timeout: cfg.Timeout,
		metrics: m,
		logger:  logger,
	}
}

// SearchClasses returns the CLAS record of every entry in the response's
// classes array. A response without classes is an empty result.
func (c *Client) SearchClasses(ctx context.Context, params url.Values) ([]models.RawClassRecord, error) {
	searchURL := BuildURL(c.baseURL, params)
	start := time.Now()

	statusCode, body, err := requests.SimpleGetCli(ctx, c.cli, searchURL, requests.Options{
		Headers: map[string]string{"Authorization": "Bearer " + c.token},
		Timeout: c.timeout,
	})
	if err != nil {
		c.metrics.ObserveCatalogRequest(metrics.OutcomeError, time.Since(start))
		c.logger.Warn("catalog request failed", zap.String("url", searchURL), zap.Error(err))
		return nil, err
	}
	// Alert checks and detail lookups both treat a non-200 as a failure.
	if statusCode != fasthttp.StatusOK {
		c.metrics.ObserveCatalogRequest(metrics.OutcomeStatus, time.Since(start))
		c.logger.Warn("catalog returned bad status", zap.String("url", searchURL), zap.Int("status", statusCode))
		return nil, fmt.Errorf("%d %s for url: %s", statusCode, fasthttp.StatusMessage(statusCode), searchURL)
	}

	var payload models.SearchResponse
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		c.metrics.ObserveCatalogRequest(metrics.OutcomeDecode, time.Since(start))
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	c.metrics.ObserveCatalogRequest(metrics.OutcomeOK, time.Since(start))

	records := make([]models.RawClassRecord, 0, len(payload.Classes))
	for _, item := range payload.Classes {
		records = append(records, item.CLAS)
	}
	c.logger.Debug("catalog search", zap.String("subject", params.Get("subject")),
		zap.String("catalogNbr", params.Get("catalogNbr")), zap.Int("classes", len(records)))
	return records, nil
}
