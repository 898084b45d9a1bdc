package ccloud

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dghubble/sling"

	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/errors"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/log"
)

const (
	timeout = time.Second * 10

	// DefaultBaseURL is the Confluent Cloud management API.
	DefaultBaseURL = "https://api.confluent.cloud"
)

// BaseClient represents a raw golang http client with the generator's defaults.
var BaseClient = &http.Client{Timeout: timeout}

// Client represents the Confluent Cloud management API client.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	logger       *log.Logger
	sling        *sling.Sling
	Environments *EnvironmentService
	Clusters     *ClusterService
}

// NewClient creates a management API client authenticated with a Cloud API
// key and secret.
func NewClient(httpClient *http.Client, baseURL, apiKey, apiSecret, userAgent string, logger *log.Logger) *Client {
	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
		sling: sling.New().
			Client(httpClient).
			Base(baseURL).
			Set("Accept", "application/json").
			Set("User-Agent", userAgent).
			SetBasicAuth(apiKey, apiSecret),
	}
	client.Environments = NewEnvironmentService(client)
	client.Clusters = NewClusterService(client)
	return client
}

// get fetches a single page into success. The path may be relative to the
// base URL or the absolute metadata.next URL from a previous page.
func (c *Client) get(ctx context.Context, path string, success interface{}, op string) error {
	req, err := c.sling.New().Get(path).Request()
	if err != nil {
		return &errors.TransientAPIError{Operation: op, Err: err}
	}
	failure := new(json.RawMessage)
	resp, err := c.sling.New().Do(req.WithContext(ctx), success, failure)
	// Classify by status before looking at err: a bodyless 401 makes the
	// failure decode fail with EOF, which is still a credentials problem,
	// not a transport one.
	if resp != nil {
		if apiErr := responseError(resp, *failure, op); apiErr != nil {
			return apiErr
		}
	}
	if err != nil {
		return &errors.TransientAPIError{Operation: op, Err: err}
	}
	return nil
}
