package ccloud

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/errors"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/log"
)

const (
	testKey    = "ABCDEF123"
	testSecret = "shhh"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(BaseClient, server.URL, testKey, testSecret, "ccloud-scrape-generator/test", log.New())
	return client, server
}

func requireBasicAuth(t *testing.T, r *http.Request) {
	user, pass, ok := r.BasicAuth()
	require.True(t, ok, "request is missing basic auth")
	require.Equal(t, testKey, user)
	require.Equal(t, testSecret, pass)
}

func TestEnvironmentListFollowsPagination(t *testing.T) {
	req := require.New(t)

	var serverURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/org/v2/environments", func(w http.ResponseWriter, r *http.Request) {
		requireBasicAuth(t, r)
		if r.URL.Query().Get("page_token") == "" {
			fmt.Fprintf(w, `{
				"metadata": {"next": "%s/org/v2/environments?page_token=p2"},
				"data": [{"id": "env-1", "display_name": "dev"}, {"id": "env-2", "display_name": "staging"}]
			}`, serverURL)
			return
		}
		fmt.Fprint(w, `{"metadata": {}, "data": [{"id": "env-3", "display_name": "prod"}]}`)
	})

	client, server := newTestClient(t, mux)
	serverURL = server.URL

	environments, err := client.Environments.List(context.Background())
	req.NoError(err)
	req.Equal([]Environment{
		{ID: "env-1", DisplayName: "dev"},
		{ID: "env-2", DisplayName: "staging"},
		{ID: "env-3", DisplayName: "prod"},
	}, environments)
}

func TestClusterListFlattensSpecAndPaginates(t *testing.T) {
	req := require.New(t)

	var serverURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/cmk/v2/clusters", func(w http.ResponseWriter, r *http.Request) {
		requireBasicAuth(t, r)
		req.Equal("env-1", r.URL.Query().Get("environment"))
		if r.URL.Query().Get("page_token") == "" {
			fmt.Fprintf(w, `{
				"metadata": {"next": "%s/cmk/v2/clusters?environment=env-1&page_token=p2"},
				"data": [{
					"id": "lkc-1",
					"spec": {
						"display_name": "orders",
						"cloud": "AWS",
						"region": "us-east-1",
						"kafka_bootstrap_endpoint": "SASL_SSL://pkc-1.us-east-1.aws.confluent.cloud:9092",
						"config": {"kind": "Basic"},
						"environment": {"id": "env-1"}
					}
				}]
			}`, serverURL)
			return
		}
		fmt.Fprint(w, `{
			"metadata": {},
			"data": [{
				"id": "lkc-2",
				"spec": {
					"display_name": "payments",
					"cloud": "GCP",
					"region": "us-central1",
					"kafka_bootstrap_endpoint": "SASL_SSL://pkc-2.us-central1.gcp.confluent.cloud:9092",
					"config": {"kind": "Dedicated"}
				}
			}]
		}`)
	})

	client, server := newTestClient(t, mux)
	serverURL = server.URL

	clusters, err := client.Clusters.List(context.Background(), "env-1")
	req.NoError(err)
	req.Equal([]Cluster{
		{
			ID:                "lkc-1",
			EnvironmentID:     "env-1",
			DisplayName:       "orders",
			Cloud:             "AWS",
			Region:            "us-east-1",
			Kind:              "Basic",
			BootstrapEndpoint: "SASL_SSL://pkc-1.us-east-1.aws.confluent.cloud:9092",
		},
		{
			// environment omitted from the spec falls back to the requested one
			ID:                "lkc-2",
			EnvironmentID:     "env-1",
			DisplayName:       "payments",
			Cloud:             "GCP",
			Region:            "us-central1",
			Kind:              "Dedicated",
			BootstrapEndpoint: "SASL_SSL://pkc-2.us-central1.gcp.confluent.cloud:9092",
		},
	}, clusters)
}

func TestRejectedCredentialsReturnAuthenticationError(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		req := require.New(t)
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"errors": [{"status": "401", "detail": "invalid API key"}]}`)
		}))

		_, err := client.Environments.List(context.Background())
		req.Error(err)
		authErr, ok := err.(*errors.AuthenticationError)
		req.True(ok, "expected AuthenticationError for HTTP %d, got %T", status, err)
		req.Equal(status, authErr.StatusCode)
		req.Equal("invalid API key", authErr.Detail)
	}
}

func TestBodylessRejectionStillReturnsAuthenticationError(t *testing.T) {
	req := require.New(t)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// no body at all: the JSON failure decode gets EOF
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.Environments.List(context.Background())
	req.Error(err)
	authErr, ok := err.(*errors.AuthenticationError)
	req.True(ok, "expected AuthenticationError, got %T: %v", err, err)
	req.Equal(http.StatusUnauthorized, authErr.StatusCode)
	req.Empty(authErr.Detail)
}

func TestNonJSONServerErrorStillReturnsTransientAPIError(t *testing.T) {
	req := require.New(t)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "<html>upstream error</html>")
	}))

	_, err := client.Environments.List(context.Background())
	req.Error(err)
	apiErr, ok := err.(*errors.TransientAPIError)
	req.True(ok, "expected TransientAPIError, got %T: %v", err, err)
	req.Equal(http.StatusBadGateway, apiErr.StatusCode)
}

func TestServerErrorsReturnTransientAPIError(t *testing.T) {
	req := require.New(t)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"errors": [{"status": "503", "detail": "try again later"}]}`)
	}))

	_, err := client.Clusters.List(context.Background(), "env-1")
	req.Error(err)
	apiErr, ok := err.(*errors.TransientAPIError)
	req.True(ok, "expected TransientAPIError, got %T", err)
	req.Equal(http.StatusServiceUnavailable, apiErr.StatusCode)
	req.Equal("try again later", apiErr.Detail)
}

func TestTransportErrorsReturnTransientAPIError(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on
	client := NewClient(BaseClient, server.URL, testKey, testSecret, "ccloud-scrape-generator/test", log.New())

	_, err := client.Environments.List(context.Background())
	req.Error(err)
	_, ok := err.(*errors.TransientAPIError)
	req.True(ok, "expected TransientAPIError, got %T", err)
}

func TestAPIErrorDetailProbesKnownEnvelopes(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"errors": [{"detail": "nope"}]}`, "nope"},
		{`{"errors": [{"title": "Forbidden"}]}`, "Forbidden"},
		{`{"message": "bad gateway"}`, "bad gateway"},
		{`{"error": {"message": "wrapped"}}`, "wrapped"},
		{`not json`, ""},
		{``, ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, apiErrorDetail([]byte(tt.body)))
	}
}
