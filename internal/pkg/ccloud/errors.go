package ccloud

import (
	"encoding/json"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/errors"
)

/*
 * Invariants:
 * - Services always return a typed error from internal/pkg/errors.
 * - 401/403 responses become AuthenticationError; everything else non-2xx
 *   becomes TransientAPIError. The API returns 403 for Cloud API keys that
 *   lack the OrganizationAdmin/MetricsViewer role, which to this tool is
 *   indistinguishable from a bad credential.
 */

func responseError(resp *http.Response, body json.RawMessage, op string) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	detail := apiErrorDetail(body)
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &errors.AuthenticationError{StatusCode: resp.StatusCode, Detail: detail}
	default:
		return &errors.TransientAPIError{Operation: op, StatusCode: resp.StatusCode, Detail: detail}
	}
}

// apiErrorDetail pulls a human-readable message out of an API error body.
// The v2 services wrap errors in a JSON:API style envelope, but the shape is
// not uniform across gateways, so probe the usual spots.
func apiErrorDetail(body []byte) string {
	for _, path := range []string{"errors.0.detail", "errors.0.title", "message", "error.message"} {
		if v := gjson.GetBytes(body, path); v.Exists() {
			return v.String()
		}
	}
	return ""
}
