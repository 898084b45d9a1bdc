package scrape

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws/arn"

	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/errors"
)

// AMPOptions describes the optional Amazon Managed Prometheus remote-write
// target. Either a workspace ARN (from which the endpoint and SigV4 region
// are derived) or a verbatim endpoint must be set.
type AMPOptions struct {
	WorkspaceARN string
	Region       string // overrides the region parsed from the ARN
	Endpoint     string // verbatim remote-write URL, skips ARN derivation
}

func (o *AMPOptions) remoteWriteConfig() (RemoteWriteConfig, error) {
	endpoint := o.Endpoint
	region := o.Region

	if endpoint == "" {
		parsed, err := arn.Parse(o.WorkspaceARN)
		if err != nil {
			return RemoteWriteConfig{}, errors.NewWrapErrorWithSuggestions(
				err, fmt.Sprintf(errors.InvalidWorkspaceARNMsg, o.WorkspaceARN), errors.AMPRegionSuggestions)
		}
		if region == "" {
			region = parsed.Region
		}
		workspaceID := strings.TrimPrefix(parsed.Resource, "workspace/")
		if region == "" || workspaceID == "" {
			return RemoteWriteConfig{}, errors.NewErrorWithSuggestions(
				errors.AMPRegionErrorMsg, errors.AMPRegionSuggestions)
		}
		endpoint = fmt.Sprintf("https://aps-workspaces.%s.amazonaws.com/workspaces/%s/api/v1/remote_write", region, workspaceID)
	}

	rw := RemoteWriteConfig{URL: endpoint}
	if region != "" {
		rw.SigV4 = &SigV4Config{Region: region}
	}
	return rw, nil
}
