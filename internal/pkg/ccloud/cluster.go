package ccloud

import (
	"context"
	"net/url"

	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/log"
)

const clustersPath = "/cmk/v2/clusters"

// Cluster is the flattened view of one cmk/v2 Kafka cluster.
type Cluster struct {
	ID                string
	EnvironmentID     string
	DisplayName       string
	Cloud             string
	Region            string
	Kind              string
	BootstrapEndpoint string
}

type clusterResource struct {
	ID   string      `json:"id"`
	Spec clusterSpec `json:"spec"`
}

type clusterSpec struct {
	DisplayName            string `json:"display_name"`
	Cloud                  string `json:"cloud"`
	Region                 string `json:"region"`
	KafkaBootstrapEndpoint string `json:"kafka_bootstrap_endpoint"`
	Config                 struct {
		Kind string `json:"kind"`
	} `json:"config"`
	Environment struct {
		ID string `json:"id"`
	} `json:"environment"`
}

type clusterPage struct {
	Metadata pageMetadata      `json:"metadata"`
	Data     []clusterResource `json:"data"`
}

// ClusterService lists cmk/v2 Kafka clusters.
type ClusterService struct {
	client *Client
	logger *log.Logger
}

func NewClusterService(client *Client) *ClusterService {
	return &ClusterService{client: client, logger: client.logger}
}

// List returns the Kafka clusters in the given environment, following
// metadata.next cursors until the API stops returning them.
func (s *ClusterService) List(ctx context.Context, environmentID string) ([]Cluster, error) {
	s.logger.Log("msg", "request", "method", "list", "resource", "clusters", "environment", environmentID)
	var clusters []Cluster
	next := clustersPath + "?environment=" + url.QueryEscape(environmentID)
	for next != "" {
		page := new(clusterPage)
		if err := s.client.get(ctx, next, page, "list kafka clusters"); err != nil {
			return nil, err
		}
		for _, resource := range page.Data {
			clusters = append(clusters, flatten(resource, environmentID))
		}
		next = page.Metadata.Next
	}
	return clusters, nil
}

func flatten(resource clusterResource, environmentID string) Cluster {
	envID := resource.Spec.Environment.ID
	if envID == "" {
		envID = environmentID
	}
	return Cluster{
		ID:                resource.ID,
		EnvironmentID:     envID,
		DisplayName:       resource.Spec.DisplayName,
		Cloud:             resource.Spec.Cloud,
		Region:            resource.Spec.Region,
		Kind:              resource.Spec.Config.Kind,
		BootstrapEndpoint: resource.Spec.KafkaBootstrapEndpoint,
	}
}
