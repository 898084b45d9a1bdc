package ccloud

import (
	"context"

	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/log"
)

const environmentsPath = "/org/v2/environments"

// Environment is one org/v2 environment.
type Environment struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type pageMetadata struct {
	Next string `json:"next"`
}

type environmentPage struct {
	Metadata pageMetadata  `json:"metadata"`
	Data     []Environment `json:"data"`
}

// EnvironmentService lists org/v2 environments.
type EnvironmentService struct {
	client *Client
	logger *log.Logger
}

func NewEnvironmentService(client *Client) *EnvironmentService {
	return &EnvironmentService{client: client, logger: client.logger}
}

// List returns every environment visible to the credentials, following
// metadata.next cursors until the API stops returning them. Order is the
// API's own.
func (s *EnvironmentService) List(ctx context.Context) ([]Environment, error) {
	s.logger.Log("msg", "request", "method", "list", "resource", "environments")
	var environments []Environment
	next := environmentsPath
	for next != "" {
		page := new(environmentPage)
		if err := s.client.get(ctx, next, page, "list environments"); err != nil {
			return nil, err
		}
		environments = append(environments, page.Data...)
		next = page.Metadata.Next
	}
	return environments, nil
}
