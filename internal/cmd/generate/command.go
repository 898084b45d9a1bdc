package generate

import (
	"context"
	"fmt"
	"io/ioutil"

	"github.com/confluentinc/go-printer"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/ccloud"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/config"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/errors"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/scrape"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/version"
)

type command struct {
	*cobra.Command
	config  *config.Config
	version *version.Version
	// newClient lets tests swap the API client factory
	newClient func(baseURL string) *ccloud.Client
}

var (
	summaryFields = []string{"EnvironmentID", "EnvironmentName", "ClusterID", "Name", "CloudProvider", "Region", "ClusterType"}
	summaryLabels = []string{"Environment Id", "Environment", "Cluster Id", "Name", "Provider", "Region", "Type"}
)

// New returns the Cobra command for `generate`.
func New(cfg *config.Config, ver *version.Version) *cobra.Command {
	cmd := &command{
		Command: &cobra.Command{
			Use:   "generate",
			Short: "Generate a Prometheus scrape config for all reachable Kafka clusters.",
			Long: "Generate a Prometheus scrape config covering every Kafka cluster visible to the\n" +
				"Cloud API key in CLOUD_API_KEY/CLOUD_API_SECRET, across all environments.",
			Args: cobra.NoArgs,
		},
		config:  cfg,
		version: ver,
	}
	cmd.newClient = func(baseURL string) *ccloud.Client {
		return ccloud.NewClient(ccloud.BaseClient, baseURL, cfg.APIKey, cfg.APISecret, ver.UserAgent, cfg.Logger)
	}
	cmd.init()
	return cmd.Command
}

func (c *command) init() {
	c.RunE = c.generate
	c.Flags().String("output", "prometheus.yml", `Output path for the generated config ("-" writes to stdout).`)
	c.Flags().String("base-url", ccloud.DefaultBaseURL, "Confluent Cloud management API base URL.")
	c.Flags().String("scrape-interval", scrape.DefaultScrapeInterval, "Global scrape interval for the generated config.")
	c.Flags().String("amp-workspace-arn", "", "Amazon Managed Prometheus workspace ARN; enables the remote_write section.")
	c.Flags().String("amp-region", "", "AWS region for SigV4 signing; defaults to the region in the workspace ARN.")
	c.Flags().String("amp-endpoint", "", "Verbatim AMP remote-write URL; overrides --amp-workspace-arn.")
	c.Flags().Bool("dry-run", false, "Print the generated config to stdout instead of writing it.")
	c.Flags().SortFlags = false
}

func (c *command) generate(cmd *cobra.Command, _ []string) error {
	// credentials are checked before any network call
	if err := c.config.LoadCredentials(); err != nil {
		return errors.HandleCommon(err, cmd)
	}

	baseURL, err := cmd.Flags().GetString("base-url")
	if err != nil {
		return errors.HandleCommon(err, cmd)
	}

	client := c.newClient(baseURL)
	records, err := c.enumerate(context.Background(), client)
	if err != nil {
		return errors.HandleCommon(err, cmd)
	}
	c.printSummary(cmd, records)

	opts, err := c.buildOptions(cmd)
	if err != nil {
		return errors.HandleCommon(err, cmd)
	}
	doc, err := scrape.Build(records, opts)
	if err != nil {
		return errors.HandleCommon(err, cmd)
	}
	out, err := doc.Marshal()
	if err != nil {
		return errors.HandleCommon(err, cmd)
	}

	if err := c.write(cmd, out); err != nil {
		return errors.HandleCommon(err, cmd)
	}
	return nil
}

// enumerate walks every environment and flattens its clusters into records.
// Environment order is the API's; record order within an environment is the
// API's too. The builder re-sorts, so neither matters for the output.
func (c *command) enumerate(ctx context.Context, client *ccloud.Client) ([]scrape.ClusterRecord, error) {
	environments, err := client.Environments.List(ctx)
	if err != nil {
		return nil, err
	}

	var records []scrape.ClusterRecord
	for _, env := range environments {
		clusters, err := client.Clusters.List(ctx, env.ID)
		if err != nil {
			return nil, err
		}
		if len(clusters) == 0 {
			c.config.Logger.Warnf(errors.EmptyEnvironmentWarning, env.ID)
			continue
		}
		for _, cluster := range clusters {
			records = append(records, scrape.ClusterRecord{
				EnvironmentID:     cluster.EnvironmentID,
				EnvironmentName:   env.DisplayName,
				ClusterID:         cluster.ID,
				Name:              cluster.DisplayName,
				CloudProvider:     cluster.Cloud,
				Region:            cluster.Region,
				ClusterType:       cluster.Kind,
				BootstrapEndpoint: cluster.BootstrapEndpoint,
			})
		}
	}
	return records, nil
}

func (c *command) printSummary(cmd *cobra.Command, records []scrape.ClusterRecord) {
	environments := map[string]bool{}
	for _, record := range records {
		environments[record.EnvironmentID] = true
	}
	fmt.Fprintf(cmd.OutOrStdout(), errors.ClusterSummaryHeaderMsg, len(records), len(environments))

	if len(records) == 0 {
		c.config.Logger.Warn(errors.NoClustersFoundWarningMsg)
		return
	}
	var data [][]string
	for i := range records {
		data = append(data, printer.ToRow(&records[i], summaryFields))
	}
	printer.RenderCollectionTable(data, summaryLabels)
}

func (c *command) buildOptions(cmd *cobra.Command) (scrape.Options, error) {
	interval, err := cmd.Flags().GetString("scrape-interval")
	if err != nil {
		return scrape.Options{}, err
	}
	opts := scrape.Options{
		ScrapeInterval: interval,
		APIKey:         c.config.APIKey,
		APISecret:      c.config.APISecret,
	}

	workspaceARN, err := cmd.Flags().GetString("amp-workspace-arn")
	if err != nil {
		return scrape.Options{}, err
	}
	region, err := cmd.Flags().GetString("amp-region")
	if err != nil {
		return scrape.Options{}, err
	}
	endpoint, err := cmd.Flags().GetString("amp-endpoint")
	if err != nil {
		return scrape.Options{}, err
	}
	if workspaceARN != "" || endpoint != "" {
		opts.RemoteWrite = &scrape.AMPOptions{
			WorkspaceARN: workspaceARN,
			Region:       region,
			Endpoint:     endpoint,
		}
	}
	return opts, nil
}

func (c *command) write(cmd *cobra.Command, out []byte) error {
	path, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	if dryRun || path == "-" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}

	if err := ioutil.WriteFile(path, out, 0644); err != nil {
		return &errors.FileWriteError{Path: path, Err: err}
	}
	success := color.New(color.FgGreen).SprintfFunc()
	fmt.Fprintln(cmd.OutOrStdout(), success(errors.GeneratedConfigMsg, path))
	return nil
}
