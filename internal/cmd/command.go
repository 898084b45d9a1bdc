package cmd

import (
	"github.com/spf13/cobra"

	"github.com/confluentinc/ccloud-scrape-generator/internal/cmd/generate"
	versioncmd "github.com/confluentinc/ccloud-scrape-generator/internal/cmd/version"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/config"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/errors"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/log"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/version"
)

const cliName = "ccloud-scrape-generator"

// NewScrapeGeneratorCommand builds the root command tree.
func NewScrapeGeneratorCommand(cfg *config.Config, ver *version.Version, logger *log.Logger) *cobra.Command {
	cli := &cobra.Command{
		Use:   cliName,
		Short: "Generate Prometheus scrape configs for Confluent Cloud Kafka clusters",
	}
	cli.PersistentFlags().CountP("verbose", "v", "increase output verbosity")
	cli.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := log.SetLoggingVerbosity(cmd, logger); err != nil {
			return errors.HandleCommon(err, cmd)
		}
		return nil
	}

	cli.Version = ver.Version
	cli.AddCommand(versioncmd.New(ver))
	cli.AddCommand(generate.New(cfg, ver))

	return cli
}
