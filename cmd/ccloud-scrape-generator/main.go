package main

import (
	"os"

	"github.com/spf13/viper"

	"github.com/confluentinc/ccloud-scrape-generator/internal/cmd"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/config"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/errors"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/log"
	cliVersion "github.com/confluentinc/ccloud-scrape-generator/internal/pkg/version"
)

var (
	// Injected from linker flags like `go build -ldflags "-X main.version=$VERSION" -X ...`
	version = "v0.0.0"
	commit  = ""
	date    = ""
	host    = ""
)

func main() {
	viper.AutomaticEnv()

	logger := log.New()
	cfg := config.New(logger)
	ver := cliVersion.NewVersion(version, commit, date, host)

	cli := cmd.NewScrapeGeneratorCommand(cfg, ver, logger)
	if err := cli.Execute(); err != nil {
		errors.DisplaySuggestionsMessage(err, os.Stderr)
		os.Exit(1)
	}
}
