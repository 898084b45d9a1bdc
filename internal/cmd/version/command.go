package version

import (
	"github.com/spf13/cobra"

	cliVersion "github.com/confluentinc/ccloud-scrape-generator/internal/pkg/version"
)

// New returns the Cobra command for `version`.
func New(ver *cliVersion.Version) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ccloud-scrape-generator version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			ver.Print(cmd.OutOrStdout())
		},
	}
}
