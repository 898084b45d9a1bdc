package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	suggestionsMessageHeader = "\nSuggestions:\n"
	suggestionsLineFormat    = "    %s\n"
)

// HandleCommon is called from every RunE so that command failures are
// reported once, without a usage dump.
func HandleCommon(err error, cmd *cobra.Command) error {
	if err == nil {
		return nil
	}
	cmd.SilenceUsage = true
	return catchTypedErrors(err)
}

func catchTypedErrors(err error) error {
	if typedErr, ok := err.(CLITypedError); ok {
		return typedErr.UserFacingError()
	}
	return err
}

func DisplaySuggestionsMessage(err error, writer io.Writer) {
	if err == nil {
		return
	}
	cliErr, ok := err.(ErrorWithSuggestions)
	if ok && cliErr.GetSuggestionsMsg() != "" {
		_, _ = fmt.Fprint(writer, ComposeSuggestionsMessage(cliErr.GetSuggestionsMsg()))
	}
}

func ComposeSuggestionsMessage(msg string) string {
	lines := strings.Split(msg, "\n")
	suggestionsMsg := suggestionsMessageHeader
	for _, line := range lines {
		suggestionsMsg += fmt.Sprintf(suggestionsLineFormat, line)
	}
	return suggestionsMsg
}
