package version

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
)

type Version struct {
	Version   string
	Commit    string
	BuildDate string
	BuildHost string
	UserAgent string
}

func NewVersion(version, commit, buildDate, buildHost string) *Version {
	return &Version{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		BuildHost: buildHost,
		UserAgent: fmt.Sprintf("ccloud-scrape-generator/%s (%s/%s)", version, runtime.GOOS, runtime.GOARCH),
	}
}

func (v *Version) IsReleased() bool {
	return v.Version != "v0.0.0" && !strings.Contains(v.Version, "dirty") && !strings.Contains(v.Version, "-g")
}

// Print writes the version to the given writer in a standardized way
func (v *Version) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, `ccloud-scrape-generator - Prometheus scrape config generator for Confluent Cloud

Version:     %s
Git Ref:     %s
Build Date:  %s
Build Host:  %s
Go Version:  %s (%s/%s)
Development: %s
`, v.Version,
		v.Commit,
		v.BuildDate,
		v.BuildHost,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
		strconv.FormatBool(!v.IsReleased()))
}
