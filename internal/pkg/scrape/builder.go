package scrape

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/errors"
)

const (
	DefaultScrapeInterval = "1m"

	// Confluent Cloud's metrics export endpoint; every cluster is scraped
	// through it, selected by the resource.kafka.id query parameter.
	telemetryTarget      = "api.telemetry.confluent.cloud"
	telemetryMetricsPath = "/v2/metrics/cloud/export"

	jobNamePrefix = "confluent-cloud"
)

// ClusterRecord is one discovered Kafka cluster, flattened to exactly what
// the scrape config needs. Records are immutable once fetched.
type ClusterRecord struct {
	EnvironmentID     string
	EnvironmentName   string
	ClusterID         string
	Name              string
	CloudProvider     string
	Region            string
	ClusterType       string
	BootstrapEndpoint string
}

// Options is the static configuration for a build. The API key/secret
// double as the telemetry endpoint's scrape basic auth.
type Options struct {
	ScrapeInterval string
	APIKey         string
	APISecret      string
	RemoteWrite    *AMPOptions
}

// Build maps cluster records to a Prometheus configuration document. It is
// pure and deterministic: targets are sorted by (environment_id, cluster_id)
// regardless of input order, so regenerated files diff cleanly.
func Build(records []ClusterRecord, opts Options) (*Config, error) {
	interval := opts.ScrapeInterval
	if interval == "" {
		interval = DefaultScrapeInterval
	}

	sorted := make([]ClusterRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].EnvironmentID != sorted[j].EnvironmentID {
			return sorted[i].EnvironmentID < sorted[j].EnvironmentID
		}
		return sorted[i].ClusterID < sorted[j].ClusterID
	})

	// Prometheus deduplicates targets by label set, so two records that
	// collapse to the same labels would silently lose a cluster.
	var dups *multierror.Error
	seen := make(map[string]string, len(sorted))
	configs := make([]ScrapeConfig, 0, len(sorted))
	for _, record := range sorted {
		labels := record.labels()
		key := labelKey(labels)
		if prev, ok := seen[key]; ok {
			dups = multierror.Append(dups, errors.Errorf(errors.DuplicateTargetErrorMsg, prev, record.ClusterID))
			continue
		}
		seen[key] = record.ClusterID
		configs = append(configs, scrapeConfigFor(record, labels, opts))
	}
	if err := dups.ErrorOrNil(); err != nil {
		return nil, &errors.SerializationError{Err: err, Suggestions: errors.DuplicateTargetSuggestion}
	}

	cfg := &Config{
		Global:        GlobalConfig{ScrapeInterval: interval},
		ScrapeConfigs: configs,
	}
	if opts.RemoteWrite != nil {
		rw, err := opts.RemoteWrite.remoteWriteConfig()
		if err != nil {
			return nil, err
		}
		cfg.RemoteWrite = []RemoteWriteConfig{rw}
	}
	return cfg, nil
}

func scrapeConfigFor(record ClusterRecord, labels map[string]string, opts Options) ScrapeConfig {
	sc := ScrapeConfig{
		JobName:     fmt.Sprintf("%s-%s", jobNamePrefix, record.ClusterID),
		MetricsPath: telemetryMetricsPath,
		Scheme:      "https",
		Params: map[string][]string{
			"resource.kafka.id": {record.ClusterID},
		},
		StaticConfigs: []StaticConfig{
			{Targets: []string{telemetryTarget}, Labels: labels},
		},
	}
	if opts.APIKey != "" || opts.APISecret != "" {
		sc.BasicAuth = &BasicAuth{Username: opts.APIKey, Password: opts.APISecret}
	}
	return sc
}

func (r ClusterRecord) labels() map[string]string {
	return map[string]string{
		"environment_id":     r.EnvironmentID,
		"environment":        r.EnvironmentName,
		"kafka_cluster_id":   r.ClusterID,
		"kafka_cluster_name": r.Name,
		"cloud_provider":     r.CloudProvider,
		"region":             r.Region,
		"cluster_type":       r.ClusterType,
	}
}

func labelKey(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "\x00" + labels[k]
	}
	return strings.Join(pairs, "\x00")
}
