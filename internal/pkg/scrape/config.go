package scrape

import (
	"github.com/go-yaml/yaml"

	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/errors"
)

// Config is the subset of a Prometheus configuration document this tool
// emits. Field order here is the field order in the generated YAML.
type Config struct {
	Global        GlobalConfig        `yaml:"global"`
	ScrapeConfigs []ScrapeConfig      `yaml:"scrape_configs"`
	RemoteWrite   []RemoteWriteConfig `yaml:"remote_write,omitempty"`
}

type GlobalConfig struct {
	ScrapeInterval string `yaml:"scrape_interval"`
}

type ScrapeConfig struct {
	JobName       string              `yaml:"job_name"`
	MetricsPath   string              `yaml:"metrics_path"`
	Scheme        string              `yaml:"scheme"`
	Params        map[string][]string `yaml:"params,omitempty"`
	BasicAuth     *BasicAuth          `yaml:"basic_auth,omitempty"`
	StaticConfigs []StaticConfig      `yaml:"static_configs"`
}

type BasicAuth struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type StaticConfig struct {
	Targets []string          `yaml:"targets"`
	Labels  map[string]string `yaml:"labels,omitempty"`
}

type RemoteWriteConfig struct {
	URL   string       `yaml:"url"`
	SigV4 *SigV4Config `yaml:"sigv4,omitempty"`
}

type SigV4Config struct {
	Region string `yaml:"region"`
}

const header = "# Generated by ccloud-scrape-generator. Do not edit by hand;\n# rerun the generator when clusters change.\n"

// Marshal renders the document to YAML. Identical documents marshal to
// identical bytes: struct fields emit in declaration order and the yaml
// package sorts map keys.
func (c *Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, &errors.SerializationError{Err: errors.Wrap(err, errors.MarshalErrorMsg)}
	}
	return append([]byte(header), out...), nil
}
