package filter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KyussCaesar/bq"
)

// DefaultConfigPath is used when no config path is given.
const DefaultConfigPath = ".bq.yaml"

// Config holds a set of named queries that can be referenced by name
// instead of being typed out on every invocation.
type Config struct {
	Name    string            `yaml:"name"`
	Queries map[string]string `yaml:"queries"`
}

// DefaultConfig returns a starter configuration with one example query.
func DefaultConfig() *Config {
	return &Config{
		Name: "bq",
		Queries: map[string]string{
			"todo": `"TODO" | "FIXME"`,
		},
	}
}

// LoadConfig reads a YAML configuration file. A missing file at the
// default path is not an error; it yields an empty config so the CLI
// works without any setup.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{Queries: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if config.Queries == nil {
		config.Queries = map[string]string{}
	}
	return &config, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	d, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}

// Compile looks up a named query and compiles it.
func (c *Config) Compile(name string) (*bq.Matcher, error) {
	q, ok := c.Queries[name]
	if !ok {
		return nil, fmt.Errorf("no query named %q in config", name)
	}
	m, err := bq.From(q)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", name, err)
	}
	return m, nil
}
