package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the recommender.
type Config struct {
	Dataset     DatasetConfig     `yaml:"dataset"`
	Recommend   RecommendConfig   `yaml:"recommend"`
	Aggregation AggregationConfig `yaml:"aggregation"`
	Output      OutputConfig      `yaml:"output"`
	History     HistoryConfig     `yaml:"history"`
	Logging     LoggingConfig     `yaml:"logging"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// DatasetConfig locates the review table.
type DatasetConfig struct {
	Path      string `yaml:"path" validate:"required"` // file path or glob, e.g. "data/*.csv"
	Delimiter string `yaml:"delimiter" validate:"len=1"`
	Progress  bool   `yaml:"progress"`
}

type RecommendConfig struct {
	Stopwords string `yaml:"stopwords" validate:"oneof=english none"`
}

// AggregationConfig controls how reviews of one movie are folded together.
type AggregationConfig struct {
	FirstPolicy string `yaml:"first_policy" validate:"oneof=first_row first_non_null"`
}

type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=table plain json"`
	Colors bool   `yaml:"colors"`
}

// HistoryConfig holds the persistent recommendation log settings.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path" validate:"required_if=Enabled true"`
	Limit   int    `yaml:"limit" validate:"gte=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // empty disables the textfile export
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:      "Movies_Reviews_modified_version1.csv",
			Delimiter: ",",
			Progress:  false,
		},
		Recommend: RecommendConfig{
			Stopwords: "english",
		},
		Aggregation: AggregationConfig{
			FirstPolicy: "first_row",
		},
		Output: OutputConfig{
			Format: "plain",
			Colors: true,
		},
		History: HistoryConfig{
			Enabled: false,
			Path:    HistoryDBPath("."),
			Limit:   20,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for movierec.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "movierec.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".movierec", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every field constraint and reports all failures at once.
// The log level is lower-cased first, matching logging.ParseLevel.
func (c *Config) Validate() error {
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ns := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)", ns, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", ns, fe.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// DelimiterRune returns the dataset delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.Dataset.Delimiter {
		return r
	}
	return ','
}

// HistoryDBPath returns the path to the history database.
func HistoryDBPath(dir string) string {
	return filepath.Join(dir, ".movierec", "history.db")
}
