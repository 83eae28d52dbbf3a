// Package config loads tool configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for the condition tooling.
type Config struct {
	Corpus  CorpusConfig  `mapstructure:"corpus"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CorpusConfig locates the clause corpus the coverage tool runs over.
type CorpusConfig struct {
	// Path is a text file with one ability text or clause per line.
	// Lines starting with '#' are skipped.
	Path string `mapstructure:"path"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// Load reads configuration from the given path. A missing file is not an
// error; defaults and MAGE_-prefixed environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("corpus.path", "corpus/clauses.txt")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("MAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
