package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// parseFile reads a JSON, YAML or TOML config file; the format is picked by
// the file extension. Keys follow the `mapstructure` tags of
// [StructuredConfig], durations are written as strings like "30s".
func parseFile(path string) (*StructuredConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := new(StructuredConfig)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return cfg, nil
}
