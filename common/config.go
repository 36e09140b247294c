package common

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const configFilePath = "config.json"

// Config represents the application's configuration structure.
type Config struct {
	DataPath       string `json:"data-path" mapstructure:"data-path"`
	DBPath         string `json:"db-path" mapstructure:"db-path"`
	CustomerCount  int    `json:"customer-count" mapstructure:"customer-count"`
	ReviewAttempts int    `json:"review-attempts" mapstructure:"review-attempts"`
	Seed           int64  `json:"seed" mapstructure:"seed"`
	LogLevel       string `json:"log-level" mapstructure:"log-level"`
}

var requiredFields = []string{
	"data-path",
	"db-path",
}

// field: default value
var optionalFields = map[string]interface{}{
	"customer-count":  24,
	"review-attempts": 28,
	"seed":            42,
	"log-level":       "INFO",
}

// InitConfig reads configuration from a JSON file and environment variables.
// Environment variables take precedence over the config file.
func InitConfig() (*Config, error) {
	v := viper.New()

	// Set config file type and name
	v.SetConfigFile(configFilePath)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, field := range requiredFields {
		v.BindEnv(field)
	}

	for optField, defaultValue := range optionalFields {
		v.BindEnv(optField)
		v.SetDefault(optField, defaultValue)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	for _, field := range requiredFields {
		if !v.IsSet(field) {
			return nil, fmt.Errorf("missing required config field: %s", field)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &config, nil
}
