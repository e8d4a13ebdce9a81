package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel string         `json:"logLevel" mapstructure:"logLevel"`
	Server   ServerConfig   `json:"server" mapstructure:"server"`
	DB       DBConfig       `json:"db" mapstructure:"db"`
	Roster   RosterSettings `json:"roster" mapstructure:"roster"`
}

type ServerConfig struct {
	Addr string `json:"addr" mapstructure:"addr"`
}

// DBConfig holds storage settings. An empty CatalogPath runs on the
// built-in equipment catalog; a PostgresDSN takes precedence over
// ResultsPath for stored runs.
type DBConfig struct {
	CatalogPath string `json:"catalogPath" mapstructure:"catalogPath"`
	ResultsPath string `json:"resultsPath" mapstructure:"resultsPath"`
	PostgresDSN string `json:"postgresDSN" mapstructure:"postgresDSN"`
}

type RosterSettings struct {
	Workers int `json:"workers" mapstructure:"workers"`
	Budget  int `json:"budget" mapstructure:"budget"`
}

// Load sets defaults, reads the optional config file (JSON or YAML by
// extension) and applies SLIC_* environment overrides.
func Load(file string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("db.catalogPath", "")
	viper.SetDefault("db.resultsPath", "results.db")
	viper.SetDefault("db.postgresDSN", "")
	viper.SetDefault("roster.workers", 0)
	viper.SetDefault("roster.budget", 7000)

	viper.SetEnvPrefix("SLIC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	// Names the server has always read.
	if err := viper.BindEnv("db.catalogPath", "SLIC_DB_PATH"); err != nil {
		return fmt.Errorf("bind env: %w", err)
	}
	if err := viper.BindEnv("db.resultsPath", "SLIC_RESULTS_DB_PATH"); err != nil {
		return fmt.Errorf("bind env: %w", err)
	}

	if file == "" {
		return nil
	}
	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Get returns the current configuration.
func Get() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
