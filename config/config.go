package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global holds the runtime configuration. Values come from (highest wins)
// environment variables with the IBGE_ prefix, an optional YAML config file,
// then defaults.
type Global struct {
	Port        string `mapstructure:"port" yaml:"port"`
	DatasetPath string `mapstructure:"dataset_path" yaml:"dataset_path"`
	// DatasetSource selects where the table comes from: "csv" (default) or
	// "postgres" for warehouse deployments.
	DatasetSource  string   `mapstructure:"dataset_source" yaml:"dataset_source"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`

	DBHost     string `mapstructure:"db_host" yaml:"db_host"`
	DBPort     string `mapstructure:"db_port" yaml:"db_port"`
	DBUser     string `mapstructure:"db_user" yaml:"db_user"`
	DBPassword string `mapstructure:"db_password" yaml:"db_password,omitempty"`
	DBName     string `mapstructure:"db_name" yaml:"db_name"`
	DBSSLMode  string `mapstructure:"db_ssl_mode" yaml:"db_ssl_mode"`
	// DBTable is the warehouse table holding the municipalities extract.
	DBTable string `mapstructure:"db_table" yaml:"db_table"`
}

// Load reads configuration from file, env, and defaults. cfgFile may be
// empty, in which case only env and defaults apply unless ./ibge.yaml
// exists.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("IBGE")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("dataset_path", "dados_lista.csv")
	v.SetDefault("dataset_source", "csv")
	v.SetDefault("allowed_origins", []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://localhost:8501",
	})
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_name", "ibge")
	v.SetDefault("db_ssl_mode", "disable")
	v.SetDefault("db_table", "municipios")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("ibge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Global
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// PORT is the conventional platform override (Render, Heroku).
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	return &cfg, nil
}

// YAML renders the effective configuration, with the database password
// masked, for the `config` subcommand.
func (c *Global) YAML() ([]byte, error) {
	masked := *c
	if masked.DBPassword != "" {
		masked.DBPassword = "********"
	}
	b, err := yaml.Marshal(&masked)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return b, nil
}
