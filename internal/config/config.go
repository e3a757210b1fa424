package config

import (
	"flag"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the service configuration. Every field can come from the
// environment; an optional YAML file (via -config or CONFIG_PATH) provides
// the same settings for non-env deployments.
type Config struct {
	Port     int    `yaml:"port" env:"LEDGER_PORT" env-default:"5000"`
	DataDir  string `yaml:"data_dir" env:"LEDGER_DATA_DIR" env-default:"./data"`
	LogLevel string `yaml:"log_level" env:"LEDGER_LOG_LEVEL" env-default:"INFO"`

	// ReverseOnDelete makes removing a transaction also subtract its amount
	// from the account balance. The stock behavior keeps the balance as-is.
	ReverseOnDelete bool `yaml:"reverse_on_delete" env:"LEDGER_REVERSE_ON_DELETE" env-default:"false"`
}

// Load reads the configuration from the file at path (when non-empty) and
// the environment. Environment variables win over file values.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad is Load with the config path resolved from the -config flag or
// CONFIG_PATH, panicking on failure. Intended for the composition root only.
func MustLoad() *Config {
	cfg, err := Load(fetchConfigPath())
	if err != nil {
		panic("failed to read config: " + err.Error())
	}
	return cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
