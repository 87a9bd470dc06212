package config

import (
	"errors"
	"log"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "ACTIVITY"

	// SubscanAPIKeyVar is honoured in addition to ACTIVITY_SUBSCAN_API_KEY
	// because it is the name Subscan's own docs use.
	SubscanAPIKeyVar = "SUBSCAN_API_KEY"

	KeyNetwork       = "network"
	KeyAccount       = "account"
	KeySubscanAPIKey = "subscan_api_key"
	KeyTimeout       = "timeout"
	KeyLogLevel      = "log_level"
	KeyLogJSON       = "log_json"
)

type Config struct {
	Network       string        `mapstructure:"network"`
	Account       string        `mapstructure:"account"`
	SubscanAPIKey string        `mapstructure:"subscan_api_key"`
	Timeout       time.Duration `mapstructure:"timeout"`
	LogLevel      string        `mapstructure:"log_level"`
	LogJSON       bool          `mapstructure:"log_json"`
}

func getHomeDir() string {
	usr, err := user.Current()
	if err != nil {
		log.Fatal(err)
	}
	return usr.HomeDir
}

// HomeDir is where config.yaml, accounts.json and custom networks live.
func HomeDir() string {
	return filepath.Join(getHomeDir(), ".activity")
}

// Load reads configuration from, in increasing priority: defaults,
// dir/config.yaml, a .env file in the working directory, the environment
// and any flags already bound on v.
func Load(v *viper.Viper, dir string) (Config, error) {
	// a missing .env is the common case
	_ = godotenv.Load()

	v.SetDefault(KeyNetwork, "polkadot")
	v.SetDefault(KeyAccount, "")
	v.SetDefault(KeyTimeout, time.Duration(0))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogJSON, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(KeySubscanAPIKey, EnvPrefix+"_SUBSCAN_API_KEY", SubscanAPIKeyVar); err != nil {
		return Config{}, err
	}

	if dir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, err
			}
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.SubscanAPIKey = strings.TrimSpace(cfg.SubscanAPIKey)
	return cfg, nil
}
