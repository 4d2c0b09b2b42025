package config

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/viper"
)

// Config is the full application configuration, loaded from an optional
// config file plus STOCKROOM_ prefixed environment variables.
type Config struct {
	Server   Server   `json:"server" mapstructure:"server"`
	Database Database `json:"database" mapstructure:"database"`
	Auth     Auth     `json:"auth" mapstructure:"auth"`
}

type Server struct {
	Address string `json:"address" mapstructure:"address"`
}

type Database struct {
	Driver string `json:"driver" mapstructure:"driver"`
	DSN    string `json:"dsn" mapstructure:"dsn"`
}

type Auth struct {
	// SigningKey is the symmetric key used to sign and verify tokens.
	// Required, no default.
	SigningKey      string `json:"-" mapstructure:"signing_key"`
	TokenTTLMinutes int    `json:"token_ttl_minutes" mapstructure:"token_ttl_minutes"`
	Issuer          string `json:"issuer" mapstructure:"issuer"`
	BcryptCost      int    `json:"bcrypt_cost" mapstructure:"bcrypt_cost"`
}

func (c Config) Validate() error {
	if c.Auth.SigningKey == "" {
		return goerrors.New("auth.signing_key is required", goerrors.CategoryValidation)
	}
	if c.Database.DSN == "" {
		return goerrors.New("database.dsn is required", goerrors.CategoryValidation)
	}
	return nil
}

// Load reads the configuration. The path argument points at a config file
// and can be empty, in which case only defaults and env vars apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "file:stockroom.db")
	// registering the key lets AutomaticEnv feed it into Unmarshal
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl_minutes", 30)
	v.SetDefault("auth.issuer", "stockroom")
	v.SetDefault("auth.bcrypt_cost", 14)

	v.SetEnvPrefix("STOCKROOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "failed to read config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "failed to parse configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
