package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort        int           `yaml:"http_port" validate:"required,min=1,max=65535"`
	LogLevel        string        `yaml:"log_level"`
	LogJSON         bool          `yaml:"log_json"`
	Storage         string        `yaml:"storage" validate:"required,oneof=postgres memory"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" validate:"required"`   // seconds
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" validate:"required"`  // seconds
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	MaxTitleLen     int           `yaml:"max_title_len" validate:"required,min=1"`
	MaxContentLen   int           `yaml:"max_content_len" validate:"required,min=1"`
	SecureCookies   bool          `yaml:"secure_cookies"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type Private struct {
	Pg              Pg     `yaml:"pg"`
	AccessTokenKey  string `yaml:"access_token_key" validate:"required"`
	RefreshTokenKey string `yaml:"refresh_token_key" validate:"required"`
}

func (c *Config) AccessTokenKey() string {
	return c.Private.AccessTokenKey
}

func (c *Config) RefreshTokenKey() string {
	return c.Private.RefreshTokenKey
}

func (c *Config) AccessTokenTTL() time.Duration {
	return c.Public.AccessTokenTTL * time.Second
}

func (c *Config) RefreshTokenTTL() time.Duration {
	return c.Public.RefreshTokenTTL * time.Second
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err = yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + configPath)
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}

// Validate checks required fields. Pg settings only matter for the postgres storage.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c.Public); err != nil {
		return fmt.Errorf("invalid public config: %w", err)
	}
	if c.Public.Storage == StoragePostgres {
		if err := validate.Struct(c.Private); err != nil {
			return fmt.Errorf("invalid private config: %w", err)
		}
		return nil
	}
	if err := validate.StructExcept(c.Private, "Pg"); err != nil {
		return fmt.Errorf("invalid private config: %w", err)
	}
	return nil
}
