package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var errMissingSigningKey = errors.New("api.jwt_signing_key is required")

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Redis    *RedisConfig    `mapstructure:"redis"`
	Upload   *UploadConfig   `mapstructure:"upload"`
	Firebase *FirebaseConfig `mapstructure:"firebase"`
	Filter   *FilterConfig   `mapstructure:"filter"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig enables the advertisement cache when Addr is set.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	AdTTL    time.Duration `mapstructure:"ad_ttl"`
}

type UploadConfig struct {
	Dir       string `mapstructure:"dir"`
	URLPrefix string `mapstructure:"url_prefix"`
	MaxSizeMB int64  `mapstructure:"max_size_mb"`
}

// FirebaseConfig enables push notifications. Without it pushes are only logged.
type FirebaseConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

type FilterConfig struct {
	ProximityDegrees float64 `mapstructure:"proximity_degrees"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("redis.ad_ttl", time.Minute)
	v.SetDefault("upload.dir", "./static")
	v.SetDefault("upload.url_prefix", "/static")
	v.SetDefault("upload.max_size_mb", 5)
	v.SetDefault("filter.proximity_degrees", 0.05)
}

// Loader reads the config file and keeps watching it.
type Loader struct {
	v *viper.Viper
}

func NewLoader(path string) *Loader {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return &Loader{v: v}
}

func (l *Loader) Load() (*AppConfig, error) {
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	return l.unmarshal()
}

// Watch calls onChange with the reloaded config each time the file is written.
// A file that fails to decode is logged and skipped.
func (l *Loader) Watch(onChange func(*AppConfig)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		conf, err := l.unmarshal()
		if err != nil {
			zap.L().Error("config reload failed", zap.String("file", e.Name), zap.Error(err))
			return
		}

		zap.L().Info("config reloaded", zap.String("file", e.Name))
		onChange(conf)
	})
	l.v.WatchConfig()
}

func (l *Loader) unmarshal() (*AppConfig, error) {
	conf := &AppConfig{}
	if err := l.v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if conf.API == nil || conf.API.JWTSigningKey == "" {
		return nil, errMissingSigningKey
	}
	fillEmpty(conf)

	return conf, nil
}

func fillEmpty(conf *AppConfig) {
	if conf.Gin == nil {
		conf.Gin = &GinConfig{}
	}
	if conf.Postgres == nil {
		conf.Postgres = &PostgresConfig{}
	}
	if conf.Redis == nil {
		conf.Redis = &RedisConfig{}
	}
	if conf.Upload == nil {
		conf.Upload = &UploadConfig{}
	}
	if conf.Firebase == nil {
		conf.Firebase = &FirebaseConfig{}
	}
	if conf.Filter == nil {
		conf.Filter = &FilterConfig{}
	}
}

// Load reads path once without watching it.
func Load(path string) (*AppConfig, error) {
	return NewLoader(path).Load()
}
