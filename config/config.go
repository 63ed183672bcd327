package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置
type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		Mode string `mapstructure:"mode"` // debug / release
	} `mapstructure:"server"`

	Database struct {
		Driver string `mapstructure:"driver"` // postgres / sqlite
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"database"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Reaper struct {
		Interval time.Duration `mapstructure:"interval"`
	} `mapstructure:"reaper"`

	Insights struct {
		RefreshInterval time.Duration `mapstructure:"refresh_interval"`
		TTL             time.Duration `mapstructure:"ttl"`
	} `mapstructure:"insights"`

	JWT struct {
		Secret string `mapstructure:"secret"`
	} `mapstructure:"jwt"`

	Sentry struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"sentry"`

	Trace struct {
		Endpoint string `mapstructure:"endpoint"` // OTLP http endpoint，空则不上报
	} `mapstructure:"trace"`
}

// Load 读取 config.yaml 并叠加环境变量（SOCIAL_ 前缀）
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("SOCIAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "social.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("reaper.interval", 30*time.Minute)
	v.SetDefault("insights.refresh_interval", time.Hour)
	v.SetDefault("insights.ttl", 2*time.Hour)
	v.SetDefault("jwt.secret", "dev-secret")

	if err := v.ReadInConfig(); err != nil {
		// 配置文件缺省时仅依赖默认值与环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
