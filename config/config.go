package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var Conf = config{}

var (
	CfgPath string
	Env     string
)

type config struct {
	HTTPServer  HTTPServerConfig  `mapstructure:"httpserver" yaml:"httpserver"`
	GoPlus      GoPlusConfig      `mapstructure:"goplus" yaml:"goplus"`
	DexScreener DexScreenerConfig `mapstructure:"dexscreener" yaml:"dexscreener"`
	Cache       CacheConfig       `mapstructure:"cache" yaml:"cache"`
	Redis       RedisConfig       `mapstructure:"redis" yaml:"redis"`
	Notifier    NotifierConfig    `mapstructure:"notifier" yaml:"notifier"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
}

type LogConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type HTTPServerConfig struct {
	Host           string `mapstructure:"host" yaml:"host"`
	Port           int    `mapstructure:"port" yaml:"port"`
	APIKey         string `mapstructure:"apikey" yaml:"apikey"`
	ClientMaxConns int    `mapstructure:"client-max-conns" yaml:"client-max-conns"`
}

type GoPlusConfig struct {
	BaseURL string        `mapstructure:"base_url" yaml:"base_url"`
	APIKey  string        `mapstructure:"api_key" yaml:"api_key"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type DexScreenerConfig struct {
	BaseURL string        `mapstructure:"base_url" yaml:"base_url"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type CacheConfig struct {
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Capacity int           `mapstructure:"capacity" yaml:"capacity"`
	Backend  string        `mapstructure:"backend" yaml:"backend"`
}

type RedisConfig struct {
	Addr         string `mapstructure:"addr" yaml:"addr"`
	Password     string `mapstructure:"password" yaml:"password"`
	Database     int    `mapstructure:"database" yaml:"database"`
	MaxIdleConns int    `mapstructure:"max-idle-conns" yaml:"max-idle-conns"`
}

type NotifierConfig struct {
	SlackWebHook string `mapstructure:"slack_webhook" yaml:"slack_webhook"`
	LarkWebHook  string `mapstructure:"lark_webhook" yaml:"lark_webhook"`
}

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

func setDefaults() {
	viper.SetDefault("httpserver.host", "0.0.0.0")
	viper.SetDefault("httpserver.port", 8080)
	viper.SetDefault("httpserver.client-max-conns", 50)
	viper.SetDefault("goplus.base_url", "https://api.gopluslabs.io/api/v1")
	viper.SetDefault("goplus.timeout", "10s")
	viper.SetDefault("dexscreener.base_url", "https://api.dexscreener.com/latest/dex")
	viper.SetDefault("dexscreener.timeout", "10s")
	viper.SetDefault("cache.ttl", "300s")
	viper.SetDefault("cache.capacity", 500)
	viper.SetDefault("cache.backend", CacheBackendMemory)
	viper.SetDefault("redis.max-idle-conns", 10)
	viper.SetDefault("log.path", "./scout.log")
}

// SetupConfig loads cfgPath when given, otherwise config.<env>.yaml under
// CfgPath. A missing file is not fatal, the defaults above keep the service
// runnable with zero configuration.
func SetupConfig(cfgPath string) {
	setDefaults()

	if cfgPath != "" {
		viper.SetConfigFile(cfgPath)
	} else {
		if Env == "" {
			Env = "dev"
		}
		viper.SetConfigName("config." + Env)
		viper.SetConfigType("yaml")
		if CfgPath != "" {
			viper.AddConfigPath(CfgPath)
		}
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logrus.Warnf("no configuration file found, running with defaults")
		} else {
			panic(fmt.Errorf("failed to read configuration file: %v", err))
		}
	}

	if err := viper.Unmarshal(&Conf); err != nil {
		panic(fmt.Errorf("failed to unmarshal configuration file %v", err))
	}

	logrus.Infof("read configuration file successfully")
}
