package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const envPrefix = "GOSHANTEN"

var (
	Conf *Config
	mu   sync.RWMutex
)

type Config struct {
	AppName    string      `mapstructure:"appName"`
	Log        LogConf     `mapstructure:"log"`
	Pool       PoolConf    `mapstructure:"pool"`
	Shanten    ShantenConf `mapstructure:"shanten"`
	HttpPort   int         `mapstructure:"httpPort"`
	MetricPort int         `mapstructure:"metricPort"`
	RateLimit  RateConf    `mapstructure:"rateLimit"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

type PoolConf struct {
	Seed     uint64 `mapstructure:"seed"` // 0 表示按时间取种子
	HandSize int    `mapstructure:"handSize"` // 13 或 14
}

// RateConf HTTP 接口限流，rate 为 0 时关闭
type RateConf struct {
	Rate  int `mapstructure:"rate"`
	Burst int `mapstructure:"burst"`
}

type ShantenConf struct {
	CacheMaxCost int64 `mapstructure:"cacheMaxCost"`
	CacheTTL     int   `mapstructure:"cacheTTL"` // 单位是秒
	CountGapped  bool  `mapstructure:"countGapped"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("appName", "goshanten")
	v.SetDefault("log.level", "info")
	v.SetDefault("pool.seed", 0)
	v.SetDefault("pool.handSize", 13)
	v.SetDefault("shanten.cacheMaxCost", 1<<20)
	v.SetDefault("shanten.cacheTTL", 600)
	v.SetDefault("shanten.countGapped", true)
	v.SetDefault("httpPort", 8080)
	v.SetDefault("metricPort", 5854)
	v.SetDefault("rateLimit.rate", 50)
	v.SetDefault("rateLimit.burst", 100)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Default 只含默认值与环境变量，不读文件
func Default() *Config {
	cfg := new(Config)
	if err := newViper().Unmarshal(cfg); err != nil {
		panic(fmt.Errorf("解析默认配置出错, err:%v", err))
	}
	return cfg
}

// Load 读取配置文件（可为空）并监听变更，结果写入 Conf
func Load(configFile string, onChange func(*Config)) (*Config, error) {
	v := newViper()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件出错: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件出错: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	set(cfg)

	if configFile != "" {
		v.OnConfigChange(func(in fsnotify.Event) {
			next := new(Config)
			if err := v.Unmarshal(next); err != nil || next.Validate() != nil {
				return
			}
			set(next)
			if onChange != nil {
				onChange(next)
			}
		})
		v.WatchConfig()
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Pool.HandSize < 13 || c.Pool.HandSize > 14 {
		return fmt.Errorf("pool.handSize must be 13 or 14, got %d", c.Pool.HandSize)
	}
	if c.Shanten.CacheMaxCost < 0 {
		return fmt.Errorf("shanten.cacheMaxCost must not be negative, got %d", c.Shanten.CacheMaxCost)
	}
	if c.RateLimit.Rate < 0 {
		return fmt.Errorf("rateLimit.rate must not be negative, got %d", c.RateLimit.Rate)
	}
	return nil
}

func set(cfg *Config) {
	mu.Lock()
	Conf = cfg
	mu.Unlock()
}

// Current 当前生效配置，未加载时返回默认值
func Current() *Config {
	mu.RLock()
	cfg := Conf
	mu.RUnlock()
	if cfg == nil {
		return Default()
	}
	return cfg
}
