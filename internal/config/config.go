package config

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type MainConfig struct {
	AppName  string `toml:"appName"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	ForceSSL bool   `toml:"forceSSL"`
}

type DatabaseConfig struct {
	Driver       string `toml:"driver"` // mysql | postgres | sqlite
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
	DSN          string `toml:"dsn"` // 非空时直接使用，忽略上面的字段
	MaxOpenConns int    `toml:"maxOpenConns"`
	MaxIdleConns int    `toml:"maxIdleConns"`
}

type LogConfig struct {
	LogPath    string `toml:"logPath"`
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"maxSizeMB"`
	MaxBackups int    `toml:"maxBackups"`
	MaxAgeDays int    `toml:"maxAgeDays"`
}

type JwtConfig struct {
	Key         string `toml:"key"`
	ExpireHours int    `toml:"expireHours"`
	Issuer      string `toml:"issuer"`
}

type RedisConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	Password     string `toml:"password"`
	DB           int    `toml:"db"`
	PoolSize     int    `toml:"poolSize"`
	MinIdleConns int    `toml:"minIdleConns"`
}

type KafkaConfig struct {
	Brokers           []string `toml:"brokers"`
	ClientID          string   `toml:"clientID"`
	NotificationTopic string   `toml:"notificationTopic"`
}

// ReminderConfig 提醒扫描的触发与互斥设置
type ReminderConfig struct {
	Enabled        bool   `toml:"enabled"`
	CronExpr       string `toml:"cronExpr"`
	CronSecret     string `toml:"cronSecret"`
	LockTTLSeconds int    `toml:"lockTTLSeconds"`
	TimeZone       string `toml:"timeZone"`
}

type ScraperConfig struct {
	TimeoutSeconds  int    `toml:"timeoutSeconds"`
	UserAgent       string `toml:"userAgent"`
	CacheTTLMinutes int    `toml:"cacheTTLMinutes"`
}

type Config struct {
	MainConfig     `toml:"mainConfig"`
	DatabaseConfig `toml:"databaseConfig"`
	LogConfig      `toml:"logConfig"`
	JwtConfig      `toml:"jwtConfig"`
	RedisConfig    `toml:"redisConfig"`
	KafkaConfig    `toml:"kafkaConfig"`
	ReminderConfig `toml:"reminderConfig"`
	ScraperConfig  `toml:"scraperConfig"`
}

const defaultConfigPath = "configs/config_local.toml"

var (
	config *Config
	once   sync.Once
)

// Load 读取 .env 和 TOML 配置文件，未配置的字段使用默认值
func Load(path string) (*Config, error) {
	// .env 不存在不是错误，生产环境直接使用进程环境变量
	_ = godotenv.Load()

	c := new(Config)
	var err error
	if path != "" {
		if _, err = toml.DecodeFile(path, c); err != nil {
			log.Printf("load config file %s failed: %v, falling back to defaults", path, err)
		}
	}
	c.applyEnv()
	c.applyDefaults()
	return c, err
}

func GetConfig() *Config {
	once.Do(func() {
		path := os.Getenv("JOBTRACKER_CONFIG")
		if path == "" {
			path = defaultConfigPath
		}
		config, _ = Load(path)
	})
	return config
}

func (c *Config) applyEnv() {
	if v := os.Getenv("JWT_KEY"); v != "" {
		c.JwtConfig.Key = v
	}
	if v := os.Getenv("CRON_SECRET"); v != "" {
		c.ReminderConfig.CronSecret = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseConfig.DSN = v
	}
}

func (c *Config) applyDefaults() {
	if c.MainConfig.AppName == "" {
		c.MainConfig.AppName = "JobTracker"
	}
	if c.MainConfig.Host == "" {
		c.MainConfig.Host = "0.0.0.0"
	}
	if c.MainConfig.Port == 0 {
		c.MainConfig.Port = 8080
	}

	c.DatabaseConfig.Driver = strings.ToLower(strings.TrimSpace(c.DatabaseConfig.Driver))
	if c.DatabaseConfig.Driver == "" {
		c.DatabaseConfig.Driver = "mysql"
	}
	if c.DatabaseConfig.DatabaseName == "" {
		c.DatabaseConfig.DatabaseName = "jobtracker"
	}
	if c.DatabaseConfig.MaxOpenConns <= 0 {
		c.DatabaseConfig.MaxOpenConns = 25
	}
	if c.DatabaseConfig.MaxIdleConns <= 0 {
		c.DatabaseConfig.MaxIdleConns = 10
	}

	if c.JwtConfig.ExpireHours <= 0 {
		c.JwtConfig.ExpireHours = 24 * 30
	}
	if c.JwtConfig.Issuer == "" {
		c.JwtConfig.Issuer = c.MainConfig.AppName
	}

	if c.KafkaConfig.NotificationTopic == "" {
		c.KafkaConfig.NotificationTopic = "jobtracker.notifications"
	}

	if c.ReminderConfig.CronExpr == "" {
		// 每天 9 点
		c.ReminderConfig.CronExpr = "0 9 * * *"
	}
	if c.ReminderConfig.LockTTLSeconds <= 0 {
		c.ReminderConfig.LockTTLSeconds = 600
	}

	if c.ScraperConfig.TimeoutSeconds <= 0 {
		c.ScraperConfig.TimeoutSeconds = 8
	}
	if c.ScraperConfig.UserAgent == "" {
		c.ScraperConfig.UserAgent = "Mozilla/5.0 (compatible; JobTracker/1.0)"
	}
	if c.ScraperConfig.CacheTTLMinutes <= 0 {
		c.ScraperConfig.CacheTTLMinutes = 60
	}
}
