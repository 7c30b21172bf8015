package config

import (
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host   string `envconfig:"HOST" mapstructure:"host"`
	Port   string `envconfig:"PORT" mapstructure:"port"`
	Prefix string `envconfig:"PREFIX" mapstructure:"prefix"`
	Mode   Mode   `envconfig:"MODE" mapstructure:"mode"`
	Mysql  Mysql  `mapstructure:"mysql"`
	Redis  Redis  `mapstructure:"redis"`
	Log    Log    `mapstructure:"log"`
	Sentry Sentry `mapstructure:"sentry"`
	// 名单只能来自配置文件，不支持环境变量
	Roster Roster `ignored:"true" mapstructure:"roster"`
}

type Mysql struct {
	Host     string `envconfig:"MYSQL_HOST" mapstructure:"host"`
	Port     string `envconfig:"MYSQL_PORT" mapstructure:"port"`
	Username string `envconfig:"MYSQL_USERNAME" mapstructure:"username"`
	Password string `envconfig:"MYSQL_PASSWORD" mapstructure:"password"`
	DBName   string `envconfig:"MYSQL_DB_NAME" mapstructure:"db_name"`
}

type Redis struct {
	Host     string `envconfig:"REDIS_HOST" mapstructure:"host"`
	Port     string `envconfig:"REDIS_PORT" mapstructure:"port"`
	Password string `envconfig:"REDIS_PASSWORD" mapstructure:"password"`
	DB       int    `envconfig:"REDIS_DB" mapstructure:"db"`
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn         string  `envconfig:"SENTRY_DSN" mapstructure:"dsn"`
	Environment string  `envconfig:"SENTRY_ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64 `envconfig:"SENTRY_SAMPLE_RATE" mapstructure:"sample_rate"`
}

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置：可选的 config.yaml + 环境变量覆盖，最后补默认值
func Init() {
	once.Do(func() {
		cfg := &Config{}

		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err == nil {
			// 配置文件是可选的，读取失败时只依赖环境变量和默认值
			if err := v.Unmarshal(cfg); err != nil {
				panic(err)
			}
		}

		if err := envconfig.Process("", cfg); err != nil {
			panic(err)
		}

		applyDefaults(cfg)
		instance = cfg
	})
}

func applyDefaults(cfg *Config) {
	if cfg.Port == "" {
		cfg.Port = "3007"
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "api"
	}
	if cfg.Mode != ModeRelease {
		cfg.Mode = ModeDebug
	}
	if len(cfg.Roster) == 0 {
		cfg.Roster = DefaultRoster()
	}
}

// Get 获取全局配置，未初始化时先初始化
// 返回指针，测试可以直接替换 Roster 等字段
func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}
