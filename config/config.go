package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Presence PresenceConfig `mapstructure:"presence"`
	Game     GameConfig     `mapstructure:"game"`
	Security SecurityConfig `mapstructure:"security"`
	Content  ContentConfig  `mapstructure:"content"`
}

type ServerConfig struct {
	Debug bool `mapstructure:"debug"`
}

type DatabaseConfig struct {
	Mode         string        `mapstructure:"mode"` // sqlite | mysql
	SQLitePath   string        `mapstructure:"sqlite_path"`
	MySQLDSN     string        `mapstructure:"mysql_dsn"`
	MySQLMaxOpen int           `mapstructure:"mysql_max_open"`
	MySQLMaxIdle int           `mapstructure:"mysql_max_idle"`
	MySQLMaxLife time.Duration `mapstructure:"mysql_max_life"`
}

type PresenceConfig struct {
	RedisAddr     string `mapstructure:"redis_addr"` // empty → in-process store
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
}

type GameConfig struct {
	SaveInterval   time.Duration `mapstructure:"save_interval"`
	SpawnTolerance float64       `mapstructure:"spawn_tolerance"`
}

type SecurityConfig struct {
	BcryptCost      int           `mapstructure:"bcrypt_cost"`
	LoginRatePeriod time.Duration `mapstructure:"login_rate_period"`
	LoginRateBurst  int           `mapstructure:"login_rate_burst"`
}

type ContentConfig struct {
	DataPath string `mapstructure:"data_path"`
}

// Load reads config from the given YAML file path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.debug", false)
	v.SetDefault("database.mode", "sqlite")
	v.SetDefault("database.sqlite_path", "./data/game.db")
	v.SetDefault("database.mysql_max_open", 50)
	v.SetDefault("database.mysql_max_idle", 10)
	v.SetDefault("database.mysql_max_life", "1h")
	v.SetDefault("game.save_interval", "5m")
	v.SetDefault("game.spawn_tolerance", 0.1)
	v.SetDefault("security.bcrypt_cost", 12)
	v.SetDefault("security.login_rate_period", "1s")
	v.SetDefault("security.login_rate_burst", 5)
	v.SetDefault("content.data_path", "./data/content")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
