package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// InitConfig loads configuration from an optional yaml file plus environment
// variables. Environment variables win, with dots mapped to underscores
// (server.port -> SERVER_PORT).
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("no config file loaded, using environment and defaults: %v", err)
	}

	return &models.Config{
		App: models.AppConfig{
			Name:        v.GetString("app.name"),
			Environment: v.GetString("app.environment"),
			Debug:       v.GetBool("app.debug"),
			Version:     v.GetString("app.version"),
		},
		Server: models.ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			ReadTimeout:     v.GetInt("server.read_timeout"),
			WriteTimeout:    v.GetInt("server.write_timeout"),
			ShutdownTimeout: v.GetInt("server.shutdown_timeout"),
		},
		Database: models.DatabaseConfig{
			Driver:    v.GetString("db.driver"),
			Host:      v.GetString("db.host"),
			Port:      v.GetInt("db.port"),
			Username:  v.GetString("db.username"),
			Password:  v.GetString("db.password"),
			Database:  v.GetString("db.database"),
			SSLMode:   v.GetString("db.ssl_mode"),
			MaxConns:  v.GetInt("db.max_conns"),
			IdleConns: v.GetInt("db.idle_conns"),
		},
		Redis: models.RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool_size"),
		},
		NSQ: models.NSQConfig{
			Address: v.GetString("nsq.address"),
			Enabled: v.GetBool("nsq.enabled"),
		},
		JWT: models.JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Expiration: v.GetInt("jwt.expiration"),
			Issuer:     v.GetString("jwt.issuer"),
		},
		Logger: models.LoggerConfig{
			Level:    v.GetString("log.level"),
			FilePath: v.GetString("log.file_path"),
		},
		Stats: models.StatsConfig{
			CO2PerKg: v.GetFloat64("stats.co2_per_kg"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "greencycle-api")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("db.driver", "pgx")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.username", "greencycle")
	v.SetDefault("db.database", "greencycle")
	v.SetDefault("db.ssl_mode", "disable")
	v.SetDefault("db.max_conns", 20)
	v.SetDefault("db.idle_conns", 5)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.enabled", false)

	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "greencycle")

	v.SetDefault("log.level", "info")

	v.SetDefault("stats.co2_per_kg", 2.5)
}
