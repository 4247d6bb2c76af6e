package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "complaintdesk/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Session   sharedConfig.SessionConfig   `mapstructure:"session"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Complaint sharedConfig.ComplaintConfig `mapstructure:"complaint"`
	Timezone  string                       `mapstructure:"timezone"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml, an optional configs/config.<env>.yaml
// overlay and COMPLAINTDESK_* environment variables. A missing config file
// is not an error; defaults apply.
func Load(env string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("COMPLAINTDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.SetConfigName("config." + env)
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to merge %s config: %w", env, err)
			}
		}
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the last loaded configuration, or nil before Load.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("session.backend", "file")
	v.SetDefault("session.key", "complaintdesk_user")
	v.SetDefault("session.file_path", "./data/session.jwt")
	v.SetDefault("session.secret", "change-me-in-production")
	v.SetDefault("session.ttl_minutes", 0)

	v.SetDefault("auth.mode", "demo")
	v.SetDefault("auth.demo_password", "password123")
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("complaint.transition_policy", "permissive")
	v.SetDefault("complaint.code_prefix", "COMP")

	v.SetDefault("timezone", "Asia/Kolkata")
}
