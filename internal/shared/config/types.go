package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SessionConfig controls where the current-session identity is persisted.
// Backend is "file" or "redis".
type SessionConfig struct {
	Backend    string `mapstructure:"backend"`
	Key        string `mapstructure:"key"`
	FilePath   string `mapstructure:"file_path"`
	Secret     string `mapstructure:"secret"`
	TTLMinutes int    `mapstructure:"ttl_minutes"`
}

func (s *SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

// AuthConfig selects between the demo login (password ignored) and strict
// credential checking.
type AuthConfig struct {
	Mode         string `mapstructure:"mode"`
	DemoPassword string `mapstructure:"demo_password"`
	BcryptCost   int    `mapstructure:"bcrypt_cost"`
}

type ComplaintConfig struct {
	TransitionPolicy string `mapstructure:"transition_policy"`
	CodePrefix       string `mapstructure:"code_prefix"`
}
