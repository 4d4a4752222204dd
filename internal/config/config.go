package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/boardflab/boardflab-backend/pkg/logger"
	"gopkg.in/yaml.v3"
)

// Config 애플리케이션 설정 (configs/config.<APP_ENV>.yaml + 환경 변수)
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"` // gin mode: debug, release, test
	Env  string `yaml:"env"`
}

type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Name            string `yaml:"name"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	ExpiresIn int    `yaml:"expires_in"` // seconds
}

type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"` // comma separated
}

type RateLimitConfig struct {
	ModifyPerMinute int `yaml:"modify_per_minute"`
}

// GetDSN MySQL DSN.
// clientFoundRows: 내용이 같아도 UPDATE가 매칭된 행 수를 반환
func (d DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// IsDevelopment reports whether the server runs in a local/dev environment
func (c *Config) IsDevelopment() bool {
	switch c.Server.Env {
	case "", "local", "dev", "development":
		return true
	}
	return false
}

// AllowOrigins CORS origin 목록
func (c *Config) AllowOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORS.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return origins
}

func defaults() *Config {
	return &Config{
		Server:    ServerConfig{Port: 8080, Mode: "debug", Env: "local"},
		Database:  DatabaseConfig{Host: "localhost", Port: 3306, MaxIdleConns: 10, MaxOpenConns: 50, ConnMaxLifetime: 3600},
		Redis:     RedisConfig{Host: "localhost", Port: 6379, PoolSize: 10},
		JWT:       JWTConfig{ExpiresIn: 900},
		RateLimit: RateLimitConfig{ModifyPerMinute: 10},
	}
}

// Load reads the YAML file at path, then applies environment overrides and validates.
// A missing file is not an error; defaults and environment are used instead.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		logger.Warn("config file %s not found, using defaults and environment", path)
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv 환경 변수가 YAML 값보다 우선
func applyEnv(cfg *Config) error {
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Redis.Host, "REDIS_HOST")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")

	for key, dst := range map[string]*int{
		"DB_PORT":     &cfg.Database.Port,
		"REDIS_PORT":  &cfg.Redis.Port,
		"SERVER_PORT": &cfg.Server.Port,
	} {
		if err := setInt(dst, key); err != nil {
			return err
		}
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.Database.Port <= 0 {
		return fmt.Errorf("database.port must be positive, got %d", c.Database.Port)
	}
	if c.Redis.Port <= 0 {
		return fmt.Errorf("redis.port must be positive, got %d", c.Redis.Port)
	}
	if c.JWT.ExpiresIn <= 0 {
		return fmt.Errorf("jwt.expires_in must be positive, got %d", c.JWT.ExpiresIn)
	}
	if c.JWT.Secret == "" && !c.IsDevelopment() {
		return errors.New("jwt.secret is required outside development (set JWT_SECRET)")
	}
	return nil
}

// LogResolved 최종 설정 출력 (비밀값 마스킹)
func LogResolved(cfg *Config) {
	logger.Info("server: port=%d mode=%s env=%s", cfg.Server.Port, cfg.Server.Mode, cfg.Server.Env)
	logger.Info("database: %s@%s:%d/%s password=%s pool=%d/%d",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name,
		mask(cfg.Database.Password), cfg.Database.MaxIdleConns, cfg.Database.MaxOpenConns)
	logger.Info("redis: %s:%d db=%d password=%s", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB, mask(cfg.Redis.Password))
	logger.Info("jwt: secret=%s expires_in=%ds", mask(cfg.JWT.Secret), cfg.JWT.ExpiresIn)
	logger.Info("cors: %v, rate_limit.modify_per_minute=%d", cfg.AllowOrigins(), cfg.RateLimit.ModifyPerMinute)
}

func mask(secret string) string {
	if secret == "" {
		return "(empty)"
	}
	return "****"
}
