package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

func loadEnvString(key string, result *string) {
	s, ok := os.LookupEnv(key)

	if !ok {
		return
	}
	*result = s
}

func loadEnvUint(key string, result *uint) {
	s, ok := os.LookupEnv(key)

	if !ok {
		return
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return
	}
	*result = uint(n)
}

func loadEnvBool(key string, result *bool) {
	s, ok := os.LookupEnv(key)

	if !ok {
		return
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return
	}
	*result = b
}

/* Configuration */

/* Listen Configuration */

type listenConfig struct {
	Host string `json:"host"`
	Port uint   `json:"port"`
}

func (l listenConfig) Addr() string {
	return fmt.Sprintf("%s:%d", l.Host, l.Port)
}

func defaultListenConfig() listenConfig {
	return listenConfig{
		Host: "127.0.0.1",
		Port: 8080,
	}
}

func (l *listenConfig) loadFromEnv() {
	loadEnvString("LISTEN_HOST", &l.Host)
	loadEnvUint("LISTEN_PORT", &l.Port)
}

/* Record Search Configuration */

// searchConfig points the service at the host platform's record-search API.
// The API key is passed through as-is; session handling stays with the host.
type searchConfig struct {
	BaseURL        string `json:"base_url"`
	APIKey         string `json:"-"`
	TimeoutSeconds uint   `json:"timeout_seconds"`
}

func (s *searchConfig) loadFromEnv() {
	loadEnvString("SEARCH_BASE_URL", &s.BaseURL)
	loadEnvString("SEARCH_API_KEY", &s.APIKey)
	loadEnvUint("SEARCH_TIMEOUT_SECONDS", &s.TimeoutSeconds)
}

func defaultSearchConfig() searchConfig {
	return searchConfig{
		BaseURL:        "http://localhost:9090",
		APIKey:         "",
		TimeoutSeconds: 30,
	}
}

/* Redis Configuration */

type redisConfig struct {
	Enabled    bool   `json:"enabled"`
	Host       string `json:"host"`
	Port       uint   `json:"port"`
	Password   string `json:"-"`
	DB         int    `json:"db"`
	TTLSeconds uint   `json:"ttl_seconds"`
}

func (r *redisConfig) loadFromEnv() {
	loadEnvBool("REDIS_ENABLED", &r.Enabled)
	loadEnvString("REDIS_HOST", &r.Host)
	loadEnvUint("REDIS_PORT", &r.Port)
	loadEnvString("REDIS_PASSWORD", &r.Password)
	loadEnvUint("REDIS_TTL_SECONDS", &r.TTLSeconds)

	// Load DB number with a default of 0
	if dbStr := getEnv("REDIS_DB", "0"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			r.DB = db
		}
	}
	log.Info().Interface("redis", r).Msg("Redis config loaded")
}

func defaultRedisConfig() redisConfig {
	return redisConfig{
		Enabled:    false,
		Host:       "localhost",
		Port:       6379,
		Password:   "",
		DB:         0,
		TTLSeconds: 60,
	}
}

/* NATS Configuration */

type natsConfig struct {
	Enabled  bool
	Host     string
	Port     uint
	Username string
	Password string
}

func (c *natsConfig) loadFromEnv() {
	loadEnvBool("NATS_ENABLED", &c.Enabled)
	c.Host = getEnv("NATS_HOST", "localhost")

	// Load port with default 4222
	if portStr := getEnv("NATS_PORT", "4222"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			c.Port = uint(port)
		} else {
			c.Port = 4222
		}
	} else {
		c.Port = 4222
	}

	c.Username = getEnv("NATS_USER", "")
	c.Password = getEnv("NATS_PASSWORD", "")
}

func (c *natsConfig) URL() string {
	return fmt.Sprintf("nats://%s:%d", c.Host, c.Port)
}

func defaultNatsConfig() natsConfig {
	return natsConfig{
		Enabled:  false,
		Host:     "localhost",
		Port:     4222,
		Username: "",
		Password: "",
	}
}

/* Logging Configuration */

type logConfig struct {
	Level  string `json:"level"`
	Pretty bool   `json:"pretty"`
}

func (l *logConfig) loadFromEnv() {
	loadEnvString("LOG_LEVEL", &l.Level)
	loadEnvBool("LOG_PRETTY", &l.Pretty)
}

func defaultLogConfig() logConfig {
	return logConfig{
		Level:  "info",
		Pretty: false,
	}
}

type Config struct {
	Listen listenConfig
	Search searchConfig
	Redis  redisConfig
	Nats   natsConfig
	Log    logConfig
}

func (c *Config) LoadFromEnv() {
	c.Listen.loadFromEnv()
	c.Search.loadFromEnv()
	c.Redis.loadFromEnv()
	c.Nats.loadFromEnv()
	c.Log.loadFromEnv()
}

func DefaultConfig() Config {
	return Config{
		Listen: defaultListenConfig(),
		Search: defaultSearchConfig(),
		Redis:  defaultRedisConfig(),
		Nats:   defaultNatsConfig(),
		Log:    defaultLogConfig(),
	}
}
