package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/iwvelando/interest-calculator/internal/config"
	"github.com/iwvelando/interest-calculator/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address        string               `yaml:"address"`
	MaxBodySize    string               `yaml:"maxBodySize"`
	SessionBackend string               `yaml:"sessionBackend"`
	SessionTTL     string               `yaml:"sessionTTL"`
	RedisAddress   string               `yaml:"redisAddress"`
	RateLimit      RateLimitConfig      `yaml:"rateLimit"`
	Logging        config.LoggingConfig `yaml:"logging"`
	bodySizeBytes  int64
	sessionTTL     time.Duration
}

// RateLimitConfig bounds requests per client IP.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	cfg := &Config{
		Address:        constants.DefaultServerAddress,
		MaxBodySize:    fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes),
		SessionBackend: constants.SessionBackendMemory,
		SessionTTL:     constants.DefaultSessionTTL,
		Logging:        config.LoggingConfig{},
	}
	_ = cfg.normalize()
	return cfg
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BodySizeBytes returns the configured request body limit in bytes.
func (c *Config) BodySizeBytes() int64 {
	return c.bodySizeBytes
}

// SetBodySizeBytes overrides the configured request body limit.
func (c *Config) SetBodySizeBytes(size int64) {
	if size > 0 {
		c.bodySizeBytes = size
		c.MaxBodySize = fmt.Sprintf("%d", size)
	}
}

// SessionTTLDuration returns how long idle session results are kept.
func (c *Config) SessionTTLDuration() time.Duration {
	return c.sessionTTL
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}

	switch strings.ToLower(strings.TrimSpace(c.SessionBackend)) {
	case "", constants.SessionBackendMemory:
		c.SessionBackend = constants.SessionBackendMemory
	case constants.SessionBackendRedis:
		c.SessionBackend = constants.SessionBackendRedis
		if strings.TrimSpace(c.RedisAddress) == "" {
			return fmt.Errorf("sessionBackend %s requires redisAddress", constants.SessionBackendRedis)
		}
	default:
		return fmt.Errorf("unsupported sessionBackend %q", c.SessionBackend)
	}

	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rateLimit values must not be negative")
	}
	if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = int(math.Ceil(c.RateLimit.RequestsPerSecond))
	}

	ttlStr := strings.TrimSpace(c.SessionTTL)
	if ttlStr == "" {
		ttlStr = constants.DefaultSessionTTL
	}
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return fmt.Errorf("invalid sessionTTL %q: %w", c.SessionTTL, err)
	}
	if ttl <= 0 {
		return fmt.Errorf("sessionTTL must be positive, got %s", c.SessionTTL)
	}
	c.SessionTTL = ttlStr
	c.sessionTTL = ttl

	sizeStr := strings.TrimSpace(c.MaxBodySize)
	if sizeStr == "" {
		c.bodySizeBytes = constants.DefaultMaxBodySizeBytes
		c.MaxBodySize = fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes)
		return nil
	}

	bytes, err := ParseSize(sizeStr)
	if err != nil {
		return err
	}
	if bytes <= 0 {
		bytes = constants.DefaultMaxBodySizeBytes
	}
	c.bodySizeBytes = bytes
	return nil
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
