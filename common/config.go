package common

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// Config keys recognized by the sweep command.
const (
	EXPERIMENTS = "experiments"
	TRIALS      = "trials"
	PROB        = "prob"
)

// Config wraps a viper instance behind concurrency-safe getters.
type Config struct {
	conf *viper.Viper
	mu   sync.RWMutex
}

func NewConfig(path string) (*Config, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return &Config{
		conf: vp,
	}, nil
}

func (c *Config) Get(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conf.Get(key)
}

func (c *Config) GetInt64(key string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conf.GetInt64(key)
}

func (c *Config) GetFloat64(key string) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conf.GetFloat64(key)
}

func (c *Config) GetString(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conf.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conf.GetBool(key)
}
