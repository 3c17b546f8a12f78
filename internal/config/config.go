package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	BackendDeque  = "deque"
	BackendVector = "vector"

	AllocatorHeap = "heap"
	AllocatorPool = "pool"
)

// Path returns $LIFO_CONFIG, falling back to the per-user config file.
func Path() string {
	if p := os.Getenv("LIFO_CONFIG"); p != "" {
		return p
	}

	return os.ExpandEnv("$HOME/.config/lifo/config.yaml")
}

func Default() Config {
	return Config{
		Backend:     BackendDeque,
		Allocator:   AllocatorHeap,
		Parallelism: 4,
		BlockSize:   64,
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	ret := Default()

	marshaled, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return ret, nil
	case err != nil:
		return ret, err
	}

	if err := yaml.Unmarshal(marshaled, &ret); err != nil {
		return ret, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := ret.Validate(); err != nil {
		return ret, fmt.Errorf("%s: %w", path, err)
	}

	return ret, nil
}

type Config struct {
	Backend     string `yaml:"backend"`
	Allocator   string `yaml:"allocator"`
	Parallelism int    `yaml:"parallelism"`
	BlockSize   int    `yaml:"block_size"`
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendDeque, BackendVector:
	default:
		return fmt.Errorf("unknown backend [%s]", c.Backend)
	}

	switch c.Allocator {
	case AllocatorHeap, AllocatorPool:
	default:
		return fmt.Errorf("unknown allocator [%s]", c.Allocator)
	}

	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism must be positive, got %d", c.Parallelism)
	}

	if c.BlockSize < 1 {
		return fmt.Errorf("block_size must be positive, got %d", c.BlockSize)
	}

	return nil
}
