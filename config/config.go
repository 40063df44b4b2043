package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/memkit/vfs/internal/util"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultChunkSize is the capacity of each file data chunk in bytes.
	// File content is stored as a sequence of fixed-capacity chunks so a
	// write never reallocates the whole file.
	DefaultChunkSize = 4096

	// DefaultInitialChunks is the number of empty chunks a file is
	// pre-allocated with when created or cleared.
	DefaultInitialChunks = 4

	// DefaultMaxOpenStreams caps the number of concurrently open file
	// streams. Uses 31 bits (2^31 - 1) which is more than enough open
	// handles while staying within safe interop limits.
	DefaultMaxOpenStreams = (1 << 31) - 1
)

// Config contains runtime configuration values for the virtual filesystem.
type Config struct {
	ChunkSize      int           // Capacity of each file data chunk in bytes (Default 4096)
	InitialChunks  int           // Chunks pre-allocated on file create/clear (Default 4)
	MaxOpenStreams int           // Maximum concurrently open file streams (Default 2147483647)
	LogLvl         util.LogLevel // Log level for filesystem components (Default info)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions.
type ConfigOverride struct {
	ChunkSize      *int `yaml:"chunk_size,omitempty" json:"chunk_size,omitempty"`
	InitialChunks  *int `yaml:"initial_chunks,omitempty" json:"initial_chunks,omitempty"`
	MaxOpenStreams *int `yaml:"max_open_streams,omitempty" json:"max_open_streams,omitempty"`
	LogLvl         *int `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		ChunkSize:      DefaultChunkSize,
		InitialChunks:  DefaultInitialChunks,
		MaxOpenStreams: DefaultMaxOpenStreams,
		LogLvl:         util.InfoLevel,
	}
}

// NewConfig creates a new Config from defaults with override applied.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.ChunkSize != nil {
		c.ChunkSize = *override.ChunkSize
	}
	if override.InitialChunks != nil {
		c.InitialChunks = *override.InitialChunks
	}
	if override.MaxOpenStreams != nil {
		c.MaxOpenStreams = *override.MaxOpenStreams
	}
	if override.LogLvl != nil {
		c.LogLvl = *override.LogLvl
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without
// merging. Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with
// defaults. This is a convenience function that combines NewDefaultConfig,
// LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
