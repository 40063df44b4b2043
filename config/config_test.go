package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/memkit/vfs/internal/util"
)

func createOverride() *ConfigOverride {
	return &ConfigOverride{
		ChunkSize:      util.Pointer(8192),
		InitialChunks:  util.Pointer(8),
		MaxOpenStreams: util.Pointer(128),
		LogLvl:         util.Pointer(util.DebugLevel),
	}
}

// TestNewConfig_WithNilOverride tests that NewConfig creates a config with
// all default values when no override is provided.
func TestNewConfig_WithNilOverride(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(nil)

	require.NotNil(t, cfg)
	assert.Equal(t, NewDefaultConfig(), cfg, "must use default values when no config provided")
}

func TestNewConfig_WithAllOverride(t *testing.T) {
	t.Parallel()

	override := createOverride()
	cfg := NewConfig(override)

	expCfg := &Config{
		ChunkSize:      *override.ChunkSize,
		InitialChunks:  *override.InitialChunks,
		MaxOpenStreams: *override.MaxOpenStreams,
		LogLvl:         *override.LogLvl,
	}
	require.NotNil(t, cfg)
	assert.Equal(t, expCfg, cfg, "must override all provided fields")
}

func TestConfig_Merge_PartialOverride(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(&ConfigOverride{ChunkSize: util.Pointer(1024)})

	assert.Equal(t, 1024, cfg.ChunkSize)
	assert.Equal(t, DefaultInitialChunks, cfg.InitialChunks, "unset fields keep defaults")
	assert.Equal(t, DefaultMaxOpenStreams, cfg.MaxOpenStreams)
	assert.Equal(t, util.InfoLevel, cfg.LogLvl)
}

func TestConfig_Merge_ZeroValueOverride(t *testing.T) {
	t.Parallel()

	// a pointer to zero is an explicit override, not an unset field
	cfg := NewConfig(&ConfigOverride{LogLvl: util.Pointer(util.TraceLevel)})
	assert.Equal(t, util.TraceLevel, cfg.LogLvl)
}

func TestLoadConfigOverrideFile_YAML(t *testing.T) {
	t.Parallel()

	override := createOverride()
	data, err := yaml.Marshal(override)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadConfigOverrideFile(path)
	require.NoError(t, err)
	assert.Equal(t, override, loaded)
}

func TestLoadConfigOverrideFile_JSON(t *testing.T) {
	t.Parallel()

	override := createOverride()
	data, err := json.Marshal(override)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadConfigOverrideFile(path)
	require.NoError(t, err)
	assert.Equal(t, override, loaded)
}

func TestLoadConfigOverrideFile_UnknownExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size = 1"), 0o644))

	_, err := LoadConfigOverrideFile(path)
	assert.ErrorContains(t, err, "unknown config file extension")
}

func TestLoadConfigOverrideFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigOverrideFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNewConfigFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size: 2048\n"), 0o644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2048, cfg.ChunkSize)
	assert.Equal(t, DefaultInitialChunks, cfg.InitialChunks)
}

func TestNewConfigFromFile_BadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size: [not an int"), 0o644))

	_, err := NewConfigFromFile(path)
	assert.ErrorContains(t, err, "failed to unmarshal config file")
}
