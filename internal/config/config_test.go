package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, "info", GetString("log.level"))
	assert.Equal(t, 1280, GetInt("window.width"))
	assert.Equal(t, 720, GetInt("window.height"))
	assert.Equal(t, "Gem Puzzle", GetString("window.title"))
	assert.Equal(t, true, GetBool("grid.visible"))
	assert.Equal(t, false, GetBool("overlay.fps"))
	assert.Equal(t, false, GetBool("overlay.mem"))
	assert.Equal(t, 0.8, GetFloat64("placement.hoverRadius"))
	assert.Equal(t, 150, GetInt("placement.suppressWindowMs"))
}

func TestLoad_WithConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `
log:
  level: debug
window:
  width: 1920
placement:
  hoverRadius: 1.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "puzzle.yaml"), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", GetString("log.level"))
	assert.Equal(t, 1920, GetInt("window.width"))
	assert.Equal(t, 1.0, GetFloat64("placement.hoverRadius"))
	// Untouched keys keep their defaults.
	assert.Equal(t, 720, GetInt("window.height"))
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "puzzle.yaml"), []byte("window: ["), 0644))

	assert.Error(t, Load(dir))
}
