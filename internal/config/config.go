// Package config loads application preferences through viper: window and
// camera settings, overlay toggles, log level, and placement tuning. A
// missing config file is fine; defaults cover everything.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// FileName is the optional preferences file, looked up in the config
// directory passed to Load.
const FileName = "puzzle"

// Load sets defaults and reads the optional puzzle.yaml from configDir.
// Only a malformed file is an error; an absent one leaves the defaults.
func Load(configDir string) error {
	viper.SetDefault("log.level", "info")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "Gem Puzzle")

	viper.SetDefault("camera.distance", 12.0)
	viper.SetDefault("camera.yaw", 0.0)
	viper.SetDefault("camera.pitch", 0.9)

	viper.SetDefault("grid.visible", true)
	viper.SetDefault("overlay.fps", false)
	viper.SetDefault("overlay.mem", false)

	// Placement tuning: defaults match the board's 1.2-unit slot pitch.
	// Exposed for accessibility adjustment, not expected to change otherwise.
	viper.SetDefault("placement.hoverRadius", 0.8)
	viper.SetDefault("placement.suppressWindowMs", 150)

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 returns a float config value.
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}
