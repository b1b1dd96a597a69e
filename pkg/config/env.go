package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnvironmentOverrides.
const (
	EnvWorldWidth   = "ANTIGRAVITY_WORLD_WIDTH"
	EnvWorldHeight  = "ANTIGRAVITY_WORLD_HEIGHT"
	EnvGravityCoef  = "ANTIGRAVITY_GRAVITY_COEF"
	EnvFrictionCoef = "ANTIGRAVITY_FRICTION_COEF"
	EnvBroadPhase   = "ANTIGRAVITY_BROADPHASE"
	EnvMaxBodies    = "ANTIGRAVITY_MAX_BODIES"
	EnvThrow        = "ANTIGRAVITY_THROW"
)

// ApplyEnvironmentOverrides overlays ANTIGRAVITY_* variables onto config and
// validates the result. Unparseable values keep the existing setting.
func ApplyEnvironmentOverrides(config *Config) error {
	config.World.Width = getEnvAsFloatOrDefault(EnvWorldWidth, config.World.Width)
	config.World.Height = getEnvAsFloatOrDefault(EnvWorldHeight, config.World.Height)
	config.Physics.GravityCoefficient = getEnvAsFloatOrDefault(EnvGravityCoef, config.Physics.GravityCoefficient)
	config.Physics.FrictionCoefficient = getEnvAsFloatOrDefault(EnvFrictionCoef, config.Physics.FrictionCoefficient)
	config.BroadPhase.Kind = strings.ToLower(getEnvOrDefault(EnvBroadPhase, config.BroadPhase.Kind))
	config.Limits.MaxBodies = getEnvAsIntOrDefault(EnvMaxBodies, config.Limits.MaxBodies)
	config.Input.ThrowEnabled = getEnvAsBoolOrDefault(EnvThrow, config.Input.ThrowEnabled)

	return config.Validate()
}

// LoadConfigFromEnv returns DefaultConfig with environment overrides applied.
func LoadConfigFromEnv() (*Config, error) {
	config := DefaultConfig()
	if err := ApplyEnvironmentOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigWithOverrides loads path, or DefaultConfig when path is empty or
// does not exist, and applies the environment overrides.
func LoadConfigWithOverrides(path string) (*Config, error) {
	config := DefaultConfig()
	if path != "" {
		loaded, err := LoadConfig(path)
		switch {
		case err == nil:
			config = loaded
		case !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}
	if err := ApplyEnvironmentOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
