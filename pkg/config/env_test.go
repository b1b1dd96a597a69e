package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvWorldWidth, "1920")
	t.Setenv(EnvWorldHeight, "1080")
	t.Setenv(EnvGravityCoef, "0")
	t.Setenv(EnvFrictionCoef, "2.5")
	t.Setenv(EnvBroadPhase, "SpatialHash")
	t.Setenv(EnvMaxBodies, "250")
	t.Setenv(EnvThrow, "true")

	config := DefaultConfig()
	if err := ApplyEnvironmentOverrides(config); err != nil {
		t.Fatalf("ApplyEnvironmentOverrides failed: %v", err)
	}

	if config.World.Width != 1920 || config.World.Height != 1080 {
		t.Errorf("world = %+v", config.World)
	}
	if config.Physics.GravityCoefficient != 0 {
		t.Errorf("GravityCoefficient = %v, expected 0", config.Physics.GravityCoefficient)
	}
	if config.Physics.FrictionCoefficient != 2.5 {
		t.Errorf("FrictionCoefficient = %v, expected 2.5", config.Physics.FrictionCoefficient)
	}
	if config.BroadPhase.Kind != BroadPhaseSpatialHash {
		t.Errorf("Kind = %q, expected spatialhash", config.BroadPhase.Kind)
	}
	if config.Limits.MaxBodies != 250 {
		t.Errorf("MaxBodies = %d, expected 250", config.Limits.MaxBodies)
	}
	if !config.Input.ThrowEnabled {
		t.Error("expected ThrowEnabled")
	}
}

func TestApplyEnvironmentOverrides_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{"negative_width", EnvWorldWidth, "-5", "World.Width"},
		{"infinite_width", EnvWorldWidth, "Inf", "World.Width"},
		{"infinite_gravity_coef", EnvGravityCoef, "+Inf", "Physics.GravityCoefficient"},
		{"nan_friction_coef", EnvFrictionCoef, "NaN", "Physics.FrictionCoefficient"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			err := ApplyEnvironmentOverrides(DefaultConfig())
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) || validationErr.Field != tt.field {
				t.Errorf("expected %s validation error, got %v", tt.field, err)
			}
		})
	}
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{EnvWorldWidth, EnvWorldHeight, EnvGravityCoef, EnvFrictionCoef, EnvBroadPhase, EnvMaxBodies, EnvThrow} {
		t.Setenv(key, "")
	}

	config, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv failed: %v", err)
	}
	defaults := DefaultConfig()
	if config.World != defaults.World || config.Physics != defaults.Physics || config.BroadPhase != defaults.BroadPhase {
		t.Error("empty environment should leave defaults untouched")
	}
}

func TestGetEnvHelperFunctions(t *testing.T) {
	t.Setenv("ANTIGRAVITY_TEST_STRING", "value")
	if got := getEnvOrDefault("ANTIGRAVITY_TEST_STRING", "default"); got != "value" {
		t.Errorf("getEnvOrDefault = %q", got)
	}
	if got := getEnvOrDefault("ANTIGRAVITY_TEST_MISSING", "default"); got != "default" {
		t.Errorf("getEnvOrDefault missing = %q", got)
	}

	t.Setenv("ANTIGRAVITY_TEST_INT", "42")
	if got := getEnvAsIntOrDefault("ANTIGRAVITY_TEST_INT", 10); got != 42 {
		t.Errorf("getEnvAsIntOrDefault = %d", got)
	}
	t.Setenv("ANTIGRAVITY_TEST_INT", "forty")
	if got := getEnvAsIntOrDefault("ANTIGRAVITY_TEST_INT", 10); got != 10 {
		t.Errorf("getEnvAsIntOrDefault invalid = %d", got)
	}

	t.Setenv("ANTIGRAVITY_TEST_FLOAT", "3.25")
	if got := getEnvAsFloatOrDefault("ANTIGRAVITY_TEST_FLOAT", 1); got != 3.25 {
		t.Errorf("getEnvAsFloatOrDefault = %v", got)
	}
	t.Setenv("ANTIGRAVITY_TEST_FLOAT", "pi")
	if got := getEnvAsFloatOrDefault("ANTIGRAVITY_TEST_FLOAT", 1); got != 1 {
		t.Errorf("getEnvAsFloatOrDefault invalid = %v", got)
	}

	t.Setenv("ANTIGRAVITY_TEST_BOOL", "1")
	if got := getEnvAsBoolOrDefault("ANTIGRAVITY_TEST_BOOL", false); !got {
		t.Error("getEnvAsBoolOrDefault = false")
	}
	t.Setenv("ANTIGRAVITY_TEST_BOOL", "maybe")
	if got := getEnvAsBoolOrDefault("ANTIGRAVITY_TEST_BOOL", false); got {
		t.Error("getEnvAsBoolOrDefault invalid = true")
	}
}

func TestLoadConfigWithOverrides(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file uses defaults", func(t *testing.T) {
		t.Setenv(EnvGravityCoef, "0.5")
		cfg, err := LoadConfigWithOverrides(filepath.Join(dir, "absent.json"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.Elements) != len(DefaultConfig().Elements) {
			t.Errorf("expected default elements, got %d", len(cfg.Elements))
		}
		if cfg.Physics.GravityCoefficient != 0.5 {
			t.Errorf("override not applied: %g", cfg.Physics.GravityCoefficient)
		}
	})

	t.Run("file is loaded", func(t *testing.T) {
		path := filepath.Join(dir, "world.json")
		if err := os.WriteFile(path, []byte(`{"world":{"width":300,"height":200}}`), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadConfigWithOverrides(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.World.Width != 300 || cfg.World.Height != 200 {
			t.Errorf("world %+v, want 300x200", cfg.World)
		}
	})

	t.Run("broken file fails", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte(`{`), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigWithOverrides(path); err == nil {
			t.Error("expected parse error")
		}
	})
}
