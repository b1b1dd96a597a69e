// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opd-ai/go-antigravity/pkg/physics"
)

// Broad-phase strategy names accepted in BroadPhaseConfig.Kind.
const (
	BroadPhaseBruteForce  = "bruteforce"
	BroadPhaseQuadTree    = "quadtree"
	BroadPhaseSpatialHash = "spatialhash"
)

// Config contains everything needed to build and drive an engine
type Config struct {
	World      WorldConfig      `json:"world"`
	Physics    PhysicsConfig    `json:"physics"`
	BroadPhase BroadPhaseConfig `json:"broadPhase"`
	Input      InputConfig      `json:"input"`
	Limits     LimitsConfig     `json:"limits"`
	Elements   []ElementConfig  `json:"elements"`
}

// WorldConfig is the initial size of the simulated area, in pixels
type WorldConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PhysicsConfig contains the engine tunables. All values assume a normalized
// step of 1.0 per frame.
type PhysicsConfig struct {
	Gravity             physics.Vector2D `json:"gravity"`
	GravityEnabled      bool             `json:"gravityEnabled"`
	GravityCoefficient  float64          `json:"gravityCoefficient"`
	FrictionCoefficient float64          `json:"frictionCoefficient"`
	Damping             float64          `json:"damping"`
	MaxSpeed            float64          `json:"maxSpeed"`
	DefaultBounce       float64          `json:"defaultBounce"`
	WallBounce          float64          `json:"wallBounce"`
	RepulsionRadius     float64          `json:"repulsionRadius"`
	RepulsionForce      float64          `json:"repulsionForce"`
	ScrollScale         float64          `json:"scrollScale"`
	ScrollDecay         float64          `json:"scrollDecay"`
	ScrollSnap          float64          `json:"scrollSnap"`
	Slop                float64          `json:"slop"`
	CorrectionPercent   float64          `json:"correctionPercent"`
}

// BroadPhaseConfig selects the pair-finding strategy
type BroadPhaseConfig struct {
	Kind         string  `json:"kind"`
	CellSize     float64 `json:"cellSize"`
	QuadCapacity int     `json:"quadCapacity"`
}

// InputConfig tunes the pointer, scroll and drag adapters
type InputConfig struct {
	PointerStrength   float64 `json:"pointerStrength"`
	ScrollSensitivity float64 `json:"scrollSensitivity"`
	// ThrowEnabled gives released bodies the pointer's last velocity.
	// Off by default: a released body starts at rest.
	ThrowEnabled bool    `json:"throwEnabled"`
	ThrowScale   float64 `json:"throwScale"`
}

// LimitsConfig caps the work done per tick
type LimitsConfig struct {
	MaxBodies int `json:"maxBodies"`
}

// ElementConfig declares a body registered at startup
type ElementConfig struct {
	Label  string   `json:"label"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Mass   float64  `json:"mass"`
	Static bool     `json:"static"`
	Bounce *float64 `json:"bounce,omitempty"`
}

// LoadConfig loads a configuration from a file. Fields missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	defaultElements := config.Elements
	config.Elements = nil
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Elements == nil {
		config.Elements = defaultElements
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *Config, path string) error {
	if config == nil {
		return fmt.Errorf("cannot save nil config")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the tuning of the reference playground: elements
// drift upward, the pointer pushes them away and scrolling nudges them.
func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			Width:  1280,
			Height: 720,
		},
		Physics: PhysicsConfig{
			Gravity:             physics.Vector2D{X: 0, Y: -0.05},
			GravityEnabled:      true,
			GravityCoefficient:  1,
			FrictionCoefficient: 1,
			Damping:             0.98,
			MaxSpeed:            15,
			DefaultBounce:       physics.DefaultBounce,
			WallBounce:          0.5,
			RepulsionRadius:     150,
			RepulsionForce:      1.5,
			ScrollScale:         0.05,
			ScrollDecay:         0.8,
			ScrollSnap:          0.01,
			Slop:                0.01,
			CorrectionPercent:   0.8,
		},
		BroadPhase: BroadPhaseConfig{
			Kind:         BroadPhaseBruteForce,
			QuadCapacity: 4,
		},
		Input: InputConfig{
			PointerStrength:   1,
			ScrollSensitivity: 0.1,
			ThrowScale:        1,
		},
		Limits: LimitsConfig{
			MaxBodies: 100,
		},
		Elements: []ElementConfig{
			{Label: "title", X: 440, Y: 120, Width: 400, Height: 80, Mass: 4},
			{Label: "search", X: 390, Y: 260, Width: 500, Height: 48, Mass: 2},
			{Label: "button-lucky", X: 520, Y: 360, Width: 110, Height: 36, Mass: 1},
			{Label: "button-search", X: 650, Y: 360, Width: 110, Height: 36, Mass: 1},
			{Label: "footer", X: 0, Y: 680, Width: 1280, Height: 40, Static: true},
		},
	}
}
