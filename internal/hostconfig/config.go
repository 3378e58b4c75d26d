// Package hostconfig holds the JSON-backed configuration for the cmd/nesgo
// host: window scale, video backend selection, input key mapping, and a
// handful of emulation switches. None of it reaches the console/CPU/PPU —
// the host reads it once at startup and translates it into constructor
// arguments and poll_inputs calls.
package hostconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root of the host's persisted settings tree.
type Config struct {
	Window    WindowConfig    `json:"window"`
	Video     VideoConfig     `json:"video"`
	Input     InputConfig     `json:"input"`
	Emulation EmulationConfig `json:"emulation"`

	path string
}

// WindowConfig controls the ebiten window the host creates.
type WindowConfig struct {
	Scale      int  `json:"scale"` // NES resolution (256x240) multiplier
	Fullscreen bool `json:"fullscreen"`
}

// VideoConfig selects how frames are presented.
type VideoConfig struct {
	VSync   bool   `json:"vsync"`
	Backend string `json:"backend"` // "ebiten" or "headless"
}

// InputConfig maps host keyboard keys onto each controller's buttons.
type InputConfig struct {
	Player1 KeyMapping `json:"player1_keys"`
	Player2 KeyMapping `json:"player2_keys"`
}

// KeyMapping names one ebiten key per NES button, stored by name (e.g.
// "ArrowUp", "KeyJ") so the JSON file stays readable; the host resolves each
// name to a key through its own name table.
type KeyMapping struct {
	Up     string `json:"up"`
	Down   string `json:"down"`
	Left   string `json:"left"`
	Right  string `json:"right"`
	A      string `json:"a"`
	B      string `json:"b"`
	Start  string `json:"start"`
	Select string `json:"select"`
}

// EmulationConfig holds the emulation-level switches the host exposes.
type EmulationConfig struct {
	StartPaused bool `json:"start_paused"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Scale: 2, Fullscreen: false},
		Video:  VideoConfig{VSync: true, Backend: "ebiten"},
		Input: InputConfig{
			Player1: KeyMapping{
				Up: "ArrowUp", Down: "ArrowDown", Left: "ArrowLeft", Right: "ArrowRight",
				A: "KeyJ", B: "KeyK", Start: "Enter", Select: "ShiftLeft",
			},
			Player2: KeyMapping{
				Up: "KeyW", Down: "KeyS", Left: "KeyA", Right: "KeyD",
				A: "KeyN", B: "KeyM", Start: "KeyO", Select: "KeyP",
			},
		},
		Emulation: EmulationConfig{StartPaused: false},
	}
}

// Load reads the config at path, writing and returning the default
// configuration if no file exists there yet.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.path = path
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("hostconfig: writing default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hostconfig: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("hostconfig: parsing %s: %w", path, err)
	}
	cfg.path = path
	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration back to the path Load was given. A Config
// returned by Default has no path, and Save returns an error for it.
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("hostconfig: no path set")
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("hostconfig: creating %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("hostconfig: encoding config: %w", err)
	}
	return os.WriteFile(c.path, data, 0o644)
}

// WindowResolution returns the host window's pixel dimensions.
func (c *Config) WindowResolution() (width, height int) {
	scale := c.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	return 256 * scale, 240 * scale
}

func (c *Config) normalize() {
	if c.Window.Scale <= 0 {
		c.Window.Scale = 1
	}
	if c.Video.Backend != "headless" {
		c.Video.Backend = "ebiten"
	}
}

// DefaultPath returns the conventional on-disk location for the config file.
func DefaultPath() string {
	return filepath.Join("config", "nesgo.json")
}
