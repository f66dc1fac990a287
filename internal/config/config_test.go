package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.MaxPixelRatio != 2 {
		t.Errorf("expected max pixel ratio 2, got %f", cfg.Graphics.MaxPixelRatio)
	}

	// Scene defaults
	if cfg.Scene.ObjectDistance != 4 {
		t.Errorf("expected object distance 4, got %f", cfg.Scene.ObjectDistance)
	}
	if cfg.Scene.MaterialColor != "#ffeded" {
		t.Errorf("expected material color #ffeded, got %s", cfg.Scene.MaterialColor)
	}
	if cfg.Scene.Particles.Count != 200 {
		t.Errorf("expected 200 particles, got %d", cfg.Scene.Particles.Count)
	}
	if len(cfg.Scene.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(cfg.Scene.Sections))
	}
	wantShapes := []string{"torus", "cone", "torusknot"}
	wantX := []float32{2, -2, 2}
	for i, s := range cfg.Scene.Sections {
		if s.Shape != wantShapes[i] {
			t.Errorf("section %d: expected shape %s, got %s", i, wantShapes[i], s.Shape)
		}
		if s.OffsetX != wantX[i] {
			t.Errorf("section %d: expected offset %f, got %f", i, wantX[i], s.OffsetX)
		}
	}
	if cfg.Scene.Camera.FOV != 35 || cfg.Scene.Camera.Distance != 6 {
		t.Errorf("unexpected camera defaults: %+v", cfg.Scene.Camera)
	}

	// Animation defaults
	if cfg.Animation.Damping != 5 {
		t.Errorf("expected damping 5, got %f", cfg.Animation.Damping)
	}
	if cfg.Animation.ParallaxStrength != 0.5 {
		t.Errorf("expected parallax 0.5, got %f", cfg.Animation.ParallaxStrength)
	}
	if cfg.Animation.RotationSpeed != 0.1 {
		t.Errorf("expected rotation speed 0.1, got %f", cfg.Animation.RotationSpeed)
	}
	if cfg.Animation.Tween.Duration != 1500*time.Millisecond {
		t.Errorf("expected tween 1.5s, got %v", cfg.Animation.Tween.Duration)
	}
	if cfg.Animation.Tween.Delta != [3]float32{6, 3, 1.5} {
		t.Errorf("expected tween delta (6, 3, 1.5), got %v", cfg.Animation.Tween.Delta)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  max_pixel_ratio: 1.5

scene:
  object_distance: 5
  material_color: "#88ccff"
  particles:
    count: 500
  sections:
    - shape: cone
      offset_x: -1
      textures:
        color: textures/door/color.jpg
        normal: textures/door/normal.jpg
    - shape: torus
      offset_x: 1
      model: models/duck.glb

animation:
  damping: 3
  tween:
    duration: 2s
    ease: sine.inOut
    delta: [1, 2, 3]

links:
  url: "https://example.com"

logging:
  level: "debug"
  log_file: "scene.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.MaxPixelRatio != 1.5 {
		t.Errorf("expected max pixel ratio 1.5, got %f", cfg.Graphics.MaxPixelRatio)
	}

	if cfg.Scene.ObjectDistance != 5 {
		t.Errorf("expected object distance 5, got %f", cfg.Scene.ObjectDistance)
	}
	if cfg.Scene.Particles.Count != 500 {
		t.Errorf("expected 500 particles, got %d", cfg.Scene.Particles.Count)
	}
	// Unspecified nested fields keep their defaults
	if cfg.Scene.Particles.Size != 0.03 {
		t.Errorf("expected default particle size, got %f", cfg.Scene.Particles.Size)
	}
	if len(cfg.Scene.Sections) != 2 {
		t.Fatalf("expected sections to be replaced by 2 entries, got %d", len(cfg.Scene.Sections))
	}
	if cfg.Scene.Sections[0].Textures.Normal != "textures/door/normal.jpg" {
		t.Errorf("unexpected normal map: %q", cfg.Scene.Sections[0].Textures.Normal)
	}
	if cfg.Scene.Sections[1].Model != "models/duck.glb" {
		t.Errorf("unexpected model: %q", cfg.Scene.Sections[1].Model)
	}

	if cfg.Animation.Damping != 3 {
		t.Errorf("expected damping 3, got %f", cfg.Animation.Damping)
	}
	if cfg.Animation.Tween.Duration != 2*time.Second {
		t.Errorf("expected tween 2s, got %v", cfg.Animation.Tween.Duration)
	}
	if cfg.Animation.Tween.Delta != [3]float32{1, 2, 3} {
		t.Errorf("unexpected tween delta %v", cfg.Animation.Tween.Delta)
	}

	if cfg.Links.URL != "https://example.com" {
		t.Errorf("expected link override, got %s", cfg.Links.URL)
	}
	if cfg.Logging.LogFile != "scene.log" {
		t.Errorf("expected log file 'scene.log', got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate, got %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"pixel ratio below one", func(c *Config) { c.Graphics.MaxPixelRatio = 0.5 }},
		{"bad background", func(c *Config) { c.Graphics.Background = "black" }},
		{"bad material color", func(c *Config) { c.Scene.MaterialColor = "#12345" }},
		{"bad light color", func(c *Config) { c.Scene.Light.Color = "" }},
		{"negative distance", func(c *Config) { c.Scene.ObjectDistance = -4 }},
		{"negative particles", func(c *Config) { c.Scene.Particles.Count = -1 }},
		{"no sections", func(c *Config) { c.Scene.Sections = nil }},
		{"unknown shape", func(c *Config) { c.Scene.Sections[1].Shape = "teapot" }},
		{"fov out of range", func(c *Config) { c.Scene.Camera.FOV = 180 }},
		{"far before near", func(c *Config) { c.Scene.Camera.Far = 0.05 }},
		{"negative damping", func(c *Config) { c.Animation.Damping = -1 }},
		{"negative tween", func(c *Config) { c.Animation.Tween.Duration = -time.Second }},
		{"unknown ease", func(c *Config) { c.Animation.Tween.Ease = "bounce.wobble" }},
		{"zero wheel step", func(c *Config) { c.Scroll.WheelStep = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Point the user config dir somewhere empty so only ./config.yaml counts
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.MaterialColor = "#00ff00"
	cfg.Animation.Tween.Duration = 750 * time.Millisecond
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Scene.MaterialColor != "#00ff00" {
		t.Errorf("expected saved tint, got %s", loaded.Scene.MaterialColor)
	}
	if loaded.Animation.Tween.Duration != 750*time.Millisecond {
		t.Errorf("expected saved duration, got %v", loaded.Animation.Tween.Duration)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.PanelOpen {
					t.Error("expected debug panel to open with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "seed, particles and url flags",
			setup: func() {
				*flagSeed = 42
				*flagParticles = 0
				*flagURL = "https://example.org"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Seed != 42 {
					t.Errorf("expected seed 42, got %d", cfg.Scene.Seed)
				}
				if cfg.Scene.Particles.Count != 0 {
					t.Errorf("expected 0 particles, got %d", cfg.Scene.Particles.Count)
				}
				if cfg.Links.URL != "https://example.org" {
					t.Errorf("expected url override, got %s", cfg.Links.URL)
				}
			},
			teardown: func() {
				*flagSeed = 0
				*flagParticles = -1
				*flagURL = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Flag beats file, file beats default
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("animation:\n  damping: -2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject negative damping")
	}
}

func TestLoadRecordsPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("scroll:\n  wheel_step: 50\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
	if Default().Path() != "" {
		t.Error("defaults should have no path")
	}
}

func TestEditKeepsOtherSettings(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	// Missing file: starts from defaults
	if err := Edit(configPath, func(c *Config) { c.Scroll.WheelStep = 50 }); err != nil {
		t.Fatalf("Edit on missing file: %v", err)
	}
	if err := Edit(configPath, func(c *Config) { c.Scene.MaterialColor = "#336699" }); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.Scene.MaterialColor != "#336699" {
		t.Errorf("material color = %q", cfg.Scene.MaterialColor)
	}
	if cfg.Scroll.WheelStep != 50 {
		t.Errorf("wheel step = %v, earlier edit was lost", cfg.Scroll.WheelStep)
	}
}

func TestEditRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := Edit(configPath, func(c *Config) { c.Scene.MaterialColor = "nope" })
	if err == nil {
		t.Fatal("expected validation error")
	}
	if _, statErr := os.Stat(configPath); !os.IsNotExist(statErr) {
		t.Error("invalid edit should not write the file")
	}
}
