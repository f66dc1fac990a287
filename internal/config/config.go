// Package config handles scene configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/Faultbox/scrollscene/internal/anim"
	"github.com/Faultbox/scrollscene/pkg/rgb"
)

// Config holds all application settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Scene     SceneConfig     `yaml:"scene"`
	Animation AnimationConfig `yaml:"animation"`
	Scroll    ScrollConfig    `yaml:"scroll"`
	Links     LinksConfig     `yaml:"links"`
	Debug     DebugConfig     `yaml:"debug"`
	Logging   LoggingConfig   `yaml:"logging"`

	path string
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Title         string  `yaml:"title"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	MaxPixelRatio float32 `yaml:"max_pixel_ratio"` // caps fragment cost on HiDPI displays
	Background    string  `yaml:"background"`      // hex clear color
}

// SceneConfig describes the fixed scene graph.
type SceneConfig struct {
	ObjectDistance float32         `yaml:"object_distance"` // vertical gap between section meshes
	MaterialColor  string          `yaml:"material_color"`
	GradientMap    string          `yaml:"gradient_map"`
	AssetRoots     []string        `yaml:"asset_roots"`
	Seed           int64           `yaml:"seed"` // 0 = random per run
	Particles      ParticleConfig  `yaml:"particles"`
	Light          LightConfig     `yaml:"light"`
	Camera         CameraConfig    `yaml:"camera"`
	Sections       []SectionConfig `yaml:"sections"`
}

// ParticleConfig describes the static point cloud.
type ParticleConfig struct {
	Count  int     `yaml:"count"`
	Spread float32 `yaml:"spread"` // width of the x/z distribution
	Size   float32 `yaml:"size"`
}

// LightConfig describes the directional light.
type LightConfig struct {
	Color     string     `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Position  [3]float32 `yaml:"position"`
}

// CameraConfig holds the perspective camera intrinsics.
type CameraConfig struct {
	FOV      float32 `yaml:"fov"` // vertical, degrees
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"` // camera z inside the rig
}

// SectionConfig describes one scroll section and its mesh.
type SectionConfig struct {
	Shape    string     `yaml:"shape"` // torus, cone, torusknot
	OffsetX  float32    `yaml:"offset_x"`
	Model    string     `yaml:"model,omitempty"` // optional glTF override
	Textures TextureSet `yaml:"textures,omitempty"`
}

// TextureSet holds per-channel texture paths for a mesh.
type TextureSet struct {
	Color            string `yaml:"color,omitempty"`
	AmbientOcclusion string `yaml:"ambient_occlusion,omitempty"`
	Height           string `yaml:"height,omitempty"`
	Normal           string `yaml:"normal,omitempty"`
	Roughness        string `yaml:"roughness,omitempty"`
}

// AnimationConfig holds per-frame animation constants.
type AnimationConfig struct {
	ParallaxStrength float32     `yaml:"parallax_strength"`
	Damping          float32     `yaml:"damping"`
	RotationSpeed    float32     `yaml:"rotation_speed"` // rad/s on x and y
	Tween            TweenConfig `yaml:"tween"`
}

// TweenConfig describes the section-change spin.
type TweenConfig struct {
	Duration time.Duration `yaml:"duration"`
	Ease     string        `yaml:"ease"`
	Delta    [3]float32    `yaml:"delta"` // added to rotation x, y, z
}

// ScrollConfig holds virtual page scrolling settings.
type ScrollConfig struct {
	WheelStep float32 `yaml:"wheel_step"` // pixels per wheel notch
	KeyStep   float32 `yaml:"key_step"`   // pixels per arrow key press
}

// LinksConfig holds the external link opened by the UI button.
type LinksConfig struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// DebugConfig holds debug panel settings.
type DebugConfig struct {
	PanelOpen     bool   `yaml:"panel_open"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the scene's reference values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:         "Scroll Scene",
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			MaxPixelRatio: 2,
			Background:    "#1e1a20",
		},
		Scene: SceneConfig{
			ObjectDistance: 4,
			MaterialColor:  "#ffeded",
			GradientMap:    "textures/gradients/3.jpg",
			AssetRoots:     []string{"static", "."},
			Particles: ParticleConfig{
				Count:  200,
				Spread: 10,
				Size:   0.03,
			},
			Light: LightConfig{
				Color:     "#ffffff",
				Intensity: 3,
				Position:  [3]float32{1, 1, 0},
			},
			Camera: CameraConfig{
				FOV:      35,
				Near:     0.1,
				Far:      100,
				Distance: 6,
			},
			Sections: []SectionConfig{
				{Shape: "torus", OffsetX: 2},
				{Shape: "cone", OffsetX: -2},
				{Shape: "torusknot", OffsetX: 2},
			},
		},
		Animation: AnimationConfig{
			ParallaxStrength: 0.5,
			Damping:          5,
			RotationSpeed:    0.1,
			Tween: TweenConfig{
				Duration: 1500 * time.Millisecond,
				Ease:     "power2.inOut",
				Delta:    [3]float32{6, 3, 1.5},
			},
		},
		Scroll: ScrollConfig{
			WheelStep: 100,
			KeyStep:   40,
		},
		Links: LinksConfig{
			Label: "Visit portfolio",
			URL:   "https://github.com/Faultbox",
		},
		Debug: DebugConfig{
			PanelOpen:     false,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// knownShapes lists the built-in section geometries.
var knownShapes = map[string]bool{
	"torus":     true,
	"cone":      true,
	"torusknot": true,
}

// Validate checks the config for values the scene cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.MaxPixelRatio < 1 {
		errs = append(errs, fmt.Errorf("graphics: max_pixel_ratio must be >= 1, got %g", c.Graphics.MaxPixelRatio))
	}
	if _, err := rgb.ParseHex(c.Graphics.Background); err != nil {
		errs = append(errs, fmt.Errorf("graphics.background: %w", err))
	}

	if c.Scene.ObjectDistance <= 0 {
		errs = append(errs, fmt.Errorf("scene: object_distance must be positive, got %g", c.Scene.ObjectDistance))
	}
	if _, err := rgb.ParseHex(c.Scene.MaterialColor); err != nil {
		errs = append(errs, fmt.Errorf("scene.material_color: %w", err))
	}
	if _, err := rgb.ParseHex(c.Scene.Light.Color); err != nil {
		errs = append(errs, fmt.Errorf("scene.light.color: %w", err))
	}
	if c.Scene.Particles.Count < 0 {
		errs = append(errs, fmt.Errorf("scene.particles: count must not be negative, got %d", c.Scene.Particles.Count))
	}
	if len(c.Scene.Sections) == 0 {
		errs = append(errs, errors.New("scene: at least one section is required"))
	}
	for i, s := range c.Scene.Sections {
		if !knownShapes[s.Shape] {
			errs = append(errs, fmt.Errorf("scene.sections[%d]: unknown shape %q", i, s.Shape))
		}
	}
	cam := c.Scene.Camera
	if cam.FOV <= 0 || cam.FOV >= 180 {
		errs = append(errs, fmt.Errorf("scene.camera: fov must be in (0, 180), got %g", cam.FOV))
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		errs = append(errs, fmt.Errorf("scene.camera: need 0 < near < far, got near=%g far=%g", cam.Near, cam.Far))
	}

	if c.Animation.Damping < 0 {
		errs = append(errs, fmt.Errorf("animation: damping must not be negative, got %g", c.Animation.Damping))
	}
	if c.Animation.Tween.Duration < 0 {
		errs = append(errs, fmt.Errorf("animation.tween: duration must not be negative, got %s", c.Animation.Tween.Duration))
	}
	if _, ok := anim.EaseByName(c.Animation.Tween.Ease); !ok {
		errs = append(errs, fmt.Errorf("animation.tween: unsupported ease %q", c.Animation.Tween.Ease))
	}

	if c.Scroll.WheelStep <= 0 || c.Scroll.KeyStep <= 0 {
		errs = append(errs, errors.New("scroll: wheel_step and key_step must be positive"))
	}

	return errors.Join(errs...)
}
