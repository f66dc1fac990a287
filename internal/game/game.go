// Package game implements the scene's main loop and owns every subsystem:
// window, renderer, UI overlay, input and the per-frame stage logic.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/scrollscene/internal/anim"
	"github.com/Faultbox/scrollscene/internal/assets"
	"github.com/Faultbox/scrollscene/internal/config"
	"github.com/Faultbox/scrollscene/internal/engine/debug"
	"github.com/Faultbox/scrollscene/internal/engine/input"
	"github.com/Faultbox/scrollscene/internal/engine/input/sdlinput"
	"github.com/Faultbox/scrollscene/internal/engine/renderer"
	"github.com/Faultbox/scrollscene/internal/engine/texture"
	"github.com/Faultbox/scrollscene/internal/engine/ui2d"
	"github.com/Faultbox/scrollscene/internal/engine/ui2d/glui"
	"github.com/Faultbox/scrollscene/internal/engine/window"
	"github.com/Faultbox/scrollscene/internal/game/stage"
	"github.com/Faultbox/scrollscene/internal/game/ui"
	"github.com/Faultbox/scrollscene/internal/logger"
	"github.com/Faultbox/scrollscene/internal/scene"
	"github.com/Faultbox/scrollscene/pkg/rgb"
)

const textureWorkers = 4

// Game is the scene handle. Build it with New, run it with Start and
// release it with Dispose.
type Game struct {
	cfg *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	overlay  *glui.Renderer
	ui       *ui2d.Context
	input    *input.Input
	assets   *assets.Manager
	loader   *texture.Loader

	world      *scene.World
	timeline   *anim.Timeline
	frame      *stage.FrameContext
	controller *stage.Controller
	updater    *stage.Updater
	clock      stage.Clock

	panel      ui.DebugPanel
	screenshot *debug.ScreenshotCapture

	running  atomic.Bool
	dispose  sync.Once
	disposed error

	log      *zap.Logger
	frameLog *zap.Logger
}

// New creates the window and every subsystem. On error everything already
// created is released.
func New(cfg *config.Config) (g *Game, err error) {
	g = &Game{
		cfg:      cfg,
		input:    input.New(),
		assets:   assets.NewManager(),
		timeline: anim.NewTimeline(),
		clock:    stage.NewSystemClock(),
		log:      logger.Named("game"),
		frameLog: logger.Sampled("game", time.Second, 3, 100),
	}
	g.log.Info("initializing",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("config", cfg.Path()),
	)

	defer func() {
		if err != nil {
			if derr := g.Dispose(); derr != nil {
				g.log.Warn("cleanup after failed start", zap.Error(derr))
			}
			g = nil
		}
	}()

	if err := g.buildWorld(); err != nil {
		return g, err
	}

	// Window creates the GL context, so it comes before any GL resource
	g.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return g, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.GetSize()
	dw, dh := g.window.DrawableSize()
	g.frame = stage.NewFrameContext(width, height, dw, cfg.Graphics.MaxPixelRatio)
	g.world.Rig.Camera.SetAspect(g.frame.Viewport.Aspect())

	background, err := rgb.ParseHex(cfg.Graphics.Background)
	if err != nil {
		return g, fmt.Errorf("background color: %w", err)
	}

	g.loader = texture.NewLoader(g.assets, textureWorkers)
	g.renderer, err = renderer.New(renderer.Config{
		Surface:    g.surface(dw, dh),
		Background: background,
	}, g.loader)
	if err != nil {
		return g, fmt.Errorf("failed to create renderer: %w", err)
	}
	g.renderer.Preload(g.world)

	g.ui = ui2d.NewContext(width, height)
	g.overlay, err = glui.New(g.ui.DrawList().Font)
	if err != nil {
		return g, fmt.Errorf("failed to create ui renderer: %w", err)
	}

	if err := g.buildStage(); err != nil {
		return g, err
	}

	g.panel.Open = cfg.Debug.PanelOpen
	g.screenshot = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "scene")

	g.log.Info("initialized",
		zap.Int("sections", g.world.SectionCount()),
		zap.Int("particles", g.world.Particles.Count()),
		zap.Float32("pixel_ratio", g.frame.Viewport.PixelRatio),
	)
	return g, nil
}

// buildWorld registers asset roots and builds the scene graph.
func (g *Game) buildWorld() error {
	for _, root := range g.cfg.Scene.AssetRoots {
		g.assets.AddDir(root)
	}

	seed := g.cfg.Scene.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.log.Debug("particle seed", zap.Int64("seed", seed))

	world, err := scene.Build(g.cfg.Scene, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("failed to build scene: %w", err)
	}
	g.world = world
	return nil
}

// buildStage wires the section trigger, input controller and updater.
func (g *Game) buildStage() error {
	tween := g.cfg.Animation.Tween
	ease, ok := anim.EaseByName(tween.Ease)
	if !ok {
		return fmt.Errorf("unsupported ease %q", tween.Ease)
	}

	trigger := stage.NewSectionTrigger(g.world.Meshes, g.timeline, stage.SpinConfig{
		Delta:    mgl32.Vec3(tween.Delta),
		Duration: tween.Duration.Seconds(),
		Ease:     ease,
	})

	g.controller = &stage.Controller{
		Context: g.frame,
		Page: stage.Page{
			Sections:  g.world.SectionCount(),
			WheelStep: g.cfg.Scroll.WheelStep,
			KeyStep:   g.cfg.Scroll.KeyStep,
		},
		Trigger:       trigger,
		MaxPixelRatio: g.cfg.Graphics.MaxPixelRatio,
		DrawableWidth: func() int {
			dw, _ := g.window.DrawableSize()
			return dw
		},
	}

	g.updater = stage.NewUpdater(g.world, g.timeline, stage.Motion{
		ParallaxStrength: g.cfg.Animation.ParallaxStrength,
		Damping:          g.cfg.Animation.Damping,
		RotationSpeed:    g.cfg.Animation.RotationSpeed,
	})
	return nil
}

// Start runs the loop until Stop is called or the window is closed.
// It must be called from the main thread.
func (g *Game) Start() error {
	if !g.running.CompareAndSwap(false, true) {
		return errors.New("game already running")
	}
	g.log.Info("starting main loop")

	// Frame time starts here so setup does not count as the first delta
	g.clock.Reset()
	last := g.clock.Elapsed()
	for g.running.Load() {
		if sdlinput.Poll(g.input) {
			g.running.Store(false)
			break
		}
		events := g.input.Events()
		for _, ev := range events {
			g.ui.Input().Feed(ev)
		}

		act := g.controller.HandleAll(events)
		if act.Quit {
			g.running.Store(false)
			break
		}
		if act.Resized {
			g.resize()
		}
		if act.TogglePanel {
			g.panel.Toggle()
			g.log.Debug("debug panel toggled", zap.Bool("open", g.panel.Open))
		}

		now := g.clock.Elapsed()
		g.panel.Stats.Update((now - last) * 1000)
		last = now

		if !g.frameSafely(now) {
			continue
		}
		g.drawOverlay()

		if act.Screenshot {
			g.saveScreenshot()
		}
		g.window.SwapBuffers()
	}

	g.log.Info("main loop stopped")
	return nil
}

// frameSafely runs one update and render. A panic or error is logged and
// the frame is skipped; the loop keeps going.
func (g *Game) frameSafely(elapsed float64) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			g.frameLog.Error("frame panicked", zap.Any("panic", r), zap.Stack("stack"))
			ok = false
		}
	}()

	if _, err := g.updater.Frame(g.frame, elapsed, g.renderer); err != nil {
		g.frameLog.Error("frame failed", zap.Error(err))
		return false
	}
	return true
}

// resize propagates a window size change to the camera, renderer and UI.
func (g *Game) resize() {
	vp := g.frame.Viewport
	dw, dh := g.window.DrawableSize()

	g.world.Rig.Camera.SetAspect(vp.Aspect())
	g.renderer.Resize(g.surface(dw, dh))
	g.ui.Resize(vp.Width, vp.Height)

	g.log.Debug("resized",
		zap.Int("width", vp.Width),
		zap.Int("height", vp.Height),
		zap.Float32("pixel_ratio", vp.PixelRatio),
	)
}

// surface sizes the render target from the capped pixel ratio, so a
// display denser than max_pixel_ratio is shaded at the cap and scaled up.
func (g *Game) surface(drawableW, drawableH int) renderer.Surface {
	w, h := g.frame.Viewport.Surface()
	return renderer.Surface{
		Width:        w,
		Height:       h,
		PixelRatio:   g.frame.Viewport.PixelRatio,
		OutputWidth:  drawableW,
		OutputHeight: drawableH,
	}
}

// drawOverlay lays out and draws the debug panel and link button.
func (g *Game) drawOverlay() {
	g.ui.Begin()

	loaded, failed := g.renderer.TextureStats()
	res := g.panel.Draw(g.ui, g.world.Tint(), ui.SceneInfo{
		Section:        g.controller.Trigger.Current(),
		Sections:       g.world.SectionCount(),
		Scroll:         g.frame.Scroll,
		Tweens:         g.timeline.Len(),
		TexturesLoaded: loaded,
		TexturesFailed: failed,
	})
	if res.TintChanged {
		g.world.SetTint(res.Tint)
	}
	if res.Save {
		g.saveTint()
	}

	if ui.LinkButton(g.ui, g.cfg.Links.Label) {
		g.openLink()
	}

	g.ui.End()

	vp := g.frame.Viewport
	g.overlay.Render(g.ui.DrawList(), vp.Width, vp.Height)
}

// saveTint writes the current material color back to the config file.
func (g *Game) saveTint() {
	hex := g.world.Tint().Hex()
	path := g.cfg.Path()
	if path == "" {
		path = config.DefaultPath()
	}

	err := config.Edit(path, func(c *config.Config) {
		c.Scene.MaterialColor = hex
	})
	if err != nil {
		g.log.Warn("failed to save material color", zap.String("path", path), zap.Error(err))
		return
	}
	g.cfg.Scene.MaterialColor = hex
	g.log.Info("material color saved", zap.String("color", hex), zap.String("path", path))
}

func (g *Game) openLink() {
	url := g.cfg.Links.URL
	if url == "" {
		return
	}
	if err := window.OpenURL(url); err != nil {
		g.log.Warn("failed to open link", zap.String("url", url), zap.Error(err))
		return
	}
	g.log.Info("opened link", zap.String("url", url))
}

func (g *Game) saveScreenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.screenshot.CaptureFromPixels(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Stop asks the loop to exit after the current frame. Safe from any
// goroutine.
func (g *Game) Stop() {
	g.running.Store(false)
}

// Running reports whether the loop is active.
func (g *Game) Running() bool {
	return g.running.Load()
}

// Dispose releases every resource. Only the first call does any work;
// later calls return the same error.
func (g *Game) Dispose() error {
	g.dispose.Do(func() {
		g.running.Store(false)
		g.log.Info("disposing")

		var errs error
		if g.loader != nil {
			if err := g.loader.Close(); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("texture loader: %w", err))
			}
		}
		if g.overlay != nil {
			g.overlay.Close()
		}
		if g.renderer != nil {
			g.renderer.Close()
		}
		if g.window != nil {
			errs = multierr.Append(errs, g.window.Close())
		}
		g.assets.Close()
		g.timeline.Clear()

		g.disposed = errs
	})
	return g.disposed
}
