// Package renderer draws a scene.World with OpenGL: toon-shaded meshes,
// one directional light and a point-sprite particle field.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/scrollscene/internal/engine/framebuffer"
	"github.com/Faultbox/scrollscene/internal/engine/shader"
	"github.com/Faultbox/scrollscene/internal/engine/texture"
	"github.com/Faultbox/scrollscene/internal/logger"
	"github.com/Faultbox/scrollscene/internal/scene"
	"github.com/Faultbox/scrollscene/pkg/rgb"
)

// heightDisplacement is how far a white height-map texel pushes a vertex
// along its normal.
const heightDisplacement = 0.05

// Surface describes the render target and the window it is shown in.
// The scene is shaded at Width x Height, which is the logical window size
// times the capped PixelRatio, then scaled onto the drawable.
type Surface struct {
	Width      int
	Height     int
	PixelRatio float32

	OutputWidth  int // drawable pixels
	OutputHeight int
}

// Config holds renderer configuration.
type Config struct {
	Surface    Surface
	Background rgb.Color
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	toon   *shader.Program
	points *shader.Program

	meshes    map[*scene.Mesh]*gpuMesh
	particles *gpuPoints
	target    *framebuffer.Framebuffer

	loader   *texture.Loader
	textures map[string]*textureEntry
	defaults defaultTextures

	log *zap.Logger
}

// New creates a new renderer. loader may be nil, in which case every
// texture keeps its default.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config, loader *texture.Loader) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		meshes:   make(map[*scene.Mesh]*gpuMesh),
		loader:   loader,
		textures: make(map[string]*textureEntry),
		log:      logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	var err error
	if r.toon, err = shader.New(toonVertexShader, toonFragmentShader); err != nil {
		return nil, fmt.Errorf("toon shader: %w", err)
	}
	if r.points, err = shader.New(pointsVertexShader, pointsFragmentShader); err != nil {
		r.toon.Delete()
		return nil, fmt.Errorf("points shader: %w", err)
	}
	r.defaults = newDefaultTextures()

	s := cfg.Surface
	if r.target, err = framebuffer.New(s.Width, s.Height); err != nil {
		r.defaults.delete()
		r.toon.Delete()
		r.points.Delete()
		return nil, fmt.Errorf("render target: %w", err)
	}
	r.Resize(s)

	return r, nil
}

// Close releases every GL object the renderer created.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, m := range r.meshes {
		m.delete()
	}
	r.meshes = nil
	if r.particles != nil {
		r.particles.delete()
		r.particles = nil
	}
	for _, e := range r.textures {
		if e.id != 0 {
			gl.DeleteTextures(1, &e.id)
		}
	}
	r.textures = nil
	r.defaults.delete()
	r.toon.Delete()
	r.points.Delete()
	r.target.Destroy()
}

// Resize handles a window size or pixel ratio change.
func (r *Renderer) Resize(s Surface) {
	r.config.Surface = s
	r.target.Resize(s.Width, s.Height)
	gl.Viewport(0, 0, int32(s.OutputWidth), int32(s.OutputHeight))
	r.log.Debug("renderer resized",
		zap.Int("width", s.Width),
		zap.Int("height", s.Height),
		zap.Int("output_width", s.OutputWidth),
		zap.Int("output_height", s.OutputHeight),
		zap.Float32("pixel_ratio", s.PixelRatio),
	)
}

// Preload requests every texture the world references so decoding starts
// before the first frame needs them.
func (r *Renderer) Preload(w *scene.World) {
	r.texture(w.Material.GradientMap, roleGradient)
	for _, m := range w.Meshes {
		r.texture(m.Maps.Color, roleColor)
		r.texture(m.Maps.AmbientOcclusion, roleMask)
		r.texture(m.Maps.Normal, roleNormal)
		r.texture(m.Maps.Height, roleMask)
		if m.Maps.Roughness != "" {
			r.log.Debug("roughness map has no effect on toon shading",
				zap.String("mesh", m.Name),
				zap.String("path", m.Maps.Roughness))
		}
	}
}

// Render draws the world from its rig's camera.
func (r *Renderer) Render(w *scene.World) error {
	r.pumpTextures()

	s := r.config.Surface
	bg := r.config.Background
	if s.Width <= 0 || s.Height <= 0 {
		gl.ClearColor(bg.R, bg.G, bg.B, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		return nil
	}

	restore := r.target.BindWithViewport()
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	proj := w.Rig.Camera.Projection()
	view := w.Rig.View()

	r.drawMeshes(w, proj, view)
	r.drawParticles(w, proj, view)
	restore()

	r.target.BlitToDefault(s.OutputWidth, s.OutputHeight)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

func (r *Renderer) drawMeshes(w *scene.World, proj, view mgl32.Mat4) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	p := r.toon
	p.Use()
	p.SetMat4("uProjection", proj)
	p.SetMat4("uView", view)
	p.SetVec3("uColor", w.Material.Color.Vec())

	// Light direction toward the light, in view space
	toLight := w.Light.Direction().Mul(-1)
	p.SetVec3("uLightDir", view.Mul4x1(toLight.Vec4(0)).Vec3())
	p.SetVec3("uLightColor", w.Light.Color.Scale(w.Light.Intensity).Vec())
	p.SetFloat("uDisplacement", heightDisplacement)

	gradient, _ := r.texture(w.Material.GradientMap, roleGradient)
	bindTexture(0, gradient)
	p.SetInt("uGradientMap", 0)
	p.SetInt("uColorMap", 1)
	p.SetInt("uAOMap", 2)
	p.SetInt("uNormalMap", 3)
	p.SetInt("uHeightMap", 4)

	for _, m := range w.Meshes {
		gm, ok := r.meshes[m]
		if !ok {
			gm = uploadGeometry(m.Geometry)
			r.meshes[m] = gm
			r.log.Debug("mesh uploaded",
				zap.String("mesh", m.Name),
				zap.Int("triangles", m.Geometry.TriangleCount()))
		}

		colorMap, _ := r.texture(m.Maps.Color, roleColor)
		aoMap, _ := r.texture(m.Maps.AmbientOcclusion, roleMask)
		normalMap, hasNormal := r.texture(m.Maps.Normal, roleNormal)
		heightMap, hasHeight := r.texture(m.Maps.Height, roleMask)
		bindTexture(1, colorMap)
		bindTexture(2, aoMap)
		bindTexture(3, normalMap)
		bindTexture(4, heightMap)
		p.SetBool("uHasNormalMap", hasNormal)
		p.SetBool("uHasHeightMap", hasHeight)

		model := m.Transform.Matrix()
		p.SetMat4("uModel", model)
		p.SetMat3("uNormalMatrix", model.Mat3().Inv().Transpose())
		gm.draw()
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) drawParticles(w *scene.World, proj, view mgl32.Mat4) {
	if w.Particles == nil {
		return
	}
	if r.particles == nil {
		r.particles = uploadPoints(w.Particles)
	}

	mat := w.Particles.Material
	if mat.Transparent {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)
	}

	p := r.points
	p.Use()
	p.SetMat4("uProjection", proj)
	p.SetMat4("uView", view)
	p.SetVec3("uColor", mat.Color.Vec())
	p.SetFloat("uOpacity", 1)
	s := r.config.Surface
	size, scale := mat.ScreenSize(s.PixelRatio, float32(s.Height)/s.PixelRatio)
	p.SetFloat("uSize", size)
	p.SetFloat("uScale", scale)
	p.SetBool("uAttenuation", mat.SizeAttenuation)
	r.particles.draw()

	gl.BindVertexArray(0)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func bindTexture(unit uint32, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// ReadPixels returns the last rendered scene, without the UI overlay, as
// bottom-up RGBA rows at render target resolution.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.target.Size()
	return r.target.ReadPixels(), w, h
}
