package renderer

import (
	"image"
	"image/color"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/scrollscene/internal/engine/texture"
)

// textureRole picks the fallback used until (or instead of) the real data.
type textureRole int

const (
	roleColor textureRole = iota
	roleGradient
	roleNormal
	roleMask // ao, height
)

type textureEntry struct {
	id      uint32 // 0 until uploaded
	nearest bool
	failed  bool
}

// defaultTextures are 1-pixel (or 3-band) stand-ins for missing maps.
type defaultTextures struct {
	white, normal, gradient uint32
}

func newDefaultTextures() defaultTextures {
	solid := func(c color.RGBA) uint32 {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.SetRGBA(0, 0, c)
		return uploadRGBA(img, true)
	}

	// Three bands, like the 3-pixel ramp the scene ships with
	ramp := image.NewRGBA(image.Rect(0, 0, 3, 1))
	for i, v := range []uint8{80, 160, 255} {
		ramp.SetRGBA(i, 0, color.RGBA{v, v, v, 255})
	}

	return defaultTextures{
		white:    solid(color.RGBA{255, 255, 255, 255}),
		normal:   solid(color.RGBA{128, 128, 255, 255}),
		gradient: uploadRGBA(ramp, true),
	}
}

func (d defaultTextures) forRole(role textureRole) uint32 {
	switch role {
	case roleGradient:
		return d.gradient
	case roleNormal:
		return d.normal
	default:
		return d.white
	}
}

func (d defaultTextures) delete() {
	ids := []uint32{d.white, d.normal, d.gradient}
	gl.DeleteTextures(int32(len(ids)), &ids[0])
}

// uploadRGBA creates a texture from img, whose first row is the bottom.
func uploadRGBA(img *image.RGBA, nearest bool) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	if nearest {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	} else {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// texture returns the GL texture for path, requesting it on first use.
// Until the decode lands (or if it fails) the role's default is returned,
// and loaded reports false.
func (r *Renderer) texture(path string, role textureRole) (id uint32, loaded bool) {
	if path == "" {
		return r.defaults.forRole(role), false
	}
	e, ok := r.textures[path]
	if !ok {
		e = &textureEntry{nearest: role == roleGradient}
		r.textures[path] = e
		if r.loader != nil {
			r.loader.Request(path)
		}
	}
	if e.id == 0 {
		return r.defaults.forRole(role), false
	}
	return e.id, true
}

// pumpTextures uploads decodes that finished since the last frame.
func (r *Renderer) pumpTextures() {
	if r.loader == nil {
		return
	}
	for _, res := range r.loader.Ready() {
		r.applyResult(res)
	}
}

func (r *Renderer) applyResult(res texture.Result) {
	e, ok := r.textures[res.Path]
	if !ok {
		e = &textureEntry{}
		r.textures[res.Path] = e
	}
	if res.Err != nil {
		e.failed = true
		r.log.Warn("texture unavailable, using default",
			zap.String("path", res.Path),
			zap.Error(res.Err))
		return
	}
	if e.id != 0 {
		gl.DeleteTextures(1, &e.id)
	}
	e.id = uploadRGBA(res.Image, e.nearest)
	r.log.Debug("texture uploaded",
		zap.String("path", res.Path),
		zap.Uint32("id", e.id),
		zap.Bool("nearest", e.nearest))
}

// TextureStats returns how many textures are uploaded and how many failed.
func (r *Renderer) TextureStats() (loaded, failed int) {
	for _, e := range r.textures {
		if e.id != 0 {
			loaded++
		}
		if e.failed {
			failed++
		}
	}
	return loaded, failed
}
