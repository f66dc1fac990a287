// Package glui draws a ui2d.DrawList with OpenGL.
package glui

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scrollscene/internal/engine/shader"
	"github.com/Faultbox/scrollscene/internal/engine/ui2d"
)

const solidVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vColor = aColor;
}
`

const solidFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

const textVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vTexCoord;
out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vTexCoord = aTexCoord;
	vColor = aColor;
}
`

const textFragmentShader = `
#version 410 core

uniform sampler2D uTexture;

in vec2 vTexCoord;
in vec4 vColor;
out vec4 FragColor;

void main() {
	float alpha = texture(uTexture, vTexCoord).r;
	FragColor = vec4(vColor.rgb, vColor.a * alpha);
}
`

// Renderer submits draw lists.
type Renderer struct {
	solid *shader.Program
	text  *shader.Program

	solidVAO, solidVBO uint32
	textVAO, textVBO   uint32
	fontTex            uint32
}

// New creates the UI shaders and uploads the font atlas.
func New(font *ui2d.Font) (*Renderer, error) {
	r := &Renderer{}

	var err error
	if r.solid, err = shader.New(solidVertexShader, solidFragmentShader); err != nil {
		return nil, fmt.Errorf("ui solid shader: %w", err)
	}
	if r.text, err = shader.New(textVertexShader, textFragmentShader); err != nil {
		r.solid.Delete()
		return nil, fmt.Errorf("ui text shader: %w", err)
	}

	r.solidVAO, r.solidVBO = vertexBuffer([]int32{2, 4})
	r.textVAO, r.textVBO = vertexBuffer([]int32{2, 2, 4})
	r.fontTex = uploadAtlas(font)

	return r, nil
}

// vertexBuffer creates a VAO/VBO pair with tightly packed float attributes
// of the given component counts at locations 0..n-1.
func vertexBuffer(components []int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	var stride int32
	for _, n := range components {
		stride += n * 4
	}
	var offset uintptr
	for i, n := range components {
		gl.VertexAttribPointerWithOffset(uint32(i), n, gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(uint32(i))
		offset += uintptr(n * 4)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

func uploadAtlas(font *ui2d.Font) uint32 {
	var tex uint32
	if font == nil {
		return 0
	}
	img := font.Atlas
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Render draws list over the current framebuffer. width and height are the
// logical window size the list was laid out in.
func (r *Renderer) Render(list *ui2d.DrawList, width, height int) {
	if list == nil || list.Empty() {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)

	if len(list.Solid) > 0 {
		r.solid.Use()
		r.solid.SetMat4("uProjection", proj)
		upload(r.solidVAO, r.solidVBO, list.Solid)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(list.Solid)/ui2d.SolidStride))
	}

	if len(list.Text) > 0 && r.fontTex != 0 {
		r.text.Use()
		r.text.SetMat4("uProjection", proj)
		r.text.SetInt("uTexture", 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
		upload(r.textVAO, r.textVBO, list.Text)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(list.Text)/ui2d.TextStride))
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	gl.Enable(gl.DEPTH_TEST)
}

func upload(vao, vbo uint32, data []float32) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STREAM_DRAW)
}

// Close releases GL resources.
func (r *Renderer) Close() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	gl.DeleteVertexArrays(1, &r.solidVAO)
	gl.DeleteBuffers(1, &r.solidVBO)
	gl.DeleteVertexArrays(1, &r.textVAO)
	gl.DeleteBuffers(1, &r.textVBO)
	r.solid.Delete()
	r.text.Delete()
}
