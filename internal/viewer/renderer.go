//go:build !test
// +build !test

package viewer

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer owns the textured-mesh shader program and the GPU copies of the
// mesh and its texture.
type Renderer struct {
	program    uint32
	vao        uint32
	vbo        uint32
	ebo        uint32
	texture    uint32
	indexCount int32

	modelLoc      int32
	viewLoc       int32
	projectionLoc int32
	samplerLoc    int32
}

// NewRenderer compiles and links the shader pair. Sources must be
// NUL-terminated.
func NewRenderer(vertexSrc, fragmentSrc string) (*Renderer, error) {
	program, err := linkProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	r := &Renderer{program: program}
	r.modelLoc = gl.GetUniformLocation(program, gl.Str("model\x00"))
	r.viewLoc = gl.GetUniformLocation(program, gl.Str("view\x00"))
	r.projectionLoc = gl.GetUniformLocation(program, gl.Str("projection\x00"))
	r.samplerLoc = gl.GetUniformLocation(program, gl.Str("texture1\x00"))
	return r, nil
}

// UploadMesh copies the mesh into a VAO with position at attribute 0 and
// texcoords at attribute 1.
func (r *Renderer) UploadMesh(m *Mesh) error {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return ErrNoMesh
	}
	vertices := m.Interleaved()

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, vertexStride*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	r.indexCount = int32(len(m.Indices))
	return nil
}

// UploadTexture stores img as a mipmapped, repeating RGBA8 texture.
func (r *Renderer) UploadTexture(img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return errors.New("texture is empty")
	}
	if img.Stride != b.Dx()*4 {
		img = rgbaCopy(img)
	}

	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// rgbaCopy repacks a sub-image so its rows are contiguous.
func rgbaCopy(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):])
	}
	return dst
}

func (r *Renderer) SetMatrices(model, view, projection mgl32.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0])
	gl.UniformMatrix4fv(r.viewLoc, 1, false, &view[0])
	gl.UniformMatrix4fv(r.projectionLoc, 1, false, &projection[0])
}

func (r *Renderer) Draw() {
	gl.UseProgram(r.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.Uniform1i(r.samplerLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Delete releases every GL object the renderer created.
func (r *Renderer) Delete() {
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	*r = Renderer{}
}

func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var success int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &success)
	if success == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link shader program: %v", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
