//go:build !test
// +build !test

package viewer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

const hudVertexShader = `#version 410 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec4 aColor;
out vec4 vColor;
void main(){
    gl_Position = vec4(aPos, 0.0, 1.0);
    vColor = aColor;
}` + "\x00"

const hudFragmentShader = `#version 410 core
in vec4 vColor;
out vec4 FragColor;
void main(){
    FragColor = vColor;
}` + "\x00"

// HUD draws the status panel over the scene.
type HUD struct {
	program uint32
	vao     uint32
	vbo     uint32
	overlay Overlay
	Visible bool
}

func NewHUD() (*HUD, error) {
	program, err := linkProgram(hudVertexShader, hudFragmentShader)
	if err != nil {
		return nil, err
	}
	h := &HUD{program: program, Visible: true}

	gl.GenVertexArrays(1, &h.vao)
	gl.GenBuffers(1, &h.vbo)
	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, overlayStride*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, overlayStride*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)
	return h, nil
}

// Draw renders lines in a translucent panel at the top-left corner.
func (h *HUD) Draw(width, height int, lines []string) {
	if !h.Visible || len(lines) == 0 {
		return
	}
	const (
		scale   = 2
		margin  = 10
		lineGap = 8 * scale
	)

	panelW := 0
	for _, l := range lines {
		if w := TextWidth(l, scale); w > panelW {
			panelW = w
		}
	}
	panelW += 2 * margin
	panelH := len(lines)*lineGap + 2*margin - scale

	h.overlay.Begin(width, height)
	h.overlay.AddRect(0, 0, panelW, panelH, Color{0, 0, 0, 0.45})
	for i, l := range lines {
		h.overlay.DrawText(margin, margin+i*lineGap, l, scale, Color{1, 1, 1, 1})
	}

	verts := h.overlay.Vertices()
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(h.program)
	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(h.overlay.VertexCount()))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (h *HUD) Delete() {
	if h.vao != 0 {
		gl.DeleteVertexArrays(1, &h.vao)
	}
	if h.vbo != 0 {
		gl.DeleteBuffers(1, &h.vbo)
	}
	if h.program != 0 {
		gl.DeleteProgram(h.program)
	}
	*h = HUD{}
}
