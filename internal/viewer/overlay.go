package viewer

import (
	"fmt"
	"strings"
)

type Color struct{ R, G, B, A float32 }

// overlayStride is x, y, r, g, b, a per vertex.
const overlayStride = 6

// Overlay collects screen-space quads for the HUD. Coordinates are pixels
// with the origin at the top-left corner; vertices are stored in NDC.
type Overlay struct {
	verts []float32
	scrW  int
	scrH  int
}

// Begin starts a new batch for a framebuffer of the given size.
func (o *Overlay) Begin(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	o.scrW, o.scrH = width, height
	o.verts = o.verts[:0]
}

// Vertices returns the batch built since Begin.
func (o *Overlay) Vertices() []float32 { return o.verts }

// VertexCount is the number of vertices in the batch.
func (o *Overlay) VertexCount() int { return len(o.verts) / overlayStride }

func (o *Overlay) AddRect(x, y, w, h int, c Color) {
	x0 := o.pxToNDCX(float32(x))
	y0 := o.pxToNDCY(float32(y))
	x1 := o.pxToNDCX(float32(x + w))
	y1 := o.pxToNDCY(float32(y + h))

	o.addV(x0, y0, c)
	o.addV(x1, y0, c)
	o.addV(x1, y1, c)

	o.addV(x0, y0, c)
	o.addV(x1, y1, c)
	o.addV(x0, y1, c)
}

func (o *Overlay) addV(x, y float32, c Color) {
	o.verts = append(o.verts, x, y, c.R, c.G, c.B, c.A)
}

func (o *Overlay) pxToNDCX(px float32) float32 {
	return (px/float32(o.scrW))*2 - 1
}

func (o *Overlay) pxToNDCY(py float32) float32 {
	return 1 - (py/float32(o.scrH))*2
}

// DrawText draws text with the 5x7 font; scale is the size of one font pixel.
// Letters are upper-cased and runes without a glyph advance like a space.
func (o *Overlay) DrawText(x, y int, text string, scale int, c Color) {
	cx := x
	cw := 5 * scale
	ch := 7 * scale
	for _, r := range strings.ToUpper(text) {
		if r == '\n' {
			y += ch + scale
			cx = x
			continue
		}
		glyph := font5x7[r]
		for row := 0; row < 7; row++ {
			for col := 0; col < 5; col++ {
				if glyph[row]&(1<<uint(4-col)) != 0 {
					o.AddRect(cx+col*scale, y+row*scale, scale, scale, c)
				}
			}
		}
		cx += cw + scale
	}
}

// TextWidth is the pixel width of the longest line DrawText would produce.
func TextWidth(text string, scale int) int {
	widest := 0
	for _, line := range strings.Split(text, "\n") {
		n := len([]rune(line))
		if n == 0 {
			continue
		}
		if w := n*6*scale - scale; w > widest {
			widest = w
		}
	}
	return widest
}

// StatusLines formats the transform state shown by the HUD.
func StatusLines(c *Camera, fps float64) []string {
	return []string{
		fmt.Sprintf("YAW   %7.1f", c.Yaw),
		fmt.Sprintf("PITCH %7.1f", c.Pitch),
		fmt.Sprintf("SPIN  %7.1f", c.Spin),
		fmt.Sprintf("POS   %.0f %.0f", c.X, c.Z),
		fmt.Sprintf("FPS   %5.0f", fps),
	}
}

// 5x7 glyphs, one row per byte, leftmost pixel in bit 4.
var font5x7 = map[rune][7]uint8{
	'.': {0, 0, 0, 0, 0, 0, 0b00100},
	':': {0, 0, 0b00100, 0, 0b00100, 0, 0},
	'-': {0, 0, 0, 0b11111, 0, 0, 0},

	'0': {0b01110, 0b10001, 0b10011, 0b10101, 0b11001, 0b10001, 0b01110},
	'1': {0b00100, 0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110},
	'2': {0b01110, 0b10001, 0b00001, 0b00010, 0b00100, 0b01000, 0b11111},
	'3': {0b11110, 0b00001, 0b00001, 0b01110, 0b00001, 0b00001, 0b11110},
	'4': {0b00010, 0b00110, 0b01010, 0b10010, 0b11111, 0b00010, 0b00010},
	'5': {0b11111, 0b10000, 0b11110, 0b00001, 0b00001, 0b10001, 0b01110},
	'6': {0b00110, 0b01000, 0b10000, 0b11110, 0b10001, 0b10001, 0b01110},
	'7': {0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b01000, 0b01000},
	'8': {0b01110, 0b10001, 0b10001, 0b01110, 0b10001, 0b10001, 0b01110},
	'9': {0b01110, 0b10001, 0b10001, 0b01111, 0b00001, 0b00010, 0b01100},

	'A': {0b01110, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001},
	'C': {0b01110, 0b10001, 0b10000, 0b10000, 0b10000, 0b10001, 0b01110},
	'F': {0b11111, 0b10000, 0b10000, 0b11110, 0b10000, 0b10000, 0b10000},
	'H': {0b10001, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001},
	'I': {0b01110, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110},
	'N': {0b10001, 0b11001, 0b10101, 0b10011, 0b10001, 0b10001, 0b10001},
	'O': {0b01110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110},
	'P': {0b11110, 0b10001, 0b10001, 0b11110, 0b10000, 0b10000, 0b10000},
	'S': {0b01111, 0b10000, 0b10000, 0b01110, 0b00001, 0b00001, 0b11110},
	'T': {0b11111, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100},
	'W': {0b10001, 0b10001, 0b10001, 0b10101, 0b10101, 0b11011, 0b10001},
	'Y': {0b10001, 0b10001, 0b01010, 0b00100, 0b00100, 0b00100, 0b00100},
}
