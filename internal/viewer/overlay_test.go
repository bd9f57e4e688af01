package viewer

import (
	"math"
	"strings"
	"testing"
)

func TestOverlayRectCoversScreen(t *testing.T) {
	var o Overlay
	o.Begin(100, 50)
	o.AddRect(0, 0, 100, 50, Color{1, 0, 0, 1})

	if o.VertexCount() != 6 {
		t.Fatalf("vertex count: %d", o.VertexCount())
	}
	v := o.Vertices()
	corners := [][2]float32{{-1, 1}, {1, 1}, {1, -1}, {-1, 1}, {1, -1}, {-1, -1}}
	for i, c := range corners {
		x, y := v[i*overlayStride], v[i*overlayStride+1]
		if x != c[0] || y != c[1] {
			t.Fatalf("vertex %d: (%v, %v), want %v", i, x, y, c)
		}
		if v[i*overlayStride+2] != 1 || v[i*overlayStride+5] != 1 {
			t.Fatalf("vertex %d colour: %v", i, v[i*overlayStride+2:i*overlayStride+6])
		}
	}
}

func TestOverlayBeginResets(t *testing.T) {
	var o Overlay
	o.Begin(10, 10)
	o.AddRect(1, 1, 2, 2, Color{})
	o.Begin(0, 0) // minimised window
	if o.VertexCount() != 0 {
		t.Fatalf("Begin did not reset the batch")
	}
	o.AddRect(0, 0, 1, 1, Color{})
	for _, f := range o.Vertices() {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			t.Fatalf("non-finite vertex with zero-size framebuffer")
		}
	}
}

func TestDrawTextGlyphPixels(t *testing.T) {
	var o Overlay
	o.Begin(200, 100)
	o.DrawText(0, 0, "1", 1, Color{1, 1, 1, 1})
	if got := o.VertexCount(); got != 10*6 {
		t.Fatalf("'1' should light 10 pixels, got %d quads", got/6)
	}

	o.Begin(200, 100)
	o.DrawText(0, 0, "a", 1, Color{})
	lower := o.VertexCount()
	o.Begin(200, 100)
	o.DrawText(0, 0, "A", 1, Color{})
	if o.VertexCount() != lower || lower == 0 {
		t.Fatalf("lowercase not upper-cased: %d vs %d", lower, o.VertexCount())
	}

	o.Begin(200, 100)
	o.DrawText(0, 0, " ~", 3, Color{})
	if o.VertexCount() != 0 {
		t.Fatalf("space and unknown runes must draw nothing")
	}
}

func TestDrawTextNewline(t *testing.T) {
	var o Overlay
	o.Begin(100, 100)
	o.DrawText(10, 0, "-\n-", 2, Color{})
	v := o.Vertices()
	if o.VertexCount() != 2*5*6 {
		t.Fatalf("two dashes of five pixels expected, got %d vertices", o.VertexCount())
	}
	// First vertex of the second line: x back at 10px, y moved down by 8 font pixels.
	second := v[5*6*overlayStride:]
	wantX := o.pxToNDCX(10)
	wantY := o.pxToNDCY(float32(16 + 3*2))
	if second[0] != wantX || second[1] != wantY {
		t.Fatalf("second line starts at (%v, %v), want (%v, %v)", second[0], second[1], wantX, wantY)
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text  string
		scale int
		want  int
	}{
		{"", 1, 0},
		{"A", 1, 5},
		{"AB", 2, 22},
		{"A\nABC", 1, 17},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.text, tt.scale); got != tt.want {
			t.Fatalf("TextWidth(%q, %d) = %d, want %d", tt.text, tt.scale, got, tt.want)
		}
	}
}

func TestStatusLinesUseKnownGlyphs(t *testing.T) {
	c := NewCamera()
	c.Yaw, c.Pitch, c.Spin = -1234.5, 89, 98765.4
	c.X = -73
	lines := StatusLines(c, 144)
	if len(lines) != 5 {
		t.Fatalf("lines: %v", lines)
	}
	if !strings.HasPrefix(lines[1], "PITCH") || !strings.Contains(lines[1], "89.0") {
		t.Fatalf("pitch line: %q", lines[1])
	}
	if !strings.Contains(lines[3], "-73 -500") {
		t.Fatalf("position line: %q", lines[3])
	}
	for _, line := range lines {
		for _, r := range line {
			if r == ' ' {
				continue
			}
			if _, ok := font5x7[r]; !ok {
				t.Fatalf("no glyph for %q in %q", r, line)
			}
		}
	}
}
