package viewer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"
)

// ErrNoMesh is returned when a model file contains no faces.
var ErrNoMesh = errors.New("model has no mesh")

// Vertex is the interleaved layout uploaded to the GPU: position then texcoords.
type Vertex struct {
	Position  mgl32.Vec3
	TexCoords mgl32.Vec2
}

// vertexStride is the number of float32 values per Vertex.
const vertexStride = 5

type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

type MeshOptions struct {
	// FlipUVs stores v as 1-v, for images whose first row is the top.
	FlipUVs bool
}

// LoadMesh imports the first mesh of a Wavefront OBJ file.
func LoadMesh(path string, opts MeshOptions) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %s: %w", path, err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f, opts)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	return mesh, nil
}

// ParseOBJ imports the first mesh of an OBJ stream. Every statement is
// checked and rewritten by objLines before gwob sees it, so errors carry the
// line they came from and gwob only ever receives triangles with absolute
// v/vt corners.
func ParseOBJ(r io.Reader, opts MeshOptions) (*Mesh, error) {
	lines := newOBJLines(r, opts)
	obj, err := gwob.NewObjFromReader("model", lines, &gwob.ObjParserOptions{
		IgnoreNormals: true,
		Logger:        func(msg string) { log.Print("obj: ", msg) },
	})
	if lines.err != nil {
		return nil, lines.err
	}
	if lines.faces == 0 {
		return nil, ErrNoMesh
	}
	if err != nil {
		return nil, err
	}
	return meshFromObj(obj)
}

// meshFromObj unpacks gwob's interleaved buffer. Stride and offsets are in
// bytes.
func meshFromObj(obj *gwob.Obj) (*Mesh, error) {
	stride := obj.StrideSize / 4
	if stride < 3 || len(obj.Indices) == 0 {
		return nil, ErrNoMesh
	}
	pos := obj.StrideOffsetPosition / 4
	tex := -1
	if obj.TextCoordFound {
		tex = obj.StrideOffsetTexture / 4
	}

	m := &Mesh{
		Vertices: make([]Vertex, len(obj.Coord)/stride),
		Indices:  make([]uint32, len(obj.Indices)),
	}
	for i := range m.Vertices {
		c := obj.Coord[i*stride : (i+1)*stride]
		m.Vertices[i].Position = mgl32.Vec3{c[pos], c[pos+1], c[pos+2]}
		if tex >= 0 {
			m.Vertices[i].TexCoords = mgl32.Vec2{c[tex], c[tex+1]}
		}
	}
	for i, idx := range obj.Indices {
		m.Indices[i] = uint32(idx)
	}
	return m, nil
}

// objLines feeds gwob one canonical statement per ReadString call. It keeps
// v, vt and f, drops everything else, and stops at the first object, group
// or material switch after faces have been seen.
//
// Texcoord 1 of the rewritten stream is a blank one, used by corners that
// name none, so declared texcoords shift up by one.
type objLines struct {
	src       *bufio.Reader
	opts      MeshOptions
	line      int
	positions int
	texCoords int
	faces     int
	done      bool
	pending   []string
	err       error
}

func newOBJLines(r io.Reader, opts MeshOptions) *objLines {
	return &objLines{
		src:     bufio.NewReader(r),
		opts:    opts,
		pending: []string{"vt 0 0\n"},
	}
}

// ReadString implements gwob.StringReader. Statements always end in '\n'.
func (l *objLines) ReadString(byte) (string, error) {
	for len(l.pending) == 0 {
		if l.err != nil {
			return "", l.err
		}
		if l.done {
			return "", io.EOF
		}
		raw, err := l.src.ReadString('\n')
		if err == io.EOF {
			l.done = true
		} else if err != nil {
			l.err = err
			return "", err
		}
		if raw == "" {
			continue
		}
		l.line++
		if err := l.statement(strings.Fields(raw)); err != nil {
			l.err = fmt.Errorf("line %d: %w", l.line, err)
		}
	}
	s := l.pending[0]
	l.pending = l.pending[1:]
	return s, nil
}

func (l *objLines) statement(fields []string) error {
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	switch fields[0] {
	case "v":
		v, err := parseFloats(fields[1:], 3, 3)
		if err != nil {
			return err
		}
		l.positions++
		l.emit("v", v)
	case "vt":
		v, err := parseFloats(fields[1:], 1, 2)
		if err != nil {
			return err
		}
		if l.opts.FlipUVs {
			v[1] = 1 - v[1]
		}
		l.texCoords++
		l.emit("vt", v)
	case "o", "g", "usemtl":
		if l.faces > 0 {
			l.done = true
		}
	case "f":
		return l.face(fields[1:])
	}
	return nil
}

func (l *objLines) emit(kind string, values []float32) {
	var b strings.Builder
	b.WriteString(kind)
	for _, f := range values {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
	}
	b.WriteByte('\n')
	l.pending = append(l.pending, b.String())
}

// face splits a polygon into a triangle fan.
func (l *objLines) face(corners []string) error {
	if len(corners) < 3 {
		return fmt.Errorf("face has %d corners, need at least 3", len(corners))
	}
	canon := make([]string, len(corners))
	for i, c := range corners {
		s, err := l.corner(c)
		if err != nil {
			return err
		}
		canon[i] = s
	}
	for k := 1; k < len(canon)-1; k++ {
		l.pending = append(l.pending, "f "+canon[0]+" "+canon[k]+" "+canon[k+1]+"\n")
	}
	l.faces++
	return nil
}

// corner rewrites "v", "v/vt", "v//vn" or "v/vt/vn" as an absolute "v/vt".
func (l *objLines) corner(s string) (string, error) {
	parts := strings.Split(s, "/")
	pos, err := resolveIndex(parts[0], l.positions)
	if err != nil {
		return "", fmt.Errorf("position index %q: %w", parts[0], err)
	}
	tex := 0
	if len(parts) > 1 && parts[1] != "" {
		tex, err = resolveIndex(parts[1], l.texCoords)
		if err != nil {
			return "", fmt.Errorf("texcoord index %q: %w", parts[1], err)
		}
		tex++
	}
	return strconv.Itoa(pos+1) + "/" + strconv.Itoa(tex+1), nil
}

// resolveIndex turns a 1-based or negative (relative) OBJ index into a
// 0-based one.
func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += n
	default:
		return 0, errors.New("index 0 is not valid")
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("out of range (%d defined)", n)
	}
	return i, nil
}

func parseFloats(fields []string, least, most int) ([]float32, error) {
	if len(fields) < least {
		return nil, fmt.Errorf("expected at least %d values, got %d", least, len(fields))
	}
	out := make([]float32, most)
	for i := 0; i < most && i < len(fields); i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// Interleaved returns the vertex data as x, y, z, u, v per vertex.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*vertexStride)
	for _, v := range m.Vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2], v.TexCoords[0], v.TexCoords[1])
	}
	return out
}

// Bounds returns the axis-aligned box around every vertex.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo = m.Vertices[0].Position
	hi = lo
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < lo[i] {
				lo[i] = v.Position[i]
			}
			if v.Position[i] > hi[i] {
				hi[i] = v.Position[i]
			}
		}
	}
	return lo, hi
}
