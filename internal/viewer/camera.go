package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	maxPitch = 89.0
	minPitch = -89.0
)

// Keys is the set of directional keys held during a frame.
type Keys struct {
	Up, Down, Left, Right bool
}

// Camera holds the per-session transform state of the viewed model.
// The camera itself never moves; all apparent motion comes from moving and
// rotating the model in front of it.
type Camera struct {
	X, Y, Z float64 // model offset, Y stays 0
	Yaw     float64 // degrees
	Pitch   float64 // degrees, within [-89, 89]
	Spin    float64 // auto-rotation, degrees

	Speed       float64 // units per second
	Sensitivity float64 // degrees per pixel
	SpinRate    float64 // degrees per second
	Scale       float32
	FOV         float32 // degrees
	Near, Far   float32

	firstMouse bool
	lastX      float64
	lastY      float64
}

func NewCamera() *Camera {
	return &Camera{
		Z:           -500,
		Speed:       50,
		Sensitivity: 0.1,
		SpinRate:    10,
		Scale:       0.5,
		FOV:         45,
		Near:        0.1,
		Far:         1000,
		firstMouse:  true,
	}
}

// OnMouseMove turns cursor motion into yaw and pitch. The first call after
// construction or ResetMouse only records the baseline.
func (c *Camera) OnMouseMove(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xoffset := (xpos - c.lastX) * c.Sensitivity
	yoffset := (c.lastY - ypos) * c.Sensitivity // screen Y grows downwards
	c.lastX = xpos
	c.lastY = ypos

	c.Yaw += xoffset
	c.Pitch += yoffset

	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < minPitch {
		c.Pitch = minPitch
	}
}

// ResetMouse makes the next OnMouseMove a baseline again.
func (c *Camera) ResetMouse() {
	c.firstMouse = true
}

// Tick advances the model offset for the held keys and the auto-rotation.
func (c *Camera) Tick(dt float64, keys Keys) {
	step := c.Speed * dt
	if keys.Up {
		c.Z -= step // away from the camera
	}
	if keys.Down {
		c.Z += step
	}
	if keys.Left {
		c.X -= step
	}
	if keys.Right {
		c.X += step
	}

	c.Spin += c.SpinRate * dt
}

// ModelMatrix composes translate, scale, pitch, yaw and spin, in that order,
// so every rotation pivots about the model's own centre.
func (c *Camera) ModelMatrix() mgl32.Mat4 {
	model := mgl32.Ident4()
	model = model.Mul4(mgl32.Translate3D(float32(c.X), float32(c.Y), float32(c.Z)))
	model = model.Mul4(mgl32.Scale3D(c.Scale, c.Scale, c.Scale))
	model = model.Mul4(mgl32.HomogRotate3DX(degToRad(-c.Pitch)))
	model = model.Mul4(mgl32.HomogRotate3DY(degToRad(-c.Yaw)))
	model = model.Mul4(mgl32.HomogRotate3DY(degToRad(c.Spin)))
	return model
}

// ViewMatrix is always the identity: the camera sits at the origin looking
// down -Z.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.Ident4()
}

func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ProjectionForSize builds the projection for a framebuffer size. A minimised
// window reports 0x0, so both dimensions are clamped to 1.
func (c *Camera) ProjectionForSize(width, height int) mgl32.Mat4 {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return c.ProjectionMatrix(float32(width) / float32(height))
}

// degToRad reduces in float64 before narrowing, so a spin angle that has
// grown large over a long session keeps its fractional degrees.
func degToRad(deg float64) float32 {
	return float32(math.Mod(deg, 360) * math.Pi / 180)
}
