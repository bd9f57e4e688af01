//go:build !test
// +build !test

package viewer

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Viewer runs the frame loop for one textured model.
type Viewer struct {
	cfg      Config
	camera   *Camera
	renderer *Renderer
	hud      *HUD
	input    *InputHandler
	log      *log.Logger
	fps      float64
}

// New loads the shaders, model and texture named by cfg and uploads them.
// A GL context must be current.
func New(cfg Config, logger *log.Logger) (*Viewer, error) {
	vertexSrc, fragmentSrc, err := LoadShaderSources(cfg.Assets.VertexShader, cfg.Assets.FragmentShader)
	if err != nil {
		return nil, err
	}
	renderer, err := NewRenderer(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("shader program: %w", err)
	}

	v := &Viewer{
		cfg:      cfg,
		camera:   cfg.Camera(),
		renderer: renderer,
		log:      logger,
	}
	if err := v.loadAssets(); err != nil {
		v.Close()
		return nil, err
	}

	hud, err := NewHUD()
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("hud shader program: %w", err)
	}
	v.hud = hud
	return v, nil
}

func (v *Viewer) loadAssets() error {
	mesh, err := LoadMesh(v.cfg.Assets.Model, MeshOptions{FlipUVs: v.cfg.Assets.FlipUVs})
	if err != nil {
		return err
	}
	lo, hi := mesh.Bounds()
	v.log.Printf("model %s: %d vertices, %d indices, bounds %v..%v",
		v.cfg.Assets.Model, len(mesh.Vertices), len(mesh.Indices), lo, hi)
	if err := v.renderer.UploadMesh(mesh); err != nil {
		return fmt.Errorf("upload model %s: %w", v.cfg.Assets.Model, err)
	}

	var img *image.RGBA
	if v.cfg.Assets.Texture == "" {
		img = image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
		v.log.Printf("no texture configured, using plain white")
	} else {
		img, err = LoadImage(v.cfg.Assets.Texture, false)
		if err != nil {
			return err
		}
		v.log.Printf("texture %s: %dx%d", v.cfg.Assets.Texture, img.Bounds().Dx(), img.Bounds().Dy())
	}
	if err := v.renderer.UploadTexture(img); err != nil {
		return fmt.Errorf("upload texture %s: %w", v.cfg.Assets.Texture, err)
	}
	return nil
}

// Camera exposes the transform state driven by the loop.
func (v *Viewer) Camera() *Camera { return v.camera }

// Run drives the window until it is asked to close. Everything happens on
// the calling goroutine, which must own the GL context.
func (v *Viewer) Run(window *glfw.Window) {
	v.input = NewInputHandler(window)
	v.input.SetupCallbacks(v.camera)

	gl.Enable(gl.DEPTH_TEST)
	c := v.cfg.Clear
	gl.ClearColor(c[0], c[1], c[2], c[3])

	v.log.Println("arrows move the model, mouse orbits, F1 toggles the HUD, ESC quits")

	telemetryTimer := time.Duration(0)
	prev := time.Now()

	for !window.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now

		dt := frame.Seconds()
		if dt > 0 {
			v.fps = v.fps*0.9 + (1/dt)*0.1
		}

		v.processInput(dt)
		v.render()

		telemetryTimer += frame
		if v.cfg.Telemetry.Interval > 0 && telemetryTimer >= v.cfg.Telemetry.Interval {
			v.displayTelemetry()
			telemetryTimer = 0
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (v *Viewer) processInput(dt float64) {
	v.camera.Tick(dt, v.input.Keys())
	if v.input.WasKeyPressed(glfw.KeyF1) {
		v.hud.Visible = !v.hud.Visible
	}
}

func (v *Viewer) render() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	width, height := v.input.FramebufferSize()
	v.renderer.SetMatrices(
		v.camera.ModelMatrix(),
		v.camera.ViewMatrix(),
		v.camera.ProjectionForSize(width, height),
	)
	v.renderer.Draw()

	v.hud.Draw(width, height, StatusLines(v.camera, v.fps))
}

func (v *Viewer) displayTelemetry() {
	c := v.camera
	v.log.Printf("yaw %.1f pitch %.1f spin %.1f pos (%.1f, %.1f) fps %.0f",
		c.Yaw, c.Pitch, c.Spin, c.X, c.Z, v.fps)
}

// Close releases GPU objects. The GL context must still be current.
func (v *Viewer) Close() {
	if v.hud != nil {
		v.hud.Delete()
		v.hud = nil
	}
	if v.renderer != nil {
		v.renderer.Delete()
		v.renderer = nil
	}
}
