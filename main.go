package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"earth-viewer/internal/viewer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", viewer.ConfigPath, "YAML settings file")
	model := flag.String("model", "", "Override the model path")
	texture := flag.String("texture", "", "Override the texture path")
	flag.Parse()

	cfg, err := viewer.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *model != "" {
		cfg.Assets.Model = *model
	}
	if *texture != "" {
		cfg.Assets.Texture = *texture
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatal("Failed to initialize GLFW: ", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		log.Fatal("Failed to create window: ", err)
	}
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		log.Fatal("Failed to initialize OpenGL: ", err)
	}

	logger := log.New(os.Stderr, "viewer: ", log.LstdFlags)
	logger.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Printf("GLSL version: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	v, err := viewer.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	v.Run(window)

	c := v.Camera()
	logger.Printf("final pose: yaw %.1f pitch %.1f spin %.1f pos (%.1f, %.1f)", c.Yaw, c.Pitch, c.Spin, c.X, c.Z)
}
