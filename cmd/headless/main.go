package main

import (
	"flag"
	"fmt"
	"log"

	"earth-viewer/internal/viewer"
)

func main() {
	configPath := flag.String("config", viewer.ConfigPath, "YAML settings file")
	steps := flag.Int("steps", 120, "Number of fixed ticks to run")
	ups := flag.Int("ups", viewer.DefaultUPS, "Fixed ticks per second")
	keys := flag.String("keys", "", "Keys held during every tick, e.g. up,right")
	mouse := flag.String("mouse", "", "Cursor path replayed before ticking, e.g. 400,300;410,290")
	flag.Parse()

	cfg, err := viewer.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	held, err := viewer.ParseKeys(*keys)
	if err != nil {
		log.Fatal(err)
	}
	path, err := viewer.ParsePath(*mouse)
	if err != nil {
		log.Fatal(err)
	}

	camera := cfg.Camera()
	viewer.ReplayMouse(camera, path)
	performed := viewer.RunHeadless(camera, *steps, *ups, held)

	fmt.Printf("Completed %d ticks. pos=(%.3f, %.3f, %.3f) yaw=%.3f pitch=%.3f spin=%.3f\n",
		performed, camera.X, camera.Y, camera.Z, camera.Yaw, camera.Pitch, camera.Spin)

	m := camera.ModelMatrix()
	fmt.Println("model matrix, one column per line:")
	for col := 0; col < 4; col++ {
		fmt.Printf("  % .5f % .5f % .5f % .5f\n", m[col*4], m[col*4+1], m[col*4+2], m[col*4+3])
	}
}
