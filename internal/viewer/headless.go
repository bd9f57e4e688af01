package viewer

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultUPS is the tick rate used when none is given.
const DefaultUPS = 120

// RunHeadless applies steps fixed ticks of 1/ups seconds with keys held and
// returns the number of ticks performed.
func RunHeadless(c *Camera, steps, ups int, keys Keys) int {
	if ups <= 0 {
		ups = DefaultUPS
	}
	dt := 1.0 / float64(ups)
	performed := 0
	for performed < steps {
		c.Tick(dt, keys)
		performed++
	}
	return performed
}

// ReplayMouse feeds a cursor path to the camera, in order.
func ReplayMouse(c *Camera, points [][2]float64) {
	for _, p := range points {
		c.OnMouseMove(p[0], p[1])
	}
}

// ParseKeys reads a comma separated list of up, down, left and right.
func ParseKeys(s string) (Keys, error) {
	var k Keys
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "":
		case "up":
			k.Up = true
		case "down":
			k.Down = true
		case "left":
			k.Left = true
		case "right":
			k.Right = true
		default:
			return Keys{}, fmt.Errorf("unknown key %q", name)
		}
	}
	return k, nil
}

// ParsePath reads cursor positions written as "x,y;x,y;...".
func ParsePath(s string) ([][2]float64, error) {
	var points [][2]float64
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("cursor position %q: want x,y", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("cursor position %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("cursor position %q: %w", pair, err)
		}
		points = append(points, [2]float64{x, y})
	}
	return points, nil
}
