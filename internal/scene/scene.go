// Package scene holds the render loop's view of the showcase: a frame clock
// and a camera rig with one waypoint per section. It never touches section
// visibility.
package scene

import (
	"fmt"
	"time"
)

// Vec3 is a point or direction in scene space
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", v.X, v.Y, v.Z)
}

// Waypoint is where the camera sits while a section is shown
type Waypoint struct {
	Position Vec3
	LookAt   Vec3
}

// Camera is the current camera placement
type Camera struct {
	Position Vec3
	LookAt   Vec3
}

// Rig places the camera on the waypoint of the active section
type Rig struct {
	camera    Camera
	waypoints map[int]Waypoint
}

// NewRig creates a rig; waypoints are indexed 1..N
func NewRig(waypoints []Waypoint) *Rig {
	r := &Rig{waypoints: make(map[int]Waypoint, len(waypoints))}
	for i, wp := range waypoints {
		r.waypoints[i+1] = wp
	}
	r.Focus(1)
	return r
}

// Focus snaps the camera to a section's waypoint.
// Sections without a waypoint leave the camera where it is.
func (r *Rig) Focus(section int) bool {
	wp, ok := r.waypoints[section]
	if !ok {
		return false
	}
	r.camera = Camera{Position: wp.Position, LookAt: wp.LookAt}
	return true
}

// Camera returns the current placement
func (r *Rig) Camera() Camera {
	return r.camera
}

// Readout formats the camera like the on-screen position/look-at spans
func (r *Rig) Readout() string {
	c := r.Camera()
	return fmt.Sprintf("Position: %s  LookAt: %s", c.Position, c.LookAt)
}

// Clock tracks elapsed time across frames
type Clock struct {
	start   time.Time
	last    time.Time
	delta   time.Duration
	frames  int
	started bool
}

// Tick records a frame at now and returns the time since the previous frame
func (c *Clock) Tick(now time.Time) time.Duration {
	if !c.started {
		c.start = now
		c.last = now
		c.started = true
	}
	c.delta = now.Sub(c.last)
	c.last = now
	c.frames++
	return c.delta
}

// Elapsed returns the time since the first frame
func (c *Clock) Elapsed() time.Duration {
	return c.last.Sub(c.start)
}

// Frames returns the number of ticks seen
func (c *Clock) Frames() int {
	return c.frames
}

// FPS returns the instantaneous frame rate, 0 before two frames
func (c *Clock) FPS() float64 {
	if c.delta <= 0 {
		return 0
	}
	return float64(time.Second) / float64(c.delta)
}
