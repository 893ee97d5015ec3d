package testbed

import "github.com/spaghettifunk/prism/engine/math"

// camera looks from a fixed eye at a movable target. The view matrix is
// rebuilt lazily after the target changes.
type camera struct {
	eye    math.Vec3
	target math.Vec3
	dirty  bool
	view   math.Mat4
}

func newCamera(eye, target math.Vec3) *camera {
	return &camera{eye: eye, target: target, dirty: true}
}

func (c *camera) Eye() math.Vec3 {
	return c.eye
}

func (c *camera) Target() math.Vec3 {
	return c.target
}

func (c *camera) SetTarget(target math.Vec3) {
	c.target = target
	c.dirty = true
}

// Pan shifts the target in world space; the eye stays put.
func (c *camera) Pan(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	c.target.X += dx
	c.target.Y += dy
	c.dirty = true
}

func (c *camera) View() math.Mat4 {
	if c.dirty {
		c.view = math.NewMat4LookAt(c.eye, c.target, math.NewVec3Up())
		c.dirty = false
	}
	return c.view
}
