package core

import "time"

// Clock measures elapsed seconds since the last Start or Reset.
type Clock struct {
	now       func() time.Time
	startTime time.Time
	elapsed   float64
	running   bool
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if c.running {
		c.elapsed = c.now().Sub(c.startTime).Seconds()
	}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = c.now()
	c.elapsed = 0
	c.running = true
}

// Reset restarts the measurement without stopping the clock.
func (c *Clock) Reset() {
	c.Start()
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.running = false
}

func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Tick returns the seconds elapsed since the previous Tick (or Start) and
// restarts the measurement. This is the per-frame timestep.
func (c *Clock) Tick() float64 {
	c.Update()
	dt := c.elapsed
	c.Start()
	return dt
}
