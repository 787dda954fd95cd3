package engine

// Clock carries the two tick counters threaded through Step
// The caller owns the value; Step returns the advanced copy
type Clock struct {
	// Gravity counts ticks since the last serve launch or racket contact
	// and indexes the ball gravity table
	Gravity int
	// Tick is the global tick counter, seeding CPU swing timing
	Tick uint32
}

// Advance returns the clock moved on by one simulated tick
func (c Clock) Advance() Clock {
	c.Gravity++
	c.Tick++
	return c
}
