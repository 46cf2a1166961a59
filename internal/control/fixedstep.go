package control

import "time"

// FixedStep converts variable frame times into a whole number of fixed
// updates. At most MaxPerFrame updates are returned for one frame; the
// backlog beyond that is dropped so a stalled frame cannot snowball.
type FixedStep struct {
	Interval    time.Duration
	MaxPerFrame int
	acc         time.Duration
}

func NewFixedStep(perSecond, maxPerFrame int) *FixedStep {
	return &FixedStep{
		Interval:    time.Second / time.Duration(max(perSecond, 1)),
		MaxPerFrame: max(maxPerFrame, 1),
	}
}

// Advance adds elapsed frame time and returns how many updates are due.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		f.acc += elapsed
	}
	n := int(f.acc / f.Interval)
	f.acc -= time.Duration(n) * f.Interval
	if n > f.MaxPerFrame {
		n = f.MaxPerFrame
		f.acc = 0
	}
	return n
}
