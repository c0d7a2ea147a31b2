package engine

import (
	"time"
)

// Pacer holds each frame to a target period using a monotonic clock.
// Clock and sleep are injected so tests can drive time
type Pacer struct {
	now    func() time.Duration
	sleep  func(time.Duration)
	period time.Duration
	start  time.Duration
}

// NewPacer creates an unpaced pacer, nil sleep uses time.Sleep
func NewPacer(now func() time.Duration, sleep func(time.Duration)) *Pacer {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Pacer{now: now, sleep: sleep}
}

// SetTargetFPS sets the period to 1e6/fps microseconds, fps <= 0 disables pacing
func (p *Pacer) SetTargetFPS(fps int) {
	if fps <= 0 {
		p.period = 0
		return
	}
	p.period = time.Duration(1_000_000/fps) * time.Microsecond
}

// Period returns the target frame duration, zero when unpaced
func (p *Pacer) Period() time.Duration {
	return p.period
}

// StartFrame records the frame start
func (p *Pacer) StartFrame() {
	p.start = p.now()
}

// Elapsed returns the time since StartFrame
func (p *Pacer) Elapsed() time.Duration {
	return p.now() - p.start
}

// Wait sleeps out the remainder of the frame period and returns the time actually slept.
// A sleep that returns early is resumed with the recomputed remainder
func (p *Pacer) Wait() time.Duration {
	if p.period == 0 {
		return 0
	}
	deadline := p.start + p.period
	before := p.now()
	for {
		now := p.now()
		remaining := deadline - now
		if remaining <= 0 {
			return now - before
		}
		p.sleep(remaining)
	}
}
