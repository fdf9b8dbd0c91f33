package vis

import "time"

// Playback manages schedule playback timing over the discrete plan.
type Playback struct {
	CurrentTime float64 // current playback time in steps
	MaxTime     float64 // solution makespan
	Speed       float64 // steps per second
	Playing     bool
	lastUpdate  time.Time
}

// NewPlayback creates a paused playback over makespan steps.
func NewPlayback(makespan int) *Playback {
	return &Playback{
		MaxTime: float64(makespan),
		Speed:   2.0,
	}
}

// TogglePlay toggles playback on/off.
func (p *Playback) TogglePlay() {
	p.Playing = !p.Playing
	if p.Playing {
		p.lastUpdate = time.Now()
		if p.CurrentTime >= p.MaxTime {
			p.CurrentTime = 0
		}
	}
}

// Reset rewinds to the start.
func (p *Playback) Reset() {
	p.CurrentTime = 0
	p.Playing = false
}

// Advance moves the clock by the wall time since the last update.
func (p *Playback) Advance() {
	if !p.Playing {
		return
	}
	now := time.Now()
	p.CurrentTime += now.Sub(p.lastUpdate).Seconds() * p.Speed
	p.lastUpdate = now
	if p.CurrentTime >= p.MaxTime {
		p.CurrentTime = p.MaxTime
		p.Playing = false
	}
}

// SetTime clamps and sets the playback time.
func (p *Playback) SetTime(t float64) {
	if t < 0 {
		t = 0
	}
	if t > p.MaxTime {
		t = p.MaxTime
	}
	p.CurrentTime = t
}

// StepForward pauses and advances one step.
func (p *Playback) StepForward() {
	p.Playing = false
	p.SetTime(p.CurrentTime + 1)
}

// StepBack pauses and rewinds one step.
func (p *Playback) StepBack() {
	p.Playing = false
	p.SetTime(p.CurrentTime - 1)
}

// Progress returns playback position as 0-1.
func (p *Playback) Progress() float64 {
	if p.MaxTime <= 0 {
		return 0
	}
	return p.CurrentTime / p.MaxTime
}
