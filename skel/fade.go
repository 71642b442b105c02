package skel

import (
	"math"
	"time"
)

func Linear(t float64) float64 { return t }

func ExpDecay(t float64) float64 { return math.Exp(2 * math.Pi * -t) }

func ExpDrive(t float64) float64 { return 1 - math.Exp(2*math.Pi*-t) }

// Fader moves a blend factor toward a target over a duration.
type Fader struct {
	at, pt, to float64

	epoch  time.Time
	dur    time.Duration
	interp func(float64) float64
}

// Duration of each fade; zero jumps straight to the target.
func Duration(d time.Duration) func(*Fader) { return func(f *Fader) { f.dur = d } }

// Interp maps elapsed fraction [0, 1) to progress; defaults to ExpDrive.
func Interp(fn func(float64) float64) func(*Fader) { return func(f *Fader) { f.interp = fn } }

func NewFader(options ...func(*Fader)) *Fader {
	f := &Fader{
		dur:    500 * time.Millisecond,
		interp: ExpDrive,
	}
	for _, opt := range options {
		opt(f)
	}
	return f
}

// At returns the present blend factor.
func (f *Fader) At() float64 { return f.pt }

// To returns the staged target.
func (f *Fader) To() float64 { return f.to }

// Stage starts a fade from the present value to target at epoch.
func (f *Fader) Stage(epoch time.Time, to float64) {
	f.epoch = epoch
	f.at = f.pt
	f.to = to
}

// Step advances to now and returns the blend factor, and true while the
// fade is still in progress.
func (f *Fader) Step(now time.Time) (t float64, ok bool) {
	since := now.Sub(f.epoch)
	if since < 0 {
		since = 0
	}
	if ok = since < f.dur; ok {
		d := f.interp(float64(since) / float64(f.dur))
		f.pt = f.at + d*(f.to-f.at)
	} else {
		f.at = f.to
		f.pt = f.to
	}
	return f.pt, ok
}
