package board

import "strings"

// Ease maps linear progress t in [0,1] to eased progress.
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

// EaseInOut is smoothstep: slow at both ends, symmetric about t=0.5.
func EaseInOut(t float64) float64 { return t * t * (3 - 2*t) }

// EaseByName resolves "linear" or "ease-in-out"; anything else is linear.
func EaseByName(name string) Ease {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ease-in-out":
		return EaseInOut
	default:
		return Linear
	}
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Tween interpolates From→To over Frames ticks.
type Tween struct {
	From   float64
	To     float64
	Frames int
	Ease   Ease
}

// At returns the value after frame ticks. Frames <= 0 jumps straight to To.
func (tw Tween) At(frame int) float64 {
	if tw.Frames <= 0 {
		return tw.To
	}
	t := float64(frame) / float64(tw.Frames)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	return Lerp(tw.From, tw.To, ease(t))
}

func (tw Tween) Done(frame int) bool {
	return frame >= tw.Frames
}
