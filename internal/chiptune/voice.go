package chiptune

import "math"

// waveKind selects a voice's oscillator family.
type waveKind int

const (
	waveSquare waveKind = iota // pulse pair plus sub oscillator
	waveTriangle
	waveSine
)

// voice is the ephemeral oscillator state for one note within one step. The
// phase accumulators run in cycles, not radians.
type voice struct {
	kind     waveKind
	phase    float64
	subPhase float64
	inc      float64 // cycles per sample
	duty     float64 // primary pulse width
	duty2    float64
	skew     float64 // triangle peak position, 0..1
	vibPhase float64
	vibInc   float64
	vibDepth float64
}

// newVoice builds a voice for the given note with a random phase, a few
// cents of detune and a slow vibrato. All draws come off the composer's
// stream so renders stay reproducible.
func newVoice(rng *Rand, kind waveKind, note, sampleRate int, detuneCents float64) *voice {
	freq := noteFreq(note)
	freq *= math.Pow(2, rng.RangeF(-detuneCents, detuneCents)/1200)
	return &voice{
		kind:     kind,
		phase:    rng.Float64(),
		subPhase: rng.Float64(),
		inc:      freq / float64(sampleRate),
		duty:     rng.RangeF(0.42, 0.5),
		duty2:    rng.RangeF(0.22, 0.3),
		skew:     rng.RangeF(0.4, 0.6),
		vibPhase: rng.Float64(),
		vibInc:   rng.RangeF(3.5, 5.5) / float64(sampleRate),
		vibDepth: rng.RangeF(0.0015, 0.003),
	}
}

// next advances the oscillator one sample and returns its value in [-1, 1].
// Vibrato modulates the phase increment multiplicatively.
func (v *voice) next() float64 {
	vib := 1 + v.vibDepth*math.Sin(2*math.Pi*v.vibPhase)
	v.vibPhase += v.vibInc
	if v.vibPhase >= 1 {
		v.vibPhase--
	}
	v.phase += v.inc * vib
	if v.phase >= 1 {
		v.phase -= math.Floor(v.phase)
	}
	v.subPhase += v.inc * vib * 0.5
	if v.subPhase >= 1 {
		v.subPhase -= math.Floor(v.subPhase)
	}

	switch v.kind {
	case waveSquare:
		s := pulse(v.phase, v.duty)*0.6 + pulse(v.phase, v.duty2)*0.25
		return s + pulse(v.subPhase, 0.5)*0.15
	case waveTriangle:
		return tri(v.phase, v.skew)
	default:
		return math.Sin(2 * math.Pi * v.phase)
	}
}

// pulse is a square wave with adjustable duty cycle.
func pulse(phase, duty float64) float64 {
	if phase < duty {
		return 1
	}
	return -1
}

// tri is a piecewise-linear triangle whose peak sits at skew.
func tri(phase, skew float64) float64 {
	if phase < skew {
		return -1 + 2*phase/skew
	}
	return 1 - 2*(phase-skew)/(1-skew)
}

// envelope is a linear attack/sustain/release gain shape over one step.
type envelope struct {
	attack  int // samples
	release int
	sustain float64
	length  int
}

func newEnvelope(length int, attackFrac, releaseFrac, sustain float64) envelope {
	return envelope{
		attack:  int(float64(length) * attackFrac),
		release: int(float64(length) * releaseFrac),
		sustain: sustain,
		length:  length,
	}
}

// at returns the gain for sample i of the step: ramp up over the attack,
// hold, ramp down over the release tail.
func (e envelope) at(i int) float64 {
	if e.attack > 0 && i < e.attack {
		return e.sustain * float64(i) / float64(e.attack)
	}
	if tail := e.length - e.release; e.release > 0 && i >= tail {
		return e.sustain * float64(e.length-i) / float64(e.release)
	}
	return e.sustain
}

// noteFreq converts a note number to Hz, equal tempered with 69 at 440 Hz.
func noteFreq(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
