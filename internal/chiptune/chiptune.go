// Package chiptune composes and renders a short loopable background track.
//
// Composition and rendering are a single bounded computation: given a seed,
// tempo and bar layout, Compose builds a chord progression plus four parallel
// note lanes (melody, harmony, bass, pad), and PCM renders them to a mono
// 16-bit buffer through per-voice oscillators and step envelopes. Every
// random draw comes from one seeded stream, so a fixed config produces
// byte-identical output on every run.
package chiptune

import (
	"errors"
	"fmt"
	"math"
)

// Output format.
const (
	Channels     = 1
	BytesPerSamp = 2 // signed 16-bit little-endian
)

// ErrInvalidConfig marks a caller contract violation in the render config.
var ErrInvalidConfig = errors.New("chiptune: invalid config")

// Config describes one rendered loop.
type Config struct {
	SampleRate  int
	BPM         int
	Bars        int
	StepsPerBar int
	// Seed selects the composition. Zero means seed from the clock, which
	// gives a fresh, non-reproducible tune per session.
	Seed uint64
}

// DefaultConfig is the tune the game ships with: a laid-back 82 BPM loop.
func DefaultConfig() Config {
	return Config{SampleRate: 22050, BPM: 82, Bars: 12, StepsPerBar: 8}
}

func (c Config) validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.BPM <= 0 {
		return fmt.Errorf("%w: bpm %d", ErrInvalidConfig, c.BPM)
	}
	if c.Bars < 0 || c.StepsPerBar < 0 {
		return fmt.Errorf("%w: bars %d, steps per bar %d", ErrInvalidConfig, c.Bars, c.StepsPerBar)
	}
	return nil
}

// TotalSteps is the pattern length across all bars. Zero bars or zero steps
// per bar is a legal degenerate config and renders an empty buffer.
func (c Config) TotalSteps() int { return c.Bars * c.StepsPerBar }

// SamplesPerStep is the sample count of one pattern step. A bar always spans
// four beats, so a step lasts 4/StepsPerBar of a beat.
func (c Config) SamplesPerStep() int {
	if c.StepsPerBar <= 0 {
		return 1
	}
	beat := float64(c.SampleRate) * 60.0 / float64(c.BPM)
	n := int(math.Round(beat / (float64(c.StepsPerBar) / 4.0)))
	if n < 1 {
		n = 1
	}
	return n
}

// RenderLoop composes a tune for cfg and renders it in one call. This is the
// whole external contract of the package: bytes in 16-bit LE mono, length
// exactly TotalSteps * SamplesPerStep * BytesPerSamp.
func RenderLoop(cfg Config) ([]byte, error) {
	t, err := Compose(cfg)
	if err != nil {
		return nil, err
	}
	return t.PCM(), nil
}
