package chiptune

import (
	"math"
	"testing"
)

func TestNoteFreq(t *testing.T) {
	cases := []struct {
		note int
		want float64
	}{
		{69, 440},
		{81, 880},
		{57, 220},
		{60, 261.6255653},
	}
	for _, c := range cases {
		if got := noteFreq(c.note); math.Abs(got-c.want) > 0.001 {
			t.Errorf("noteFreq(%d) = %f, want %f", c.note, got, c.want)
		}
	}
}

func TestVoice_OutputBounded(t *testing.T) {
	rng := NewRand(42)
	for _, kind := range []waveKind{waveSquare, waveTriangle, waveSine} {
		v := newVoice(rng, kind, 69, 22050, 8)
		for i := 0; i < 5000; i++ {
			s := v.next()
			if s < -1.0001 || s > 1.0001 {
				t.Fatalf("wave %d sample %d = %f out of range", kind, i, s)
			}
		}
	}
}

func TestTri_Endpoints(t *testing.T) {
	if got := tri(0, 0.5); math.Abs(got-(-1)) > 1e-9 {
		t.Errorf("tri(0) = %f, want -1", got)
	}
	if got := tri(0.5, 0.5); math.Abs(got-1) > 1e-9 {
		t.Errorf("tri(0.5) = %f, want 1", got)
	}
	// Skewed peak moves with the skew parameter.
	if got := tri(0.3, 0.3); math.Abs(got-1) > 1e-9 {
		t.Errorf("tri at skew point = %f, want 1", got)
	}
}

func TestPulse_DutyCycle(t *testing.T) {
	high := 0
	const n = 1000
	for i := 0; i < n; i++ {
		if pulse(float64(i)/n, 0.25) > 0 {
			high++
		}
	}
	if high < 240 || high > 260 {
		t.Errorf("duty 0.25 pulse high for %d/%d samples", high, n)
	}
}

func TestEnvelope_Shape(t *testing.T) {
	env := newEnvelope(1000, 0.1, 0.2, 0.8)

	if got := env.at(0); got != 0 {
		t.Errorf("attack start gain %f, want 0", got)
	}
	if got := env.at(500); got != 0.8 {
		t.Errorf("sustain gain %f, want 0.8", got)
	}
	if got := env.at(999); got > 0.01 {
		t.Errorf("release tail gain %f, want near 0", got)
	}
	// Attack ramps monotonically.
	prev := -1.0
	for i := 0; i < 100; i++ {
		g := env.at(i)
		if g < prev {
			t.Fatalf("attack not monotonic at sample %d", i)
		}
		prev = g
	}
	// Gain never exceeds the sustain level.
	for i := 0; i < 1000; i++ {
		if g := env.at(i); g < 0 || g > 0.8 {
			t.Fatalf("gain %f at sample %d outside [0, 0.8]", g, i)
		}
	}
}

func TestEnvelope_ZeroAttack(t *testing.T) {
	env := newEnvelope(100, 0, 0.5, 1)
	if got := env.at(0); got != 1 {
		t.Errorf("zero-attack gain at 0 = %f, want 1", got)
	}
}
