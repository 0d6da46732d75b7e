package chiptune

import (
	"bytes"
	"testing"

	"gitlab.com/gomidi/midi/v2/smf"
)

func TestWriteSMF_RoundTrip(t *testing.T) {
	cfg := Config{SampleRate: 22050, BPM: 96, Bars: 4, StepsPerBar: 8, Seed: 21}
	tune, err := Compose(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := tune.WriteSMF(&buf); err != nil {
		t.Fatal(err)
	}

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reading back the written file: %v", err)
	}
	if len(s.Tracks) != 4 {
		t.Fatalf("track count %d, want 4 (one per lane)", len(s.Tracks))
	}

	mt, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		t.Fatal("time format is not metric ticks")
	}
	if mt.Resolution() != ticksPerQuarter {
		t.Errorf("resolution %d, want %d", mt.Resolution(), ticksPerQuarter)
	}

	// At least one lane of a four-bar tune carries notes.
	noteOns := 0
	for _, track := range s.Tracks {
		for _, ev := range track {
			msg := []byte(ev.Message)
			if len(msg) >= 3 && msg[0]&0xF0 == 0x90 && msg[2] > 0 {
				noteOns++
			}
		}
	}
	if noteOns == 0 {
		t.Error("no note-on events in any lane")
	}
}

func TestWriteSMF_EmptyTune(t *testing.T) {
	cfg := Config{SampleRate: 22050, BPM: 96, Bars: 0, StepsPerBar: 8, Seed: 21}
	tune, err := Compose(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := tune.WriteSMF(&buf); err != nil {
		t.Fatalf("empty tune export: %v", err)
	}
	if _, err := smf.ReadFrom(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("reading back empty export: %v", err)
	}
}
