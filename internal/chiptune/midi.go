package chiptune

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 480

// WriteSMF exports the four composed lanes as a standard MIDI file, one
// track per lane. Sustained runs of the same pitch become a single note.
func (t *Tune) WriteSMF(w io.Writer) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	total := t.Config.TotalSteps()
	ticksPerStep := uint32(ticksPerQuarter)
	if t.Config.StepsPerBar > 0 {
		ticksPerStep = uint32(ticksPerQuarter * 4 / t.Config.StepsPerBar)
	}
	if ticksPerStep == 0 {
		ticksPerStep = 1
	}

	type lane struct {
		name    string
		pattern []int
		channel uint8
	}
	all := []lane{
		{"melody", t.Melody, 0},
		{"harmony", t.Harmony, 1},
		{"bass", t.Bass, 2},
		{"pad", t.Pad, 3},
	}

	microsPerBeat := uint32(60000000 / t.Config.BPM)
	for i, ln := range all {
		var track smf.Track
		if i == 0 {
			track.Add(0, smf.Message([]byte{
				0xFF, 0x51, 0x03,
				byte(microsPerBeat >> 16),
				byte(microsPerBeat >> 8),
				byte(microsPerBeat),
			}))
			// 4/4 time signature
			track.Add(0, smf.Message([]byte{0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08}))
		}
		nameMsg := append([]byte{0xFF, 0x03, byte(len(ln.name))}, []byte(ln.name)...)
		track.Add(0, smf.Message(nameMsg))

		var currentTick uint32
		for step := 0; step < total; {
			note := ln.pattern[step]
			run := 1
			for step+run < total && ln.pattern[step+run] == note {
				run++
			}
			if note != Rest {
				startTick := uint32(step) * ticksPerStep
				track.Add(startTick-currentTick, midi.NoteOn(ln.channel, uint8(note), 96))
				duration := uint32(run) * ticksPerStep
				track.Add(duration, midi.NoteOff(ln.channel, uint8(note)))
				currentTick = startTick + duration
			}
			step += run
		}
		track.Close(0)
		if err := s.Add(track); err != nil {
			return fmt.Errorf("add %s track: %w", ln.name, err)
		}
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write midi: %w", err)
	}
	return nil
}
