package chiptune

import "encoding/binary"

// laneParams are the per-lane synthesis settings: waveform family, mix
// weight, envelope fractions and detune spread. The melody gets the
// brightest voice and a quick attack; the pad swells in slowly and hangs
// over the step tail; the bass is near-instant with the heaviest detune.
type laneParams struct {
	wave    waveKind
	mix     float64
	attack  float64
	release float64
	sustain float64
	detune  float64 // max detune, cents
}

var lanes = [4]laneParams{
	{wave: waveSquare, mix: 0.42, attack: 0.04, release: 0.22, sustain: 0.85, detune: 4},  // melody
	{wave: waveTriangle, mix: 0.28, attack: 0.12, release: 0.25, sustain: 0.7, detune: 5}, // harmony
	{wave: waveTriangle, mix: 0.32, attack: 0.01, release: 0.18, sustain: 0.8, detune: 9}, // bass
	{wave: waveSine, mix: 0.22, attack: 0.3, release: 0.4, sustain: 0.6, detune: 6},       // pad
}

// clipLevel leaves headroom below full scale; anything louder is hard
// clamped, never an error.
const clipLevel = 0.95

// PCM renders the tune to interleaved little-endian signed 16-bit mono
// samples, one concatenated block per step. Rendering the same tune twice
// yields the same bytes.
func (t *Tune) PCM() []byte {
	total := t.Config.TotalSteps()
	if total == 0 {
		return []byte{}
	}
	spp := t.Config.SamplesPerStep()
	rng := &Rand{s: t.renderSeed}
	patterns := [4][]int{t.Melody, t.Harmony, t.Bass, t.Pad}

	out := make([]byte, 0, total*spp*BytesPerSamp)
	block := make([]float64, spp)
	for step := 0; step < total; step++ {
		for i := range block {
			block[i] = 0
		}
		for li, pat := range patterns {
			note := pat[step]
			if note == Rest {
				continue
			}
			p := lanes[li]
			v := newVoice(rng, p.wave, note, t.Config.SampleRate, p.detune)
			env := newEnvelope(spp, p.attack, p.release, p.sustain)
			for i := 0; i < spp; i++ {
				block[i] += v.next() * env.at(i) * p.mix
			}
		}
		for i := 0; i < spp; i++ {
			s := clampF(block[i], -clipLevel, clipLevel)
			out = binary.LittleEndian.AppendUint16(out, uint16(int16(s*32767)))
		}
	}
	return out
}
