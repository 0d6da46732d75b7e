package chiptune

import (
	"math"
	"strings"
	"time"
)

// Mode is the scale flavor of a composition.
type Mode int

const (
	Major Mode = iota
	Minor
)

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}
	return "major"
}

// Rest marks an empty slot in a lane pattern.
const Rest = -1

const (
	phi       = 1.6180339887498949
	majorBias = 0.72 // probability of drawing the major mode
)

// Key root register band (note numbers, A4=69 convention).
const (
	rootLow  = 48
	rootHigh = 59
)

// The four progression templates, cycled across bars.
var progressions = [][]string{
	{"I", "vi", "IV", "V"},
	{"I", "IV", "ii", "V"},
	{"I", "V", "vi", "IV"},
	{"I", "iii", "vi", "IV"},
}

// Scale-degree semitone tables, keyed by lowercased roman numeral. Minor
// remaps the major symbols to their natural-minor equivalents; the dominant
// additionally gets the harmonic-minor raise in buildProgression.
var (
	majorDegrees = map[string]int{"i": 0, "ii": 2, "iii": 4, "iv": 5, "v": 7, "vi": 9, "vii": 11}
	minorDegrees = map[string]int{"i": 0, "ii": 2, "iii": 3, "iv": 5, "v": 7, "vi": 8, "vii": 10}

	majorScale = []int{0, 2, 4, 5, 7, 9, 11}
	minorScale = []int{0, 2, 3, 5, 7, 8, 10}

	majorTriad = []int{0, 4, 7}
	minorTriad = []int{0, 3, 7}

	majorPentatonic = []int{0, 2, 4, 7, 9}
	minorPentatonic = []int{0, 3, 5, 7, 10}
)

// Melody note durations, in steps.
var melodyDurations = []int{2, 3, 5, 8}

// Tune is one composed loop: the chord progression plus four parallel note
// lanes of TotalSteps slots each. Lane slots hold a note number or Rest.
type Tune struct {
	Config      Config
	Mode        Mode
	Root        int
	Progression []int // one chord root per bar

	Melody  []int
	Harmony []int
	Bass    []int
	Pad     []int

	rng        *Rand
	renderSeed uint64
}

// Compose builds a tune for cfg. Identical configs with a nonzero seed
// produce identical tunes.
func Compose(cfg Config) (*Tune, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := NewRand(seed)

	mode := Major
	if !rng.Chance(majorBias) {
		mode = Minor
	}
	root := rng.Range(rootLow, rootHigh)
	template := progressions[rng.Intn(len(progressions))]

	t := &Tune{
		Config:      cfg,
		Mode:        mode,
		Root:        root,
		Progression: buildProgression(root, mode, template, cfg.Bars),
		rng:         rng,
	}
	total := cfg.TotalSteps()
	t.Melody = t.buildMelody(total)
	t.Harmony = t.buildHarmony(total)
	t.Bass = t.buildBass(total)
	t.Pad = t.buildPad(total)

	// Freeze the stream position so repeated renders of this tune are
	// byte-identical.
	t.renderSeed = rng.s
	return t, nil
}

// buildProgression cycles the template across bars, mapping each numeral
// through the mode's degree table. Minor borrows the harmonic-minor
// dominant: the v chord's root is raised one semitone.
func buildProgression(root int, mode Mode, template []string, bars int) []int {
	degrees := majorDegrees
	if mode == Minor {
		degrees = minorDegrees
	}
	prog := make([]int, 0, bars)
	for bar := 0; bar < bars; bar++ {
		sym := strings.ToLower(template[bar%len(template)])
		offset := degrees[sym]
		if mode == Minor && sym == "v" {
			offset++
		}
		prog = append(prog, root+offset)
	}
	return prog
}

func (t *Tune) scaleIntervals() []int {
	if t.Mode == Minor {
		return minorScale
	}
	return majorScale
}

// chordTones returns the triad pitches of the given bar's chord.
func (t *Tune) chordTones(bar int) []int {
	triad := majorTriad
	if t.Mode == Minor {
		triad = minorTriad
	}
	tones := make([]int, len(triad))
	for i, iv := range triad {
		tones[i] = t.Progression[bar] + iv
	}
	return tones
}

// buildMelody walks in phrases of roughly StepsPerBar*phi steps. Each note
// draws a duration from the Fibonacci-ish set weighted toward longer values,
// then a pitch weighted toward the bar's chord tones and small intervals,
// windowed to at most seven semitones in the current direction. Phrases end
// with a short rest and a fresh direction.
func (t *Tune) buildMelody(total int) []int {
	pattern := makeRest(total)
	if total == 0 {
		return pattern
	}
	phraseLen := int(math.Round(float64(t.Config.StepsPerBar) * phi))
	if phraseLen < 1 {
		phraseLen = 1
	}

	step := 0
	prev := t.Root + 12
	dir := t.randDirection()
	for step < total {
		phraseEnd := step + phraseLen
		if phraseEnd > total {
			phraseEnd = total
		}
		for step < phraseEnd {
			dur := t.pickDuration(phraseEnd - step)
			bar := step / t.Config.StepsPerBar
			note := t.pickMelodyNote(bar, prev, dir)
			for i := 0; i < dur && step < phraseEnd; i++ {
				pattern[step] = note
				step++
			}
			prev = note
			if t.rng.Chance(1.0 / (2.0 * phi)) {
				dir = -dir
			}
		}
		if step >= total {
			break
		}
		rest := t.pickDuration(total - step)
		if half := t.Config.StepsPerBar / 2; rest > half {
			rest = half
		}
		if rest < 1 {
			rest = 1
		}
		step += rest
		dir = t.randDirection()
	}
	return pattern
}

func (t *Tune) randDirection() int {
	if t.rng.Chance(0.5) {
		return 1
	}
	return -1
}

// pickDuration draws from the duration set, clamped to remain, weighting
// longer values by d^(1/phi).
func (t *Tune) pickDuration(remain int) int {
	cands := make([]int, 0, len(melodyDurations))
	weights := make([]float64, 0, len(melodyDurations))
	for _, d := range melodyDurations {
		if d > remain {
			d = remain
		}
		cands = append(cands, d)
		weights = append(weights, math.Pow(float64(d), 1/phi))
	}
	return cands[t.rng.WeightedIndex(weights)]
}

// pickMelodyNote draws the next pitch from the scale notes around the key
// root. Chord tones of the current bar weigh phi times a plain scale note,
// pentatonic degrees get a smaller boost, and large leaps from the previous
// note are penalized. Candidates outside the directional window are dropped;
// if the window filters everything away the unfiltered set is used instead
// of giving up.
func (t *Tune) pickMelodyNote(bar, prev, dir int) int {
	scale := t.scaleIntervals()
	all := make([]int, 0, 24)
	for p := t.Root - 12; p <= t.Root+24; p++ {
		if hasDegree(scale, degreeOf(p, t.Root)) {
			all = append(all, p)
		}
	}
	cands := make([]int, 0, len(all))
	for _, p := range all {
		d := (p - prev) * dir
		if d >= 0 && d <= 7 {
			cands = append(cands, p)
		}
	}
	if len(cands) == 0 {
		cands = all
	}

	chordRoot := t.Progression[bar]
	triad := majorTriad
	if t.Mode == Minor {
		triad = minorTriad
	}
	pent := majorPentatonic
	if t.Mode == Minor {
		pent = minorPentatonic
	}
	weights := make([]float64, len(cands))
	for i, p := range cands {
		w := 1.0
		if hasDegree(triad, degreeOf(p, chordRoot)) {
			w *= phi
		}
		if hasDegree(pent, degreeOf(p, t.Root)) {
			w *= 1.2
		}
		w /= 1.0 + math.Abs(float64(p-prev))/6.0
		weights[i] = w
	}
	return cands[t.rng.WeightedIndex(weights)]
}

// buildHarmony sustains one chord tone an octave and a fifth up for a whole
// bar, or leaves the bar silent one time in four.
func (t *Tune) buildHarmony(total int) []int {
	pattern := makeRest(total)
	steps := t.Config.StepsPerBar
	for bar := 0; bar < t.Config.Bars && bar*steps < total; bar++ {
		if t.rng.Chance(0.25) {
			continue
		}
		tones := t.chordTones(bar)
		note := tones[t.rng.Intn(len(tones))] + 19
		for s := bar * steps; s < (bar+1)*steps && s < total; s++ {
			pattern[s] = note
		}
	}
	return pattern
}

// buildBass lays the chord root an octave down with fixed accents on the
// bar's first, middle and last steps, sparse syncopated walking notes on the
// off-beats in between.
func (t *Tune) buildBass(total int) []int {
	pattern := makeRest(total)
	steps := t.Config.StepsPerBar
	walk := []int{0, 5, 7, 12}
	for bar := 0; bar < t.Config.Bars && bar*steps < total; bar++ {
		root := t.Progression[bar] - 12
		base := bar * steps
		pattern[base] = root
		if steps >= 2 {
			pattern[base+steps/2] = root + 7
			pattern[base+steps-1] = root
		}
		for s := 1; s < steps-1; s++ {
			if pattern[base+s] != Rest {
				continue
			}
			if s%3 == 1 && t.rng.Chance(0.35) {
				pattern[base+s] = root + walk[t.rng.Intn(len(walk))]
			} else if t.rng.Chance(0.1) {
				pattern[base+s] = root
			}
		}
	}
	return pattern
}

// buildPad sustains a high chord tone across the bar, skipping one bar in
// five; a sustained bar may instead release early for a swell effect.
func (t *Tune) buildPad(total int) []int {
	pattern := makeRest(total)
	steps := t.Config.StepsPerBar
	for bar := 0; bar < t.Config.Bars && bar*steps < total; bar++ {
		if t.rng.Chance(0.2) {
			continue
		}
		tones := t.chordTones(bar)
		note := tones[t.rng.Intn(len(tones))] + 24
		span := steps
		if steps >= 4 && t.rng.Chance(0.4) {
			span = steps - steps/4
		}
		for s := 0; s < span; s++ {
			pattern[bar*steps+s] = note
		}
	}
	return pattern
}

func makeRest(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = Rest
	}
	return p
}

// degreeOf folds the interval between a pitch and a root into one octave.
func degreeOf(pitch, root int) int {
	d := (pitch - root) % 12
	if d < 0 {
		d += 12
	}
	return d
}

func hasDegree(set []int, deg int) bool {
	for _, v := range set {
		if v == deg {
			return true
		}
	}
	return false
}
