// Package main is the entry point for the centaurus CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"centaurus/internal/audio"
	"centaurus/internal/chiptune"
	"centaurus/internal/game"
	"centaurus/internal/store"
	"centaurus/internal/tui"
)

var (
	dataFile string
	noMusic  bool

	seed        uint64
	bpm         int
	bars        int
	stepsPerBar int
	sampleRate  int

	wavOut  string
	midiOut string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "centaurus",
	Short: "Turn-based battle toy with a procedural chiptune soundtrack",
	Long: `centaurus pits a benevolent army against a malevolent one: pick unit
counts from each side's race catalog and compare total power. A procedural
chiptune loop, freshly composed per session (or reproducibly via --seed),
plays in the background.

Examples:
  centaurus
  centaurus --seed 42 --no-music
  centaurus export --seed 42 --wav theme.wav --midi theme.mid
  centaurus battle`,
	RunE: runPlay,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a tune to WAV and/or standard MIDI",
	RunE:  runExport,
}

var battleCmd = &cobra.Command{
	Use:   "battle",
	Short: "Resolve a battle from the saved rosters and print the result",
	RunE:  runBattle,
}

func init() {
	def := chiptune.DefaultConfig()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataFile, "data", "data/armies.json", "roster save file")
	pf.Uint64Var(&seed, "seed", 0, "composer seed (0 = pick from the clock)")
	pf.IntVar(&bpm, "bpm", def.BPM, "tune tempo")
	pf.IntVar(&bars, "bars", def.Bars, "tune length in bars")
	pf.IntVar(&stepsPerBar, "steps", def.StepsPerBar, "pattern steps per bar")
	pf.IntVar(&sampleRate, "rate", def.SampleRate, "render sample rate (Hz)")

	rootCmd.Flags().BoolVar(&noMusic, "no-music", false, "skip audio device setup")

	exportCmd.Flags().StringVar(&wavOut, "wav", "", "write the rendered loop to this WAV file")
	exportCmd.Flags().StringVar(&midiOut, "midi", "", "write the composed lanes to this MIDI file")

	rootCmd.AddCommand(exportCmd, battleCmd)
}

func tuneConfig() chiptune.Config {
	cfg := chiptune.Config{
		SampleRate:  sampleRate,
		BPM:         bpm,
		Bars:        bars,
		StepsPerBar: stepsPerBar,
		Seed:        seed,
	}
	if cfg.Seed == 0 {
		if env := os.Getenv("CENTAURUS_SEED"); env != "" {
			if v, err := strconv.ParseUint(env, 10, 64); err == nil {
				cfg.Seed = v
			}
		}
	}
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) error {
	var music game.MusicPlayer
	if !noMusic {
		cfg := tuneConfig()
		pcm, err := chiptune.RenderLoop(cfg)
		if err != nil {
			return err
		}
		session, err := audio.Open(cfg.SampleRate, pcm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		}
		defer session.Close()
		music = session
	}
	ctrl := game.NewController(store.NewJSONStore(dataFile), music)
	return tui.Run(ctrl)
}

func runExport(cmd *cobra.Command, args []string) error {
	if wavOut == "" && midiOut == "" {
		return fmt.Errorf("nothing to export: pass --wav and/or --midi")
	}
	cfg := tuneConfig()
	tune, err := chiptune.Compose(cfg)
	if err != nil {
		return err
	}
	if wavOut != "" {
		if err := writeFile(wavOut, func(f *os.File) error {
			return chiptune.WriteWAV(f, tune.PCM(), cfg.SampleRate)
		}); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%s, %d bars at %d BPM)\n", wavOut, tune.Mode, cfg.Bars, cfg.BPM)
	}
	if midiOut != "" {
		if err := writeFile(midiOut, func(f *os.File) error {
			return tune.WriteSMF(f)
		}); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", midiOut)
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runBattle(cmd *cobra.Command, args []string) error {
	ctrl := game.NewController(store.NewJSONStore(dataFile), nil)
	res, err := ctrl.SimulateBattle()
	if err != nil {
		return err
	}
	fmt.Printf("Good power: %d\nEvil power: %d\n%s\n", res.GoodPower, res.EvilPower, res.Outcome().Message())
	return nil
}
