package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/badgerhoneymoon/r-pattern/internal/catalog"
	"github.com/badgerhoneymoon/r-pattern/internal/config"
	"github.com/badgerhoneymoon/r-pattern/internal/generator"
	"github.com/badgerhoneymoon/r-pattern/internal/logging"
	"github.com/badgerhoneymoon/r-pattern/internal/playback"
	"github.com/badgerhoneymoon/r-pattern/internal/synth"
)

func main() {
	cfg := config.Load()

	outDir := flag.String("out", cfg.OutputDir, "output directory for generated WAV files")
	duration := flag.Float64("duration", cfg.ClipDuration, "clip duration in seconds")
	rate := flag.Int("rate", cfg.SampleRate, "sample rate in Hz")
	seed := flag.Int64("seed", cfg.Seed, "random seed, 0 = non-deterministic")
	list := flag.Bool("list", false, "list available patterns and exit")
	only := flag.String("only", "", "generate a single named pattern")
	play := flag.String("play", "", "preview a named pattern through the speaker instead of writing files")
	flag.Parse()

	cfg.OutputDir = *outDir
	cfg.ClipDuration = *duration
	cfg.SampleRate = *rate
	cfg.Seed = *seed

	if err := logging.InitFromEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := run(cfg, *list, *only, *play); err != nil {
		logging.Errorf("%v", err)
		logging.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, list bool, only, play string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	patterns := catalog.Patterns()
	if err := catalog.Validate(patterns); err != nil {
		return err
	}

	if list {
		for _, p := range patterns {
			fmt.Printf("%-28s %3d BPM  %s\n", p.Name, p.BPM, p.Description)
		}
		return nil
	}

	params := synth.Params{
		SampleRate:     cfg.SampleRate,
		ClipDuration:   cfg.ClipDuration,
		ClickDuration:  cfg.ClickDuration,
		ClickFrequency: cfg.ClickFrequency,
		MixGain:        cfg.MixGain,
	}
	gen := generator.New(cfg.OutputDir, params, cfg.Seed)

	if play != "" {
		p, err := catalog.Find(patterns, play)
		if err != nil {
			return err
		}
		logging.Infof("playing %s (%d BPM)", p.Name, p.BPM)
		return playback.Play(gen.Render(p), cfg.SampleRate)
	}

	if only != "" {
		p, err := catalog.Find(patterns, only)
		if err != nil {
			return err
		}
		patterns = []catalog.Pattern{p}
	}

	results, err := gen.Run(patterns)
	ok := 0
	for _, r := range results {
		if r.Err == nil {
			ok++
		}
	}
	logging.Infof("generated %d of %d files in %s", ok, len(patterns), cfg.OutputDir)
	return err
}
