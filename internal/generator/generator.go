// Package generator drives the fixture pipeline: one rendered and encoded
// WAV file per catalog entry.
package generator

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/badgerhoneymoon/r-pattern/internal/catalog"
	"github.com/badgerhoneymoon/r-pattern/internal/logging"
	"github.com/badgerhoneymoon/r-pattern/internal/synth"
	"github.com/badgerhoneymoon/r-pattern/internal/wav"
)

// Result records the outcome of one catalog entry.
type Result struct {
	Pattern catalog.Pattern
	Path    string
	Err     error
}

// Generator renders catalog patterns into WAV files under one output
// directory.
type Generator struct {
	outputDir string
	params    synth.Params
	rng       *rand.Rand
}

// New creates a generator. Seed 0 keeps ambient entropy, so repeated runs
// produce different click noise; any other seed makes output files
// bit-reproducible.
func New(outputDir string, params synth.Params, seed int64) *Generator {
	g := &Generator{outputDir: outputDir, params: params}
	if seed != 0 {
		g.rng = rand.New(rand.NewSource(seed))
	}
	return g
}

// Render synthesizes the full timeline for one pattern.
func (g *Generator) Render(p catalog.Pattern) []float64 {
	return synth.RenderPattern(p.Offsets, p.BPM, g.params, g.rng)
}

// Run renders and encodes every pattern, creating the output directory
// first. A failed entry is recorded and the loop moves on to the next one;
// the returned error summarizes how many entries failed.
func (g *Generator) Run(patterns []catalog.Pattern) ([]Result, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", g.outputDir, err)
	}

	results := make([]Result, 0, len(patterns))
	failed := 0
	for _, p := range patterns {
		path := filepath.Join(g.outputDir, p.Name+".wav")
		logging.Infof("rendering %s - %s (%d BPM)", p.Name, p.Description, p.BPM)

		timeline := g.Render(p)
		err := wav.WriteFile(path, timeline, g.params.SampleRate)
		if err != nil {
			failed++
			logging.Errorf("encode %s: %v", p.Name, err)
		} else {
			logging.Infof("wrote %s", path)
		}
		results = append(results, Result{Pattern: p, Path: path, Err: err})
	}

	if failed > 0 {
		return results, fmt.Errorf("%d of %d patterns failed", failed, len(patterns))
	}
	return results, nil
}
