// Package catalog holds the embedded set of rhythm patterns the generator
// renders. Entries are pure configuration, validated once at startup.
package catalog

import "fmt"

// Pattern describes one named click-track fixture: a tempo plus the onset
// positions, in beats, of one bar of the rhythm.
type Pattern struct {
	Name        string
	Description string
	BPM         int
	Offsets     []float64
}

// Patterns returns the built-in fixture set: ten rhythms between 75 and
// 160 BPM, from plain quarter notes up to 16th-note runs, chosen to give a
// rhythm analyzer distinct ground truth to chew on.
func Patterns() []Pattern {
	return []Pattern{
		{
			Name:        "basic-rock-120bpm",
			Description: "Basic rock pattern - quarter notes",
			BPM:         120,
			Offsets:     []float64{0, 1, 2, 3},
		},
		{
			Name:        "eighth-notes-110bpm",
			Description: "Eighth note pattern",
			BPM:         110,
			Offsets:     []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5},
		},
		{
			Name:        "funk-syncopated-100bpm",
			Description: "Syncopated funk pattern",
			BPM:         100,
			Offsets:     []float64{0, 0.25, 0.75, 1, 1.5, 2, 2.25, 2.75, 3, 3.5},
		},
		{
			Name:        "triplet-feel-90bpm",
			Description: "Triplet-based pattern",
			BPM:         90,
			Offsets:     []float64{0, 0.667, 1.333, 2, 2.667, 3.333},
		},
		{
			Name:        "fast-metal-160bpm",
			Description: "Fast 16th note metal pattern",
			BPM:         160,
			Offsets:     []float64{0, 0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75, 2, 2.25, 2.5, 2.75, 3, 3.25, 3.5, 3.75},
		},
		{
			Name:        "off-beat-emphasis-130bpm",
			Description: "Pattern emphasizing off-beats",
			BPM:         130,
			Offsets:     []float64{0.5, 1.5, 2.5, 3.5},
		},
		{
			Name:        "complex-polyrhythm-140bpm",
			Description: "Complex polyrhythmic pattern",
			BPM:         140,
			Offsets:     []float64{0, 0.4, 0.8, 1.2, 1.6, 2, 2.4, 2.8, 3.2, 3.6},
		},
		{
			Name:        "reggae-skank-85bpm",
			Description: "Reggae upstroke pattern",
			BPM:         85,
			Offsets:     []float64{0.5, 1.5, 2.5, 3.5},
		},
		{
			Name:        "latin-clave-120bpm",
			Description: "Son clave pattern",
			BPM:         120,
			Offsets:     []float64{0, 0.5, 1.5, 2, 3},
		},
		{
			Name:        "shuffle-blues-75bpm",
			Description: "Shuffle rhythm with swing feel",
			BPM:         75,
			Offsets:     []float64{0, 0.667, 1.333, 2, 2.667, 3.333},
		},
	}
}

// Validate rejects entries that would send degenerate values into the
// synthesis pipeline: a zero tempo divides by zero and an empty pattern
// renders pure silence. Duplicate names would silently overwrite each
// other's output files.
func Validate(patterns []Pattern) error {
	seen := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		if p.Name == "" {
			return fmt.Errorf("pattern %q: empty name", p.Description)
		}
		if seen[p.Name] {
			return fmt.Errorf("pattern %q: duplicate name", p.Name)
		}
		seen[p.Name] = true
		if p.BPM <= 0 {
			return fmt.Errorf("pattern %q: bpm must be positive, got %d", p.Name, p.BPM)
		}
		if len(p.Offsets) == 0 {
			return fmt.Errorf("pattern %q: empty offset list", p.Name)
		}
		for _, off := range p.Offsets {
			if off < 0 {
				return fmt.Errorf("pattern %q: negative beat offset %v", p.Name, off)
			}
		}
	}
	return nil
}

// Find returns the pattern with the given name.
func Find(patterns []Pattern, name string) (Pattern, error) {
	for _, p := range patterns {
		if p.Name == name {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("unknown pattern %q", name)
}
