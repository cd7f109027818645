// Package synth renders click-track waveforms: short percussive transients
// placed on a timeline according to a beat pattern and tempo.
package synth

// Params holds the acoustic constants shared across the pipeline. A single
// instance flows through both the click synthesizer and the pattern
// sequencer so the click shape and the timeline always agree on sample rate.
type Params struct {
	SampleRate     int     // samples per second
	ClipDuration   float64 // seconds per rendered timeline
	ClickDuration  float64 // seconds per click transient
	ClickFrequency float64 // Hz
	MixGain        float64 // gain applied to each click when mixed in
}

// DefaultParams returns the fixture defaults: CD-rate mono, 8-second clips,
// 50ms 1kHz clicks mixed at half gain.
func DefaultParams() Params {
	return Params{
		SampleRate:     44100,
		ClipDuration:   8.0,
		ClickDuration:  0.05,
		ClickFrequency: 1000,
		MixGain:        0.5,
	}
}
