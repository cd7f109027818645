package synth

import (
	"math"
	"math/rand"
)

// RenderPattern lays repeated copies of a beat pattern onto a silent timeline
// and mixes a click at every onset. Offsets are measured in beats from the
// start of one repetition; one repetition spans the last onset plus a buffer
// beat, so consecutive repetitions never collide in nominal onset time.
//
// The returned timeline always has round(SampleRate*ClipDuration) samples.
// A pattern whose span exceeds the clip renders as silence rather than an
// error. Overlapping clicks accumulate; amplitude is not clipped here, the
// encoder clamps on write.
func RenderPattern(offsets []float64, bpm int, p Params, rng *rand.Rand) []float64 {
	secondsPerBeat := 60.0 / float64(bpm)

	maxOffset := 0.0
	for _, off := range offsets {
		if off > maxOffset {
			maxOffset = off
		}
	}
	span := (maxOffset + 1) * secondsPerBeat

	timeline := make([]float64, int(math.Round(float64(p.SampleRate)*p.ClipDuration)))

	for start := 0.0; start < p.ClipDuration-span; start += span {
		for _, off := range offsets {
			onset := start + off*secondsPerBeat
			if onset >= p.ClipDuration {
				break
			}
			click := Click(p, rng)
			from := int(math.Round(onset * float64(p.SampleRate)))
			for i, s := range click {
				if from+i >= len(timeline) {
					break
				}
				timeline[from+i] += s * p.MixGain
			}
		}
	}
	return timeline
}
