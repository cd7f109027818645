package synth

import (
	"math"
	"math/rand"
)

const (
	envelopeDecay = 20.0 // exponential decay rate of the click envelope
	toneWeight    = 0.7
	noiseWeight   = 0.3
	noiseStddev   = 0.1
)

// Click synthesizes one percussive transient: a decaying sine with a little
// gaussian noise mixed in. The envelope starts at full amplitude (no attack
// ramp) so the onset lands exactly on the first sample.
//
// rng may be nil, in which case noise is drawn from the process-wide source
// and the click timbre differs run to run. Pass a seeded rng for
// reproducible fixtures.
func Click(p Params, rng *rand.Rand) []float64 {
	n := int(math.Round(float64(p.SampleRate) * p.ClickDuration))
	norm := rand.NormFloat64
	if rng != nil {
		norm = rng.NormFloat64
	}

	out := make([]float64, n)
	for i := range out {
		t := p.ClickDuration * float64(i) / float64(n)
		envelope := math.Exp(-envelopeDecay * t)
		tone := math.Sin(2 * math.Pi * p.ClickFrequency * t)
		noise := norm() * noiseStddev
		out[i] = (tone*toneWeight + noise*noiseWeight) * envelope
	}
	return out
}
