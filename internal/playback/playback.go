// Package playback previews a rendered timeline through the default
// speaker. Generation never depends on it; it exists for checking a pattern
// by ear before handing the files to the analyzer.
package playback

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// bufferStreamer adapts a mono float64 timeline to beep's stereo stream.
type bufferStreamer struct {
	samples []float64
	pos     int
}

func (b *bufferStreamer) Stream(out [][2]float64) (int, bool) {
	if b.pos >= len(b.samples) {
		return 0, false
	}
	n := 0
	for i := range out {
		if b.pos >= len(b.samples) {
			break
		}
		s := b.samples[b.pos]
		out[i][0] = s
		out[i][1] = s
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error { return nil }

// Play blocks until the whole timeline has been heard.
func Play(samples []float64, sampleRate int) error {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return err
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(&bufferStreamer{samples: samples}, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}
