package synth

import (
	"math"
	"math/rand"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestRenderPatternLength(t *testing.T) {
	tests := []struct {
		name    string
		offsets []float64
		bpm     int
		dur     float64
		rate    int
		want    int
	}{
		{"quarter notes", []float64{0, 1, 2, 3}, 120, 8.0, 44100, 352800},
		{"off-beats", []float64{0.5, 1.5, 2.5, 3.5}, 130, 8.0, 44100, 352800},
		{"low rate", []float64{0, 1}, 100, 2.0, 8000, 16000},
		{"span exceeds clip", []float64{0, 1, 2, 3}, 10, 8.0, 44100, 352800},
		{"fractional samples", []float64{0}, 120, 1.5, 22051, 33077}, // 33076.5 rounds up
	}
	for _, tt := range tests {
		p := DefaultParams()
		p.SampleRate = tt.rate
		p.ClipDuration = tt.dur
		got := RenderPattern(tt.offsets, tt.bpm, p, testRNG())
		if len(got) != tt.want {
			t.Errorf("%s: timeline length = %d, want %d", tt.name, len(got), tt.want)
		}
	}
}

func TestRenderPatternSilentWhenSpanExceedsClip(t *testing.T) {
	// At 10 BPM one beat is 6 seconds, so a 4-beat pattern spans 30 seconds
	// and never fits an 8-second clip. Zero repetitions is accepted, not an
	// error.
	timeline := RenderPattern([]float64{0, 1, 2, 3}, 10, DefaultParams(), testRNG())
	for i, s := range timeline {
		if s != 0 {
			t.Fatalf("sample[%d] = %v, want silent timeline", i, s)
		}
	}
}

func TestRenderPatternOnsetPlacement(t *testing.T) {
	// [0,1,2,3] at 120 BPM: 0.5s per beat, span 2s, repetitions start at
	// 0, 2 and 4 (the loop stops once a start of 6 is reached). Onsets land
	// every half second through 5.5s.
	p := DefaultParams()
	timeline := RenderPattern([]float64{0, 1, 2, 3}, 120, p, testRNG())

	for k := 0; k < 12; k++ {
		onset := 0.5 * float64(k)
		if got := peakWindow(timeline, p.SampleRate, onset, onset+0.01); got < 0.1 {
			t.Errorf("expected click energy at %.1fs, peak = %v", onset, got)
		}
	}

	// Between a click's 50ms tail and the next onset the timeline is
	// exactly zero.
	if got := peakWindow(timeline, p.SampleRate, 0.1, 0.45); got != 0 {
		t.Errorf("expected silence between onsets, peak = %v", got)
	}

	// No repetition starts at 6s, so everything past the last click tail
	// (5.5s + 50ms) is silent.
	if got := peakWindow(timeline, p.SampleRate, 5.6, 8.0); got != 0 {
		t.Errorf("expected silence after final repetition, peak = %v", got)
	}
}

func TestRenderPatternOffBeatLeadsWithSilence(t *testing.T) {
	// [0.5,1.5,2.5,3.5] at 130 BPM puts the first onset at ~0.23s; every
	// repetition window opens with silence.
	p := DefaultParams()
	timeline := RenderPattern([]float64{0.5, 1.5, 2.5, 3.5}, 130, p, testRNG())

	if got := peakWindow(timeline, p.SampleRate, 0, 0.2); got != 0 {
		t.Errorf("expected silent lead-in, peak = %v", got)
	}
	firstOnset := 0.5 * 60.0 / 130.0
	if got := peakWindow(timeline, p.SampleRate, firstOnset, firstOnset+0.01); got < 0.1 {
		t.Errorf("expected click energy at first off-beat onset, peak = %v", got)
	}
}

func TestRenderPatternAccumulatesOverlaps(t *testing.T) {
	// A doubled onset mixes two clicks additively: the tone components add
	// in phase, so the peak roughly doubles against a single onset.
	p := DefaultParams()
	single := peak(RenderPattern([]float64{0}, 120, p, testRNG()))
	double := peak(RenderPattern([]float64{0, 0}, 120, p, testRNG()))

	if single > 0.5 {
		t.Errorf("single onset peak = %v, want under 0.5 at half gain", single)
	}
	if double < 0.5 {
		t.Errorf("doubled onset peak = %v, overlapping clicks did not accumulate", double)
	}
}

func peakWindow(timeline []float64, rate int, from, to float64) float64 {
	lo := int(math.Round(from * float64(rate)))
	hi := int(math.Round(to * float64(rate)))
	if hi > len(timeline) {
		hi = len(timeline)
	}
	return peak(timeline[lo:hi])
}
