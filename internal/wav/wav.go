// Package wav serializes floating-point waveforms as mono 16-bit PCM
// RIFF/WAVE files.
package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	numChannels   = 1
	bitsPerSample = 16
	headerSize    = 44
)

// Quantize clamps one sample to [-1, 1] and scales it into int16 range.
// Out-of-range values from additive mixing are hard-clipped, not
// soft-limited.
func Quantize(s float64) int16 {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return int16(s * 32767)
}

// pcmBytes converts samples to quantized little-endian int16 bytes.
func pcmBytes(samples []float64) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(Quantize(s)))
	}
	return buf
}

// Encode writes samples to w as a standard RIFF/WAVE stream: RIFF header,
// 16-byte PCM fmt chunk, then the data chunk. Encoding is deterministic;
// the same samples always produce the same bytes.
func Encode(w io.Writer, samples []float64, sampleRate int) error {
	dataSize := len(samples) * numChannels * bitsPerSample / 8
	byteRate := sampleRate * numChannels * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8

	header := []any{
		[]byte("RIFF"),
		uint32(headerSize - 8 + dataSize),
		[]byte("WAVE"),
		[]byte("fmt "),
		uint32(16), // PCM fmt chunk size
		uint16(1),  // PCM format tag
		uint16(numChannels),
		uint32(sampleRate),
		uint32(byteRate),
		uint16(blockAlign),
		uint16(bitsPerSample),
		[]byte("data"),
		uint32(dataSize),
	}
	for _, v := range header {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("write wav header: %w", err)
		}
	}

	if _, err := w.Write(pcmBytes(samples)); err != nil {
		return fmt.Errorf("write wav data: %w", err)
	}
	return nil
}

// WriteFile encodes samples to the file at path, creating or overwriting it.
func WriteFile(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, samples, sampleRate); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
