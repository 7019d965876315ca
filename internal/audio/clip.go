package audio

import (
	"bytes"
	"io"
)

// ClipSampleRate is the sample rate every Clip is normalized to.
// It matches the rate the application's audio context is created with.
const ClipSampleRate = 48000

// Clip is a fully decoded sound, stored as 16-bit signed little-endian
// stereo PCM at ClipSampleRate. Clips are immutable; each Reader call
// returns an independent stream, so one Clip can back several players.
type Clip struct {
	pcm []byte
}

// Reader returns a new seekable stream over the clip's PCM data.
func (c *Clip) Reader() io.ReadSeeker {
	return bytes.NewReader(c.pcm)
}

// Length returns the PCM data size in bytes.
func (c *Clip) Length() int64 {
	return int64(len(c.pcm))
}

// newClipFromSamples builds a Clip from mono or interleaved stereo
// samples at the given source rate, resampling and widening as needed.
func newClipFromSamples(samples []int16, channels int, sampleRate int) *Clip {
	if channels == 1 {
		samples = monoToStereo(samples)
	}
	if sampleRate != ClipSampleRate {
		samples = resampleStereo(samples, sampleRate, ClipSampleRate)
	}

	pcm := make([]byte, len(samples)*2)
	for i, s := range samples {
		pcm[i*2] = byte(s)
		pcm[i*2+1] = byte(s >> 8)
	}
	return &Clip{pcm: pcm}
}

// monoToStereo duplicates each sample into both channels.
func monoToStereo(mono []int16) []int16 {
	stereo := make([]int16, len(mono)*2)
	for i, s := range mono {
		stereo[i*2] = s
		stereo[i*2+1] = s
	}
	return stereo
}

// resampleStereo converts interleaved stereo samples between rates
// using linear interpolation. Good enough for short notification
// sounds; not meant for music.
func resampleStereo(in []int16, from, to int) []int16 {
	if from == to || len(in) < 4 {
		return in
	}
	inFrames := len(in) / 2
	outFrames := int(int64(inFrames) * int64(to) / int64(from))
	out := make([]int16, outFrames*2)

	ratio := float64(from) / float64(to)
	for i := 0; i < outFrames; i++ {
		pos := float64(i) * ratio
		idx := int(pos)
		frac := pos - float64(idx)
		next := idx + 1
		if next >= inFrames {
			next = inFrames - 1
		}
		for ch := 0; ch < 2; ch++ {
			a := float64(in[idx*2+ch])
			b := float64(in[next*2+ch])
			out[i*2+ch] = int16(a + (b-a)*frac)
		}
	}
	return out
}
