package audio

import "math"

// SynthesizeChime generates the built-in notification chime: a short
// bell-like tone with two harmonics and an exponential decay envelope.
// Used when the user has not supplied a custom sound file.
//
// Parameters:
//   - baseFreq: Fundamental frequency in Hz (e.g. 880 for the study
//     chime, 660 for the break chime)
//
// Returns:
//   - *Clip: Stereo clip at ClipSampleRate, roughly 0.9 seconds long
func SynthesizeChime(baseFreq float64) *Clip {
	const (
		duration = 0.9
		attack   = 0.01
		decay    = 4.0
	)

	frames := int(duration * ClipSampleRate)
	samples := make([]int16, frames)
	for i := 0; i < frames; i++ {
		t := float64(i) / ClipSampleRate

		// Fundamental plus a quieter octave and twelfth give a bell timbre
		v := math.Sin(2*math.Pi*baseFreq*t) +
			0.5*math.Sin(2*math.Pi*baseFreq*2*t) +
			0.25*math.Sin(2*math.Pi*baseFreq*3*t)

		env := math.Exp(-decay * t)
		if t < attack {
			env *= t / attack
		}

		// 0.4 headroom keeps the summed harmonics well below clipping
		samples[i] = int16(v * env * 0.4 * math.MaxInt16 / 1.75)
	}

	return newClipFromSamples(samples, 1, ClipSampleRate)
}
