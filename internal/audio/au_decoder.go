package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// AU (Sun/NeXT) file header, 24 bytes minimum, big-endian.
type auHeader struct {
	Magic      uint32 // 0x2e736e64 (".snd")
	DataOffset uint32 // Offset to audio data (typically 24)
	DataSize   uint32 // Size of audio data in bytes (0xFFFFFFFF if unknown)
	Encoding   uint32 // Audio encoding format
	SampleRate uint32 // Sample rate in Hz
	Channels   uint32 // Number of interleaved channels
}

const (
	auMagic         = 0x2e736e64 // ".snd" in big-endian
	auEncodingULaw  = 1          // 8-bit μ-law
	auEncodingPCM16 = 3          // 16-bit linear PCM
)

// μ-law decompression table (converts μ-law byte to 16-bit PCM)
var mulawTable = [256]int16{
	-32124, -31100, -30076, -29052, -28028, -27004, -25980, -24956,
	-23932, -22908, -21884, -20860, -19836, -18812, -17788, -16764,
	-15996, -15484, -14972, -14460, -13948, -13436, -12924, -12412,
	-11900, -11388, -10876, -10364, -9852, -9340, -8828, -8316,
	-7932, -7676, -7420, -7164, -6908, -6652, -6396, -6140,
	-5884, -5628, -5372, -5116, -4860, -4604, -4348, -4092,
	-3900, -3772, -3644, -3516, -3388, -3260, -3132, -3004,
	-2876, -2748, -2620, -2492, -2364, -2236, -2108, -1980,
	-1884, -1820, -1756, -1692, -1628, -1564, -1500, -1436,
	-1372, -1308, -1244, -1180, -1116, -1052, -988, -924,
	-876, -844, -812, -780, -748, -716, -684, -652,
	-620, -588, -556, -524, -492, -460, -428, -396,
	-372, -356, -340, -324, -308, -292, -276, -260,
	-244, -228, -212, -196, -180, -164, -148, -132,
	-120, -112, -104, -96, -88, -80, -72, -64,
	-56, -48, -40, -32, -24, -16, -8, 0,
	32124, 31100, 30076, 29052, 28028, 27004, 25980, 24956,
	23932, 22908, 21884, 20860, 19836, 18812, 17788, 16764,
	15996, 15484, 14972, 14460, 13948, 13436, 12924, 12412,
	11900, 11388, 10876, 10364, 9852, 9340, 8828, 8316,
	7932, 7676, 7420, 7164, 6908, 6652, 6396, 6140,
	5884, 5628, 5372, 5116, 4860, 4604, 4348, 4092,
	3900, 3772, 3644, 3516, 3388, 3260, 3132, 3004,
	2876, 2748, 2620, 2492, 2364, 2236, 2108, 1980,
	1884, 1820, 1756, 1692, 1628, 1564, 1500, 1436,
	1372, 1308, 1244, 1180, 1116, 1052, 988, 924,
	876, 844, 812, 780, 748, 716, 684, 652,
	620, 588, 556, 524, 492, 460, 428, 396,
	372, 356, 340, 324, 308, 292, 276, 260,
	244, 228, 212, 196, 180, 164, 148, 132,
	120, 112, 104, 96, 88, 80, 72, 64,
	56, 48, 40, 32, 24, 16, 8, 0,
}

// DecodeAU decodes a Sun/NeXT audio file (.au) into a normalized Clip.
// Supports 8-bit μ-law and 16-bit linear PCM, mono or stereo; the
// result is always stereo at ClipSampleRate.
//
// Parameters:
//   - r: Reader containing AU file data
//
// Returns:
//   - *Clip: Decoded, normalized clip
//   - error: Error if decoding fails
func DecodeAU(r io.Reader) (*Clip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read AU file: %w", err)
	}

	if len(data) < 24 {
		return nil, fmt.Errorf("AU file too short: %d bytes (minimum 24)", len(data))
	}

	// Parse header (big-endian)
	var header auHeader
	buf := bytes.NewReader(data)
	if err := binary.Read(buf, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read AU header: %w", err)
	}

	if header.Magic != auMagic {
		return nil, fmt.Errorf("invalid AU magic number: 0x%08x (expected 0x%08x)", header.Magic, auMagic)
	}
	if header.Channels < 1 || header.Channels > 2 {
		return nil, fmt.Errorf("unsupported channel count: %d (only 1-2 supported)", header.Channels)
	}

	audioDataOffset := int(header.DataOffset)
	if audioDataOffset < 24 || audioDataOffset >= len(data) {
		return nil, fmt.Errorf("invalid data offset: %d (file size: %d)", audioDataOffset, len(data))
	}
	raw := data[audioDataOffset:]

	var samples []int16
	switch header.Encoding {
	case auEncodingULaw:
		samples = make([]int16, len(raw))
		for i, b := range raw {
			samples[i] = mulawTable[b]
		}
	case auEncodingPCM16:
		// AU stores PCM big-endian
		samples = make([]int16, len(raw)/2)
		for i := range samples {
			samples[i] = int16(uint16(raw[i*2])<<8 | uint16(raw[i*2+1]))
		}
	default:
		return nil, fmt.Errorf("unsupported AU encoding: %d (μ-law [1] and PCM16 [3] supported)", header.Encoding)
	}

	return newClipFromSamples(samples, int(header.Channels), int(header.SampleRate)), nil
}
