package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// buildAU assembles a minimal AU file in memory.
func buildAU(encoding, sampleRate, channels uint32, payload []byte) []byte {
	var buf bytes.Buffer
	header := auHeader{
		Magic:      auMagic,
		DataOffset: 24,
		DataSize:   uint32(len(payload)),
		Encoding:   encoding,
		SampleRate: sampleRate,
		Channels:   channels,
	}
	binary.Write(&buf, binary.BigEndian, &header)
	buf.Write(payload)
	return buf.Bytes()
}

func TestDecodeAUMulaw(t *testing.T) {
	// μ-law byte 0xFF decodes to 0, 0x7F decodes to 0 as well;
	// 0x00 decodes to the most negative value in the table
	payload := []byte{0x00, 0xFF, 0x80, 0x7F}
	clip, err := DecodeAU(bytes.NewReader(buildAU(auEncodingULaw, ClipSampleRate, 1, payload)))
	if err != nil {
		t.Fatalf("DecodeAU() error: %v", err)
	}

	// 4 mono samples at the native rate widen to 4 stereo frames
	if clip.Length() != 4*2*2 {
		t.Errorf("Length() = %d, want %d", clip.Length(), 4*2*2)
	}

	pcm, err := io.ReadAll(clip.Reader())
	if err != nil {
		t.Fatalf("read clip: %v", err)
	}
	first := int16(uint16(pcm[0]) | uint16(pcm[1])<<8)
	if first != mulawTable[0x00] {
		t.Errorf("first sample = %d, want %d", first, mulawTable[0x00])
	}
	// Mono widening duplicates the sample into the right channel
	right := int16(uint16(pcm[2]) | uint16(pcm[3])<<8)
	if right != first {
		t.Errorf("right channel = %d, want %d", right, first)
	}
}

func TestDecodeAUPCM16(t *testing.T) {
	// One stereo frame, big-endian: L=0x0102, R=0xFFFE (-2)
	payload := []byte{0x01, 0x02, 0xFF, 0xFE}
	clip, err := DecodeAU(bytes.NewReader(buildAU(auEncodingPCM16, ClipSampleRate, 2, payload)))
	if err != nil {
		t.Fatalf("DecodeAU() error: %v", err)
	}

	pcm, _ := io.ReadAll(clip.Reader())
	if len(pcm) != 4 {
		t.Fatalf("pcm length = %d, want 4", len(pcm))
	}
	left := int16(uint16(pcm[0]) | uint16(pcm[1])<<8)
	right := int16(uint16(pcm[2]) | uint16(pcm[3])<<8)
	if left != 0x0102 || right != -2 {
		t.Errorf("samples = (%d, %d), want (258, -2)", left, right)
	}
}

func TestDecodeAURejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte{0x2e, 0x73}},
		{"bad magic", buildAU(auEncodingULaw, 8000, 1, []byte{0x00})[4:]},
		{"bad encoding", buildAU(27, 8000, 1, []byte{0x00})},
		{"bad channels", buildAU(auEncodingULaw, 8000, 5, []byte{0x00})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeAU(bytes.NewReader(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeAUResamples(t *testing.T) {
	// 8000 Hz input must be stretched by 6x to reach 48000 Hz
	payload := make([]byte, 800) // 0.1 s of mono μ-law
	clip, err := DecodeAU(bytes.NewReader(buildAU(auEncodingULaw, 8000, 1, payload)))
	if err != nil {
		t.Fatalf("DecodeAU() error: %v", err)
	}

	wantFrames := int64(800 * ClipSampleRate / 8000)
	if got := clip.Length() / 4; got != wantFrames {
		t.Errorf("frames = %d, want %d", got, wantFrames)
	}
}

func TestSynthesizeChime(t *testing.T) {
	clip := SynthesizeChime(880)

	// Stereo 16-bit, so 4 bytes per frame
	frames := clip.Length() / 4
	seconds := float64(frames) / ClipSampleRate
	if seconds < 0.5 || seconds > 1.5 {
		t.Errorf("chime duration = %.2fs, want around 0.9s", seconds)
	}

	pcm, err := io.ReadAll(clip.Reader())
	if err != nil {
		t.Fatalf("read clip: %v", err)
	}
	var peak int16
	for i := 0; i+1 < len(pcm); i += 2 {
		s := int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8)
		if s > peak {
			peak = s
		}
	}
	if peak < 1000 {
		t.Errorf("peak amplitude = %d, chime is nearly silent", peak)
	}
}

func TestClipReaderIndependent(t *testing.T) {
	clip := SynthesizeChime(660)

	r1 := clip.Reader()
	r2 := clip.Reader()

	buf := make([]byte, 128)
	if _, err := io.ReadFull(r1, buf); err != nil {
		t.Fatalf("read: %v", err)
	}

	// Draining r1 must not move r2
	pos, err := r2.Seek(0, io.SeekCurrent)
	if err != nil {
		t.Fatalf("seek: %v", err)
	}
	if pos != 0 {
		t.Errorf("second reader position = %d, want 0", pos)
	}
}
