package audio

import (
	"bytes"
	"encoding/binary"
	"math"
)

// mp3Frames builds n silent MPEG-1 Layer III frames at 128 kbps.
// rateIdx 0 = 44100 Hz, 1 = 48000 Hz.
func mp3Frames(n int, rateIdx byte, mono bool) []byte {
	const frameLen = 417 // 144 * 128000 / 44100
	var mode byte
	if mono {
		mode = 0xC0
	}
	header := []byte{0xFF, 0xFB, 0x90 | rateIdx<<2, mode}

	out := make([]byte, 0, n*frameLen)
	for i := 0; i < n; i++ {
		frame := make([]byte, frameLen)
		copy(frame, header)
		out = append(out, frame...)
	}
	return out
}

// testWAV renders a 16-bit PCM sine tone.
func testWAV(sampleRate, channels int, seconds float64) []byte {
	samples := int(float64(sampleRate) * seconds)
	dataLen := samples * channels * 2

	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(36+dataLen))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	binary.Write(&b, binary.LittleEndian, uint32(16))
	binary.Write(&b, binary.LittleEndian, uint16(1))
	binary.Write(&b, binary.LittleEndian, uint16(channels))
	binary.Write(&b, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&b, binary.LittleEndian, uint32(sampleRate*channels*2))
	binary.Write(&b, binary.LittleEndian, uint16(channels*2))
	binary.Write(&b, binary.LittleEndian, uint16(16))
	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(dataLen))

	for i := 0; i < samples; i++ {
		v := int16(12000 * math.Sin(2*math.Pi*440*float64(i)/float64(sampleRate)))
		for c := 0; c < channels; c++ {
			binary.Write(&b, binary.LittleEndian, v)
		}
	}
	return b.Bytes()
}
