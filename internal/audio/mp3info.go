package audio

import (
	"errors"
	"fmt"
)

var errNoFrame = errors.New("no mpeg audio frame found")

// FrameInfo describes the first MPEG audio frame of a stream.
type FrameInfo struct {
	SampleRate int
	Channels   int
	Bitrate    int // kbps, 0 for free format
}

var sampleRates = [4][3]int{
	{11025, 12000, 8000},  // MPEG 2.5
	{0, 0, 0},             // reserved
	{22050, 24000, 16000}, // MPEG 2
	{44100, 48000, 32000}, // MPEG 1
}

// layer III only; other layers report 0
var bitratesV1L3 = [16]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, -1}
var bitratesV2L3 = [16]int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, -1}

// InspectMP3 skips a leading ID3v2 tag and reads the first valid frame header.
func InspectMP3(data []byte) (FrameInfo, error) {
	off := skipID3v2(data)

	for i := off; i+4 <= len(data); i++ {
		if data[i] != 0xFF || data[i+1]&0xE0 != 0xE0 {
			continue
		}
		info, ok := parseHeader(data[i : i+4])
		if ok {
			return info, nil
		}
	}
	return FrameInfo{}, errNoFrame
}

func parseHeader(h []byte) (FrameInfo, bool) {
	version := (h[1] >> 3) & 0x03
	layer := (h[1] >> 1) & 0x03
	bitrateIdx := h[2] >> 4
	rateIdx := (h[2] >> 2) & 0x03
	mode := h[3] >> 6

	if version == 1 || layer == 0 || bitrateIdx == 0x0F || rateIdx == 0x03 {
		return FrameInfo{}, false
	}

	info := FrameInfo{
		SampleRate: sampleRates[version][rateIdx],
		Channels:   2,
	}
	if mode == 0x03 {
		info.Channels = 1
	}
	if layer == 0x01 {
		if version == 0x03 {
			info.Bitrate = bitratesV1L3[bitrateIdx]
		} else {
			info.Bitrate = bitratesV2L3[bitrateIdx]
		}
	}
	return info, true
}

func skipID3v2(data []byte) int {
	if len(data) < 10 || string(data[:3]) != "ID3" {
		return 0
	}
	size := int(data[6]&0x7F)<<21 | int(data[7]&0x7F)<<14 | int(data[8]&0x7F)<<7 | int(data[9]&0x7F)
	off := 10 + size
	if data[5]&0x10 != 0 {
		off += 10
	}
	if off > len(data) {
		return len(data)
	}
	return off
}

func (f FrameInfo) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d kbps", f.SampleRate, f.Channels, f.Bitrate)
}
