package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-audio/wav"
)

// hint -> ffmpeg demuxer
var demuxers = map[string]string{
	"wav":  "wav",
	"wave": "wav",
	"ogg":  "ogg",
	"oga":  "ogg",
	"opus": "ogg",
	"flac": "flac",
	"webm": "webm",
	"aac":  "aac",
	"m4a":  "mp4",
	"mp4":  "mp4",
	"3gp":  "mp4",
	"aif":  "aiff",
	"aiff": "aiff",
	"wma":  "asf",
	"amr":  "amr",
}

// DemuxerFor maps a format hint (usually a file extension) to the input format
// handed to the transcoder. Empty or unknown hints fall back to wav.
func DemuxerFor(hint string) string {
	if d, ok := demuxers[strings.ToLower(strings.TrimSpace(hint))]; ok {
		return d
	}
	return FormatWAV
}

type Normalizer struct {
	transcoder Transcoder
}

func NewNormalizer(t Transcoder) *Normalizer {
	return &Normalizer{transcoder: t}
}

// Normalize returns mp3 uploads untouched and re-encodes everything else.
func (n *Normalizer) Normalize(ctx context.Context, in Upload) (Buffer, error) {
	if strings.EqualFold(strings.TrimSpace(in.Format), FormatMP3) {
		return Buffer{Data: in.Data}, nil
	}

	if len(in.Data) == 0 {
		return Buffer{}, fmt.Errorf("%w: empty upload", ErrDecode)
	}

	demuxer := DemuxerFor(in.Format)
	if demuxer == FormatWAV && !hasWAVSignature(in.Data) {
		return Buffer{}, fmt.Errorf("%w: no RIFF/RF64 WAVE header", ErrDecode)
	}

	out, err := n.transcoder.Transcode(ctx, in.Data, demuxer)
	if err != nil {
		if demuxer == FormatWAV {
			if desc := describeWAV(in.Data); desc != "" {
				err = fmt.Errorf("%w (%s)", err, desc)
			}
		}
		if errors.Is(err, ErrDecode) || errors.Is(err, ErrEncode) {
			return Buffer{}, err
		}
		return Buffer{}, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if len(out) == 0 {
		return Buffer{}, fmt.Errorf("%w: transcoder produced no output", ErrEncode)
	}

	info, err := InspectMP3(out)
	if err != nil {
		return Buffer{}, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if info.SampleRate != TargetSampleRate || info.Channels != TargetChannels {
		return Buffer{}, fmt.Errorf("%w: got %d Hz / %d ch", ErrEncode, info.SampleRate, info.Channels)
	}

	return Buffer{Data: out}, nil
}

// hasWAVSignature only checks the container magic. Header fields (sizes,
// codec, bit depth) are left to the transcoder.
func hasWAVSignature(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	magic := string(data[0:4])
	return (magic == "RIFF" || magic == "RF64") && string(data[8:12]) == "WAVE"
}

// describeWAV summarizes the fmt chunk for error details, or "" when unreadable.
func describeWAV(data []byte) string {
	d := wav.NewDecoder(bytes.NewReader(data))
	d.ReadInfo()
	if d.SampleRate == 0 {
		return ""
	}
	return fmt.Sprintf("wav format=%#x %d Hz %d ch %d-bit", d.WavAudioFormat, d.SampleRate, d.NumChans, d.BitDepth)
}
