package audio

import (
	"context"
	"errors"
)

const (
	FormatMP3 = "mp3"
	FormatWAV = "wav"

	TargetSampleRate = 44100
	TargetChannels   = 1
)

var (
	ErrDecode = errors.New("audio decode failed")
	ErrEncode = errors.New("audio encode failed")
)

// Upload is the raw file as received, with the declared or inferred format.
type Upload struct {
	Data   []byte
	Format string
}

// Buffer holds mono 44.1kHz MP3 bytes ready for analysis.
type Buffer struct {
	Data []byte
}

// Transcoder re-encodes audio of the given input format into mono 44.1kHz MP3.
type Transcoder interface {
	Transcode(ctx context.Context, data []byte, inputFormat string) ([]byte, error)
}
