package speech

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/go-mp3"
)

// AudioDuration decodes MP3 bytes and returns the playback length.
func AudioDuration(data []byte) (time.Duration, error) {
	d, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	if d.SampleRate() <= 0 || d.Length() < 0 {
		return 0, fmt.Errorf("unknown mp3 length")
	}
	// decoder output is 16-bit stereo: 4 bytes per sample frame
	samples := d.Length() / 4
	return time.Duration(float64(samples) / float64(d.SampleRate()) * float64(time.Second)), nil
}
