package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ffmpeg stderr fragments that point at the input rather than the encoder
var decodeMarkers = []string{
	"invalid data found when processing input",
	"could not find codec parameters",
	"error opening input",
	"unknown input format",
	"invalid argument",
	"header missing",
	"does not contain any stream",
	"end of file",
}

type FFmpegTranscoder struct {
	cmd []string
}

// NewFFmpegTranscoder parses command (e.g. "ffmpeg" or "/usr/bin/ffmpeg -threads 1").
func NewFFmpegTranscoder(command string) (*FFmpegTranscoder, error) {
	parser := shellwords.NewParser()
	args, err := parser.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse ffmpeg command: %w", err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("ffmpeg command empty")
	}
	return &FFmpegTranscoder{cmd: args}, nil
}

// Available reports whether the ffmpeg binary can be found.
func (t *FFmpegTranscoder) Available() bool {
	_, err := exec.LookPath(t.cmd[0])
	return err == nil
}

// Transcode pipes data through ffmpeg; nothing touches the disk.
func (t *FFmpegTranscoder) Transcode(ctx context.Context, data []byte, inputFormat string) ([]byte, error) {
	args := make([]string, 0, len(t.cmd)+20)
	args = append(args, t.cmd[1:]...)
	args = append(args,
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", inputFormat,
		"-i", "pipe:0",
		"-vn",
		"-ac", strconv.Itoa(TargetChannels),
		"-ar", strconv.Itoa(TargetSampleRate),
		"-c:a", "libmp3lame",
		"-q:a", "0",
		"-f", "mp3",
		"pipe:1",
	)

	cmd := exec.CommandContext(ctx, t.cmd[0], args...)
	cmd.Stdin = bytes.NewReader(data)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if isDecodeFailure(msg) {
			return nil, fmt.Errorf("%w: ffmpeg (%s): %s", ErrDecode, inputFormat, msg)
		}
		return nil, fmt.Errorf("%w: ffmpeg: %v: %s", ErrEncode, err, msg)
	}
	return stdout.Bytes(), nil
}

func isDecodeFailure(stderr string) bool {
	s := strings.ToLower(stderr)
	for _, m := range decodeMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
