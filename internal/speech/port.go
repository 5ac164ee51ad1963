package speech

import (
	"context"
	"errors"
)

var ErrSynthesis = errors.New("text-to-speech failed")

// TTSClient turns text into MP3 bytes.
type TTSClient interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// VoiceConfig is the fixed voice used for replies.
type VoiceConfig struct {
	LanguageCode   string
	Name           string
	SpeakingRate   float64
	Pitch          float64
	EffectsProfile []string
}

var DefaultVoice = VoiceConfig{
	LanguageCode:   "en-US",
	Name:           "en-US-Neural2-F",
	SpeakingRate:   0.9,
	Pitch:          0.0,
	EffectsProfile: []string{"telephony-class-application"},
}
