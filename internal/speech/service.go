package speech

import (
	"context"
	"fmt"
)

type Service struct {
	tts TTSClient
}

func NewService(tts TTSClient) *Service {
	return &Service{tts: tts}
}

// Synthesize cleans the raw analysis text and voices it. Single attempt.
func (s *Service) Synthesize(ctx context.Context, analysis string) ([]byte, error) {
	audio, err := s.tts.Synthesize(ctx, CleanForSpeech(analysis))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSynthesis, err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: empty audio", ErrSynthesis)
	}
	return audio, nil
}
