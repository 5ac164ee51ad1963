package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/voice_sentiment/internal/audio"
)

// Prompt asks for a timestamped, speaker-labelled transcript followed by a
// sentiment report. Downstream parsing relies on the two section labels.
const Prompt = `
Analyze this audio recording and provide:
1. A detailed transcription that includes:
   - a timestamp in [HH:MM:SS] format for every utterance
   - speaker identification (Speaker A, Speaker B, and so on)
2. A sentiment analysis covering:
   - the overall tone of the conversation
   - the emotional state of each speaker
   - key emotional moments

Use exactly this layout:
Transcription:
[timestamp] Speaker: text

Sentiment Analysis:
Overall Tone:
Speaker Analysis:
Key Emotional Moments:
`

type Service struct {
	analyzer Analyzer
}

func NewService(analyzer Analyzer) *Service {
	return &Service{analyzer: analyzer}
}

// Analyze makes a single attempt and returns the model text verbatim.
func (s *Service) Analyze(ctx context.Context, buf audio.Buffer) (string, error) {
	text, err := s.analyzer.Generate(ctx, Request{
		Audio:    buf.Data,
		MimeType: MimeTypeMPEG,
		Prompt:   Prompt,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAnalysis, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: model returned no text", ErrAnalysis)
	}
	return text, nil
}
