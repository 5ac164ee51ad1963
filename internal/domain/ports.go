package domain

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/voice_sentiment/internal/ai"
	"github.com/Vovarama1992/voice_sentiment/internal/audio"
)

type Normalizer interface {
	Normalize(ctx context.Context, in audio.Upload) (audio.Buffer, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, buf audio.Buffer) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, analysis string) ([]byte, error)
}

// ReplyStore holds the most recent synthesized reply.
type ReplyStore interface {
	Put(data []byte)
	Clear()
	Get() ([]byte, error)
}

type Stage string

const (
	StageNormalize  Stage = "normalize"
	StageAnalyze    Stage = "analyze"
	StageSynthesize Stage = "synthesize"
)

// StageError marks which pipeline step failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type Result struct {
	ai.Analysis
	Raw        string
	ReplyBytes int
}
