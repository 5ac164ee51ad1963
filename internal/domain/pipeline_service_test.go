package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voice_sentiment/internal/ai"
	"github.com/Vovarama1992/voice_sentiment/internal/audio"
	"github.com/Vovarama1992/voice_sentiment/internal/cache"
	"github.com/Vovarama1992/voice_sentiment/internal/metrics"
	"github.com/Vovarama1992/voice_sentiment/internal/speech"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

type fakeNormalizer struct{ err error }

func (f fakeNormalizer) Normalize(_ context.Context, in audio.Upload) (audio.Buffer, error) {
	if f.err != nil {
		return audio.Buffer{}, f.err
	}
	return audio.Buffer{Data: in.Data}, nil
}

type fakeAnalyzer struct {
	text string
	err  error
}

func (f fakeAnalyzer) Analyze(context.Context, audio.Buffer) (string, error) {
	return f.text, f.err
}

type fakeSynth struct {
	out []byte
	err error
}

func (f fakeSynth) Synthesize(context.Context, string) ([]byte, error) {
	return f.out, f.err
}

type recordingNotifier struct {
	sources []string
}

func (r *recordingNotifier) Notify(_ context.Context, source string, _ error, _ string) error {
	r.sources = append(r.sources, source)
	return nil
}

const analysisText = "Transcription:\n[00:00:01] Speaker A: Hello\n\nSentiment Analysis:\n**Overall Tone:** Positive"

type fixture struct {
	svc      *PipelineService
	slot     *cache.Slot
	notifier *recordingNotifier
	metrics  *metrics.Metrics
}

func newFixture(n Normalizer, a Analyzer, s Synthesizer) fixture {
	f := fixture{
		slot:     cache.NewSlot(),
		notifier: &recordingNotifier{},
		metrics:  metrics.NewMetrics(prometheus.NewRegistry()),
	}
	f.svc = NewPipelineService(n, a, s, f.slot, f.notifier, f.metrics, logger.NewZapLogger(zap.NewNop().Sugar()))
	return f
}

func TestProcessSuccess(t *testing.T) {
	f := newFixture(fakeNormalizer{}, fakeAnalyzer{text: analysisText}, fakeSynth{out: []byte("reply")})

	res, err := f.svc.Process(context.Background(), audio.Upload{Data: []byte("mp3"), Format: audio.FormatMP3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Transcription != "Transcription:\n[00:00:01] Speaker A: Hello" {
		t.Fatalf("unexpected transcription %q", res.Transcription)
	}
	if res.Sentiment != "**Overall Tone:** Positive" {
		t.Fatalf("unexpected sentiment %q", res.Sentiment)
	}
	if res.Raw != analysisText || res.ReplyBytes != 5 {
		t.Fatalf("unexpected result %+v", res)
	}

	got, err := f.svc.LatestReply()
	if err != nil || string(got) != "reply" {
		t.Fatalf("slot holds %q, %v", got, err)
	}
	if len(f.notifier.sources) != 0 {
		t.Fatalf("unexpected notifications %v", f.notifier.sources)
	}
	if n := testutil.ToFloat64(f.metrics.SlotWrites); n != 1 {
		t.Fatalf("slot writes = %v", n)
	}
}

func TestProcessStageFailures(t *testing.T) {
	cases := []struct {
		name     string
		n        Normalizer
		a        Analyzer
		s        Synthesizer
		stage    Stage
		sentinel error
	}{
		{"normalize", fakeNormalizer{err: audio.ErrDecode}, fakeAnalyzer{text: analysisText}, fakeSynth{out: []byte("x")}, StageNormalize, audio.ErrDecode},
		{"analyze", fakeNormalizer{}, fakeAnalyzer{err: ai.ErrAnalysis}, fakeSynth{out: []byte("x")}, StageAnalyze, ai.ErrAnalysis},
		{"synthesize", fakeNormalizer{}, fakeAnalyzer{text: analysisText}, fakeSynth{err: speech.ErrSynthesis}, StageSynthesize, speech.ErrSynthesis},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(tc.n, tc.a, tc.s)
			f.slot.Put([]byte("previous"))

			res, err := f.svc.Process(context.Background(), audio.Upload{Data: []byte("data"), Format: "wav"})
			if res != nil {
				t.Fatalf("expected no result, got %+v", res)
			}

			var se *StageError
			if !errors.As(err, &se) || se.Stage != tc.stage {
				t.Fatalf("expected stage %s error, got %v", tc.stage, err)
			}
			if !errors.Is(err, tc.sentinel) {
				t.Fatalf("expected %v in chain, got %v", tc.sentinel, err)
			}
			if len(f.notifier.sources) != 1 || f.notifier.sources[0] != string(tc.stage) {
				t.Fatalf("unexpected notifications %v", f.notifier.sources)
			}
			if n := testutil.ToFloat64(f.metrics.StageFailures.WithLabelValues(string(tc.stage))); n != 1 {
				t.Fatalf("stage failures = %v", n)
			}

			_, gerr := f.svc.LatestReply()
			if tc.stage == StageSynthesize {
				if !errors.Is(gerr, cache.ErrNotFound) {
					t.Fatalf("failed synthesis must empty the slot, got %v", gerr)
				}
			} else if gerr != nil {
				t.Fatalf("earlier failures must leave the slot alone, got %v", gerr)
			}
		})
	}
}
