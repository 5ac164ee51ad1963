package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voice_sentiment/internal/ai"
	"github.com/Vovarama1992/voice_sentiment/internal/audio"
	"github.com/Vovarama1992/voice_sentiment/internal/error_notificator"
	"github.com/Vovarama1992/voice_sentiment/internal/metrics"
	"github.com/Vovarama1992/voice_sentiment/internal/speech"
	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type PipelineService struct {
	normalizer  Normalizer
	analyzer    Analyzer
	synthesizer Synthesizer
	replies     ReplyStore
	notifier    error_notificator.Notificator
	metrics     *metrics.Metrics
	log         *logger.ZapLogger
	tracer      trace.Tracer
}

func NewPipelineService(
	n Normalizer,
	a Analyzer,
	s Synthesizer,
	replies ReplyStore,
	notifier error_notificator.Notificator,
	m *metrics.Metrics,
	log *logger.ZapLogger,
) *PipelineService {
	return &PipelineService{
		normalizer:  n,
		analyzer:    a,
		synthesizer: s,
		replies:     replies,
		notifier:    notifier,
		metrics:     m,
		log:         log,
		tracer:      otel.Tracer("voice_sentiment/pipeline"),
	}
}

// Process runs normalize → analyze → synthesize for one upload. The reply
// audio lands in the shared slot; a failed synthesis leaves the slot empty.
func (s *PipelineService) Process(ctx context.Context, in audio.Upload) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "pipeline.process", trace.WithAttributes(
		attribute.String("audio.format", in.Format),
		attribute.Int("audio.bytes", len(in.Data)),
	))
	defer span.End()

	s.metrics.RecordUpload(len(in.Data))
	size := humanize.Bytes(uint64(len(in.Data)))

	var buf audio.Buffer
	err := s.stage(ctx, StageNormalize, func(ctx context.Context) (err error) {
		buf, err = s.normalizer.Normalize(ctx, in)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, span, StageNormalize, err, fmt.Sprintf("format=%q size=%s", in.Format, size))
	}

	var raw string
	err = s.stage(ctx, StageAnalyze, func(ctx context.Context) (err error) {
		raw, err = s.analyzer.Analyze(ctx, buf)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, span, StageAnalyze, err, fmt.Sprintf("mp3 size=%s", humanize.Bytes(uint64(len(buf.Data)))))
	}

	var reply []byte
	err = s.stage(ctx, StageSynthesize, func(ctx context.Context) (err error) {
		reply, err = s.synthesizer.Synthesize(ctx, raw)
		return err
	})
	if err != nil {
		s.replies.Clear()
		return nil, s.fail(ctx, span, StageSynthesize, err, fmt.Sprintf("analysis length=%d", len(raw)))
	}
	s.replies.Put(reply)

	var seconds float64
	if d, derr := speech.AudioDuration(reply); derr == nil {
		seconds = d.Seconds()
	}
	s.metrics.RecordReply(len(reply), seconds)

	s.log.Log(logger.LogEntry{
		Level: "info",
		Message: fmt.Sprintf("processed %s %s upload, reply %s (%.1fs)",
			size, in.Format, humanize.Bytes(uint64(len(reply))), seconds),
		Service: "pipeline",
	})

	return &Result{
		Analysis:   ai.ParseAnalysis(raw),
		Raw:        raw,
		ReplyBytes: len(reply),
	}, nil
}

// LatestReply returns the audio of the most recently completed synthesis.
func (s *PipelineService) LatestReply() ([]byte, error) {
	return s.replies.Get()
}

func (s *PipelineService) stage(ctx context.Context, st Stage, run func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "pipeline."+string(st))
	defer span.End()

	start := time.Now()
	err := run(ctx)
	s.metrics.RecordStage(string(st), time.Since(start).Seconds(), err != nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(st)+" failed")
	}
	return err
}

func (s *PipelineService) fail(ctx context.Context, span trace.Span, st Stage, err error, details string) error {
	span.SetStatus(codes.Error, string(st))
	s.log.Log(logger.LogEntry{
		Level:   "error",
		Message: string(st) + " failed: " + details,
		Error:   err,
		Service: "pipeline",
	})
	if nerr := s.notifier.Notify(ctx, string(st), err, details); nerr != nil {
		s.log.Log(logger.LogEntry{Level: "warn", Message: "notify failed", Error: nerr, Service: "pipeline"})
	}
	return &StageError{Stage: st, Err: err}
}
