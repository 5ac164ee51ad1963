package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Vovarama1992/voice_sentiment/internal/audio"
)

type fakeAnalyzer struct {
	text string
	err  error
	got  Request
}

func (f *fakeAnalyzer) Generate(_ context.Context, req Request) (string, error) {
	f.got = req
	return f.text, f.err
}

func TestAnalyzeReturnsTextVerbatim(t *testing.T) {
	blob := "Transcription:\n[00:00:01] Speaker A: Hi\n\nSentiment Analysis:\nOverall Tone: warm\n"
	fa := &fakeAnalyzer{text: blob}
	svc := NewService(fa)

	got, err := svc.Analyze(context.Background(), audio.Buffer{Data: []byte{0xFF, 0xFB}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != blob {
		t.Fatalf("expected verbatim text, got %q", got)
	}
	if fa.got.MimeType != "audio/mpeg" {
		t.Fatalf("expected audio/mpeg, got %q", fa.got.MimeType)
	}
	if !strings.Contains(fa.got.Prompt, "[HH:MM:SS]") || !strings.Contains(fa.got.Prompt, SentimentLabel) {
		t.Fatal("prompt must request timestamps and the sentiment section")
	}
	if len(fa.got.Audio) != 2 {
		t.Fatal("audio bytes not forwarded")
	}
}

func TestAnalyzeErrors(t *testing.T) {
	cases := []struct {
		name string
		fa   *fakeAnalyzer
	}{
		{"remote error", &fakeAnalyzer{err: errors.New("quota exceeded")}},
		{"empty text", &fakeAnalyzer{text: ""}},
		{"blank text", &fakeAnalyzer{text: " \n\t"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewService(tc.fa).Analyze(context.Background(), audio.Buffer{})
			if !errors.Is(err, ErrAnalysis) {
				t.Fatalf("expected ErrAnalysis, got %v", err)
			}
		})
	}
}

func TestDefaultParams(t *testing.T) {
	if DefaultParams.Temperature != 0.2 || DefaultParams.TopK != 40 || DefaultParams.TopP != 0.95 || !DefaultParams.AudioTimestamp {
		t.Fatalf("unexpected generation params: %+v", DefaultParams)
	}
}

func TestVertexGenerateConfig(t *testing.T) {
	c := &VertexClient{model: "gemini-1.5-pro", params: DefaultParams}
	cfg := c.generateConfig()
	if cfg.Temperature == nil || *cfg.Temperature != 0.2 {
		t.Fatal("temperature not set")
	}
	if cfg.TopK == nil || *cfg.TopK != 40 {
		t.Fatal("top-k not set")
	}
	if cfg.TopP == nil || *cfg.TopP != 0.95 {
		t.Fatal("top-p not set")
	}
	if !cfg.AudioTimestamp {
		t.Fatal("audio timestamps must be enabled")
	}
}
