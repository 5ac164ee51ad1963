package ai

import (
	"errors"
	"testing"
)

func TestClockStamp(t *testing.T) {
	cases := map[float64]string{
		0:       "00:00:00",
		1.9:     "00:00:01",
		61:      "00:01:01",
		3725.4:  "01:02:05",
		-3:      "00:00:00",
		86399.0: "23:59:59",
	}
	for in, want := range cases {
		if got := clockStamp(in); got != want {
			t.Errorf("clockStamp(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestTranscriptLinesAndAssemble(t *testing.T) {
	lines := transcriptLines([]segment{
		{Start: 0.4, Text: " Hello there. "},
		{Start: 2, Text: "   "},
		{Start: 65, Text: "Bye."},
	})
	want := "[00:00:00] Speaker A: Hello there.\n[00:01:05] Speaker A: Bye."
	if lines != want {
		t.Fatalf("got %q, want %q", lines, want)
	}

	blob := assemble(lines, "\nOverall Tone: calm\n")
	a := ParseAnalysis(blob)
	if a.Transcription != "Transcription:\n"+want {
		t.Fatalf("unexpected transcription %q", a.Transcription)
	}
	if a.Sentiment != "Overall Tone: calm" {
		t.Fatalf("unexpected sentiment %q", a.Sentiment)
	}
}

func TestDescribeOpenAIError(t *testing.T) {
	if got := describeOpenAIError(errors.New("error, status code: 429, message: slow down")); got != "OpenAI rate limit exceeded" {
		t.Fatalf("unexpected hint %q", got)
	}
	if got := describeOpenAIError(errors.New("dial tcp: timeout")); got != "OpenAI request failed" {
		t.Fatalf("unexpected hint %q", got)
	}
}
