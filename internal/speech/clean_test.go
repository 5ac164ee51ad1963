package speech

import (
	"strings"
	"testing"
)

func TestCleanForSpeechExample(t *testing.T) {
	in := "Transcription:\n[00:00:01] Speaker A: Hello\n\nSentiment Analysis:\n**Overall Tone:** Positive"
	want := "Transcription: [00:00:01] Speaker A: Hello\n\nSentiment Analysis: Overall Tone: Positive"

	if got := CleanForSpeech(in); got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestCleanForSpeechStripsMarkup(t *testing.T) {
	in := `Transcription:
[00:00:01] **Speaker A**: Hi there
[00:00:04] Speaker B: # hello

Sentiment Analysis:
## Overall Tone:
**Friendly** and [upbeat]

### Speaker Analysis:
* Speaker A: relaxed
* Speaker B: curious
## Key Emotional Moments:
[00:00:04] surprise`

	got := CleanForSpeech(in)

	if !strings.Contains(got, "Transcription:") || !strings.Contains(got, "Sentiment Analysis:") {
		t.Fatalf("labels missing: %q", got)
	}
	if strings.ContainsAny(got, "*#") {
		t.Fatalf("markup survived: %q", got)
	}

	sentiment := got[strings.Index(got, "Sentiment Analysis:"):]
	if strings.ContainsAny(sentiment, "[]") {
		t.Fatalf("brackets survived in sentiment: %q", sentiment)
	}
	if strings.Contains(sentiment, "\n") {
		t.Fatalf("sentiment must be a single line: %q", sentiment)
	}
	wantSentiment := "Sentiment Analysis: Overall Tone: Friendly and upbeat  Speaker Analysis:  Speaker A: relaxed  Speaker B: curious Key Emotional Moments: 00:00:04 surprise"
	if sentiment != wantSentiment {
		t.Fatalf("got %q\nwant %q", sentiment, wantSentiment)
	}
}

func TestCleanForSpeechWithoutMarker(t *testing.T) {
	got := CleanForSpeech("Transcription:\n[00:00:02] Speaker A: only words\n")
	want := "Transcription: [00:00:02] Speaker A: only words\n\nSentiment Analysis: "
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}

	if got := CleanForSpeech(""); got != "Transcription: \n\nSentiment Analysis: " {
		t.Fatalf("unexpected output for empty input: %q", got)
	}
}

func TestCleanForSpeechIdempotent(t *testing.T) {
	inputs := []string{
		"Transcription:\n[00:00:01] Speaker A: Hello\n\nSentiment Analysis:\n**Overall Tone:** Positive",
		"no labels at all ** ## [x]",
		"Sentiment Analysis:\n## Tone\n- [calm]",
	}
	for _, in := range inputs {
		once := CleanForSpeech(in)
		twice := CleanForSpeech(once)
		if twice != once {
			t.Fatalf("second pass changed text:\nonce  %q\ntwice %q", once, twice)
		}
		if strings.ContainsAny(twice, "*#") {
			t.Fatalf("markup survived second pass: %q", twice)
		}
	}
}
