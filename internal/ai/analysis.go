package ai

import "strings"

const (
	TranscriptionLabel = "Transcription:"
	SentimentLabel     = "Sentiment Analysis:"
)

// Analysis is the two-section view of a model answer as exposed over HTTP.
type Analysis struct {
	Transcription string `json:"transcription"`
	Sentiment     string `json:"sentiment"`
}

// ParseAnalysis splits text on every SentimentLabel. The transcription is the
// trimmed first piece (its label is left in place), the sentiment is the
// trimmed second piece, or empty when the label never occurs.
func ParseAnalysis(text string) Analysis {
	parts := strings.Split(text, SentimentLabel)
	a := Analysis{Transcription: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		a.Sentiment = strings.TrimSpace(parts[1])
	}
	return a
}
