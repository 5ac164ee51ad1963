package speech

import (
	"fmt"
	"strings"

	"github.com/Vovarama1992/voice_sentiment/internal/ai"
)

// CleanForSpeech rewrites an analysis answer into the text read aloud:
// the transcription loses its label, the sentiment section loses markdown
// and brackets and is folded onto one line, and no '*' or '#' survives.
func CleanForSpeech(text string) string {
	parts := strings.Split(text, ai.SentimentLabel)
	transcription := strings.TrimSpace(strings.ReplaceAll(parts[0], ai.TranscriptionLabel, ""))

	sentiment := ""
	if len(parts) > 1 {
		sentiment = strings.TrimSpace(parts[1])
	}
	for _, m := range []string{"**", "##", "[", "]"} {
		sentiment = strings.ReplaceAll(sentiment, m, "")
	}

	lines := make([]string, 0, 8)
	for _, line := range strings.Split(sentiment, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	clean := fmt.Sprintf("%s %s\n\n%s %s", ai.TranscriptionLabel, transcription, ai.SentimentLabel, strings.Join(lines, " "))
	return strings.NewReplacer("*", "", "#", "").Replace(clean)
}
