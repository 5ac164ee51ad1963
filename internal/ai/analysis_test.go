package ai

import "testing"

func TestParseAnalysis(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Analysis
	}{
		{
			name: "both sections",
			in:   "Transcription:\n[00:00:01] Speaker A: Hello\n\nSentiment Analysis:\n**Overall Tone:** Positive\n",
			want: Analysis{
				Transcription: "Transcription:\n[00:00:01] Speaker A: Hello",
				Sentiment:     "**Overall Tone:** Positive",
			},
		},
		{
			name: "no marker",
			in:   "  just words  ",
			want: Analysis{Transcription: "just words"},
		},
		{
			name: "marker repeated",
			in:   "a Sentiment Analysis: b Sentiment Analysis: c",
			want: Analysis{Transcription: "a", Sentiment: "b"},
		},
		{
			name: "empty",
			in:   "",
			want: Analysis{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseAnalysis(tc.in); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
