package ai

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const sentimentPrompt = `You receive a timestamped conversation transcript.
Write a sentiment analysis with exactly these headings:
Overall Tone:
Speaker Analysis:
Key Emotional Moments:
Reference timestamps when pointing at a moment.`

// OpenAIClient builds the same answer layout as Gemini from two calls:
// Whisper for the timestamped transcript, then a chat completion for sentiment.
// Whisper does not diarize, so every line is attributed to Speaker A.
type OpenAIClient struct {
	client    *openai.Client
	chatModel string
	params    GenerationParams
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client:    openai.NewClient(apiKey),
		chatModel: openai.GPT4oMini,
		params:    DefaultParams,
	}
}

type segment struct {
	Start float64
	Text  string
}

func (c *OpenAIClient) Generate(ctx context.Context, req Request) (string, error) {
	tr, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "upload.mp3",
		Reader:   bytes.NewReader(req.Audio),
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return "", fmt.Errorf("whisper: %s: %w", describeOpenAIError(err), err)
	}

	segs := make([]segment, 0, len(tr.Segments))
	for _, s := range tr.Segments {
		segs = append(segs, segment{Start: s.Start, Text: s.Text})
	}
	if len(segs) == 0 && strings.TrimSpace(tr.Text) != "" {
		segs = append(segs, segment{Text: tr.Text})
	}
	transcript := transcriptLines(segs)
	if transcript == "" {
		return "", nil
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Temperature: c.params.Temperature,
		TopP:        c.params.TopP,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sentimentPrompt},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat: %s: %w", describeOpenAIError(err), err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat: no choices in response")
	}

	return assemble(transcript, resp.Choices[0].Message.Content), nil
}

func assemble(transcript, sentiment string) string {
	return fmt.Sprintf("%s\n%s\n\n%s\n%s", TranscriptionLabel, transcript, SentimentLabel, strings.TrimSpace(sentiment))
}

func transcriptLines(segs []segment) string {
	var b strings.Builder
	for _, s := range segs {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%s] Speaker A: %s", clockStamp(s.Start), text)
	}
	return b.String()
}

// clockStamp renders seconds as HH:MM:SS.
func clockStamp(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	total := int(sec)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// describeOpenAIError turns status codes into a short operator hint.
func describeOpenAIError(err error) string {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "status code: 401"):
		return "invalid OpenAI API key"
	case strings.Contains(msg, "status code: 404"):
		return "model not found"
	case strings.Contains(msg, "status code: 429"):
		return "OpenAI rate limit exceeded"
	case strings.Contains(msg, "status code: 400"):
		return "bad request to OpenAI"
	case strings.Contains(msg, "status code: 500"):
		return "OpenAI internal error"
	}
	return "OpenAI request failed"
}
