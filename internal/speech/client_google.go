package speech

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

type GoogleTTSClient struct {
	client *texttospeech.Client
	voice  VoiceConfig
}

// NewGoogleTTSClient uses application default credentials.
func NewGoogleTTSClient(ctx context.Context) (*GoogleTTSClient, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("init google tts: %w", err)
	}
	return &GoogleTTSClient{client: client, voice: DefaultVoice}, nil
}

func (c *GoogleTTSClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := c.client.SynthesizeSpeech(ctx, buildRequest(text, c.voice))
	if err != nil {
		return nil, fmt.Errorf("google tts: %w", err)
	}
	return resp.GetAudioContent(), nil
}

func (c *GoogleTTSClient) Close() error {
	return c.client.Close()
}

func buildRequest(text string, v VoiceConfig) *texttospeechpb.SynthesizeSpeechRequest {
	return &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: v.LanguageCode,
			Name:         v.Name,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_FEMALE,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding:    texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:     v.SpeakingRate,
			Pitch:            v.Pitch,
			EffectsProfileId: v.EffectsProfile,
		},
	}
}
