package localize

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

// voiceTags maps the catalog's two-letter codes to the regional BCP-47 voices
// the synthesis API expects. Codes without an entry are passed through as-is.
var voiceTags = map[string]string{
	"hi": "hi-IN",
	"en": "en-IN",
	"te": "te-IN",
	"ta": "ta-IN",
	"mr": "mr-IN",
	"gu": "gu-IN",
	"kn": "kn-IN",
	"ml": "ml-IN",
	"bn": "bn-IN",
	"pa": "pa-IN",
	"ur": "ur-IN",
}

// GoogleSynthesizer implements Synthesizer using the Cloud Text-to-Speech API.
// Audio is returned as an in-memory MP3 payload; nothing touches the filesystem.
type GoogleSynthesizer struct {
	client *texttospeech.Client
}

func NewGoogleSynthesizer(ctx context.Context, apiKey string) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}
	return &GoogleSynthesizer{client: client}, nil
}

func (s *GoogleSynthesizer) Close() {
	_ = s.client.Close()
}

func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	resp, err := s.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: voiceTag(languageCode),
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("text-to-speech api error: %w", err)
	}
	return resp.AudioContent, nil
}

func voiceTag(code string) string {
	if tag, ok := voiceTags[code]; ok {
		return tag
	}
	return code
}
