// Package voice converts captured audio into text via the Cloud Speech API.
package voice

import (
	"context"
	"errors"
	"fmt"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

// ErrUnrecognized means the service responded but found no intelligible speech.
// Callers report it to the user and leave any existing input untouched.
var ErrUnrecognized = errors.New("could not understand the audio")

// Recognizer runs speech recognition on posted audio clips. Capture itself is
// the presentation layer's job; only the recorded bytes reach this adapter.
type Recognizer struct {
	client *speech.Client
}

func NewRecognizer(ctx context.Context, apiKey string) (*Recognizer, error) {
	client, err := speech.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	return &Recognizer{client: client}, nil
}

func (r *Recognizer) Close() {
	_ = r.client.Close()
}

// Transcribe recognizes a single utterance and returns the top transcript.
// Transport errors propagate so the caller can distinguish "unreachable" from
// "not understood".
func (r *Recognizer) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := r.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: 16000,
			LanguageCode:    "en-US",
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("speech api error: %w", err)
	}

	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			return result.Alternatives[0].Transcript, nil
		}
	}
	return "", ErrUnrecognized
}
