package localize

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

type stubTranslator struct {
	out string
	err error
}

func (s *stubTranslator) Translate(_ context.Context, _, _ string) (string, error) {
	return s.out, s.err
}

type stubSynthesizer struct {
	out []byte
	err error
}

func (s *stubSynthesizer) Synthesize(_ context.Context, _, _ string) ([]byte, error) {
	return s.out, s.err
}

func TestLocalize_HappyPath(t *testing.T) {
	svc := NewService(
		&stubTranslator{out: "translated"},
		&stubSynthesizer{out: []byte("mp3-bytes")},
	)

	text, audio := svc.Localize(context.Background(), "original", "hi")
	if text != "translated" {
		t.Errorf("text = %q, want translated", text)
	}
	if !bytes.Equal(audio, []byte("mp3-bytes")) {
		t.Errorf("audio = %q, want mp3-bytes", audio)
	}
}

func TestLocalize_TranslateFailureReturnsOriginal(t *testing.T) {
	svc := NewService(
		&stubTranslator{err: errors.New("quota exceeded")},
		&stubSynthesizer{out: []byte("never")},
	)

	text, audio := svc.Localize(context.Background(), "original", "hi")
	if text != "original" {
		t.Errorf("text = %q, want original", text)
	}
	if audio != nil {
		t.Errorf("audio = %v, want nil", audio)
	}
}

func TestLocalize_SynthesisFailureKeepsTranslation(t *testing.T) {
	svc := NewService(
		&stubTranslator{out: "translated"},
		&stubSynthesizer{err: errors.New("voice unavailable")},
	)

	text, audio := svc.Localize(context.Background(), "original", "ta")
	if text != "translated" {
		t.Errorf("text = %q, want translated", text)
	}
	if audio != nil {
		t.Errorf("audio = %v, want nil", audio)
	}
}

func TestVoiceTag(t *testing.T) {
	if got := voiceTag("hi"); got != "hi-IN" {
		t.Errorf("voiceTag(hi) = %q, want hi-IN", got)
	}
	if got := voiceTag("fr"); got != "fr" {
		t.Errorf("voiceTag(fr) = %q, want passthrough fr", got)
	}
}
