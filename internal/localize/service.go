// Package localize translates itinerary text and synthesizes spoken audio for it.
package localize

import (
	"context"
	"log"
)

// Translator translates text into the target two-letter language code. The
// source language is auto-detected by the backing service.
type Translator interface {
	Translate(ctx context.Context, text, languageCode string) (string, error)
}

// Synthesizer renders text to a spoken audio payload in the given language.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, languageCode string) ([]byte, error)
}

// Service combines translation and speech synthesis behind one degrade-soft
// boundary: no failure propagates past Localize.
type Service struct {
	translator Translator
	synth      Synthesizer
}

func NewService(translator Translator, synth Synthesizer) *Service {
	return &Service{translator: translator, synth: synth}
}

// Localize translates text and synthesizes audio for the translation.
// On translation failure the original text comes back with no audio; on
// synthesis failure the translated text comes back with no audio. The audio
// payload lives only in memory and belongs to the caller.
func (s *Service) Localize(ctx context.Context, text, languageCode string) (string, []byte) {
	translated, err := s.translator.Translate(ctx, text, languageCode)
	if err != nil {
		log.Printf("localize: translate to %q: %v", languageCode, err)
		return text, nil
	}

	audio, err := s.synth.Synthesize(ctx, translated, languageCode)
	if err != nil {
		log.Printf("localize: synthesize %q audio: %v", languageCode, err)
		return translated, nil
	}
	return translated, audio
}
