package localize

import (
	"context"
	"fmt"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleTranslator implements Translator using the Cloud Translation API.
type GoogleTranslator struct {
	client *translate.Client
}

func NewGoogleTranslator(ctx context.Context, apiKey string) (*GoogleTranslator, error) {
	client, err := translate.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}
	return &GoogleTranslator{client: client}, nil
}

func (t *GoogleTranslator) Close() {
	_ = t.client.Close()
}

func (t *GoogleTranslator) Translate(ctx context.Context, text, languageCode string) (string, error) {
	target, err := language.Parse(languageCode)
	if err != nil {
		return "", fmt.Errorf("translate: bad language code %q: %w", languageCode, err)
	}

	res, err := t.client.Translate(ctx, []string{text}, target, nil)
	if err != nil {
		return "", fmt.Errorf("translate api error: %w", err)
	}
	if len(res) == 0 {
		return "", fmt.Errorf("translate: empty result")
	}
	return res[0].Text, nil
}
