// README: Handler tests for the voice transcription endpoint.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"routefinder/internal/http/handlers"
	"routefinder/internal/voice"
)

type stubTranscriber struct {
	text string
	err  error
}

func (s *stubTranscriber) Transcribe(_ context.Context, _ []byte) (string, error) {
	return s.text, s.err
}

func voiceRouter(tr handlers.Transcriber) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewVoiceHandler(tr)
	r.POST("/api/voice/transcribe", h.Transcribe)
	return r
}

func postAudio(r *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/voice/transcribe", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTranscribe_OK(t *testing.T) {
	r := voiceRouter(&stubTranscriber{text: "New Delhi railway station"})
	w := postAudio(r, map[string]any{"audio": []byte("pcm-bytes")})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Text string `json:"text"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Text != "New Delhi railway station" {
		t.Errorf("text = %q", resp.Text)
	}
}

func TestTranscribe_Unrecognized(t *testing.T) {
	r := voiceRouter(&stubTranscriber{err: voice.ErrUnrecognized})
	w := postAudio(r, map[string]any{"audio": []byte("noise")})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestTranscribe_ServiceUnreachable(t *testing.T) {
	r := voiceRouter(&stubTranscriber{err: errors.New("rpc error: unavailable")})
	w := postAudio(r, map[string]any{"audio": []byte("pcm")})
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}

func TestTranscribe_MissingAudio(t *testing.T) {
	r := voiceRouter(&stubTranscriber{text: "never"})
	w := postAudio(r, map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
