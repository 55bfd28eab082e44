// README: Voice handler — transcribes posted audio for the place fields.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"routefinder/internal/voice"
)

// Transcriber is the consumer-side contract for speech recognition.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type VoiceHandler struct {
	recognizer Transcriber
}

func NewVoiceHandler(recognizer Transcriber) *VoiceHandler {
	return &VoiceHandler{recognizer: recognizer}
}

type transcribeReq struct {
	// Audio is base64-encoded LINEAR16 PCM at 16 kHz.
	Audio []byte `json:"audio"`
}

// Transcribe handles POST /api/voice/transcribe. On failure the client keeps
// its current input; no session state is touched here.
func (h *VoiceHandler) Transcribe(c *gin.Context) {
	var req transcribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if len(req.Audio) == 0 {
		writeError(c, http.StatusBadRequest, "missing audio")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	text, err := h.recognizer.Transcribe(ctx, req.Audio)
	if err != nil {
		if errors.Is(err, voice.ErrUnrecognized) {
			writeError(c, http.StatusUnprocessableEntity, "Sorry, I could not understand the audio.")
			return
		}
		writeError(c, http.StatusBadGateway, "speech recognition service unreachable")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"text": text})
}
