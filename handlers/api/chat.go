package api

import (
	"net/http"

	"ytsummarizer/models"
	"ytsummarizer/services/chat"

	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	service chat.Service
	logger  *logrus.Logger
}

func NewChatHandler(service chat.Service) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logrus.StandardLogger(),
	}
}

// HandleChat handles POST /chat. The request carries the full transcript and
// summary; nothing is kept server-side between calls.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	h.logger.WithContext(r.Context()).WithFields(logrus.Fields{
		"video_id": req.VideoID,
		"segments": len(req.Transcript),
	}).Info("Received chat request")

	answer, err := h.service.Answer(r.Context(), chat.Request{
		Question:   req.Question,
		VideoID:    req.VideoID,
		Transcript: req.Transcript,
		Summary:    req.Summary,
		APIKey:     req.APIKey,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, models.ChatResponse{Answer: answer})
}
