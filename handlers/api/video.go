package api

import (
	"net/http"

	"ytsummarizer/models"
	"ytsummarizer/services/video"

	"github.com/sirupsen/logrus"
)

type VideoHandler struct {
	service video.Service
	logger  *logrus.Logger
}

func NewVideoHandler(service video.Service) *VideoHandler {
	return &VideoHandler{
		service: service,
		logger:  logrus.StandardLogger(),
	}
}

// HandleProcessVideo handles POST /process_video: URL in, summary plus the
// full timed transcript out.
func (h *VideoHandler) HandleProcessVideo(w http.ResponseWriter, r *http.Request) {
	var req models.ProcessVideoRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	h.logger.WithContext(r.Context()).WithField("url", req.VideoURL).Info("Received process request")

	result, err := h.service.Process(r.Context(), req.VideoURL, req.APIKey)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
