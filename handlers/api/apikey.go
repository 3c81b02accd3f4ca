package api

import (
	"net/http"

	"ytsummarizer/apikey"
	"ytsummarizer/errors"
	"ytsummarizer/models"

	"github.com/sirupsen/logrus"
)

type KeyHandler struct {
	validator *apikey.Validator
	logger    *logrus.Logger
}

func NewKeyHandler(validator *apikey.Validator) *KeyHandler {
	return &KeyHandler{
		validator: validator,
		logger:    logrus.StandardLogger(),
	}
}

// HandleValidateKey handles POST /validate_api_key. An invalid key is not an
// error: it reports valid=false with a message. A key that validates becomes
// the process default for requests that don't carry their own.
func (h *KeyHandler) HandleValidateKey(w http.ResponseWriter, r *http.Request) {
	const op = "KeyHandler.HandleValidateKey"

	var req models.ValidateKeyRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if req.APIKey == "" {
		respondError(w, r, errors.InvalidInput(op, nil, "API key is required"))
		return
	}

	resp := models.ValidateKeyResponse{Valid: h.validator.Validate(r.Context(), req.APIKey)}
	if resp.Valid {
		resp.Message = "API key is valid"
	} else {
		resp.Message = "Invalid API key"
	}

	respondJSON(w, http.StatusOK, resp)
}
