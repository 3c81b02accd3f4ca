package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"ytsummarizer/errors"

	"github.com/sirupsen/logrus"
)

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

// respondError maps an error to the wire contract: validation failures keep
// their message and a 4xx status, everything else becomes a 500 with the
// cause appended to "Internal server error".
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	msg := err.Error()

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		code = appErr.Code
		msg = appErr.Message
		if code >= http.StatusInternalServerError {
			// Carry the backend cause to the client, e.g.
			// "Failed to generate summary: quota exceeded".
			msg = appErr.Error()
		}
	}

	if code >= http.StatusInternalServerError {
		msg = "Internal server error: " + msg
	}

	logrus.WithFields(logrus.Fields{
		"error":      err,
		"status":     code,
		"request_id": r.Context().Value("request_id"),
		"path":       r.URL.Path,
		"method":     r.Method,
	}).Error("Request error")

	respondJSON(w, code, map[string]string{"error": msg})
}

func readJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.InvalidInput("readJSON", err, "Invalid JSON format")
	}
	return nil
}
