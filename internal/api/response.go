package api

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// writeJSON writes a JSON response with the given status code. If encoding
// fails after WriteHeader there is no way to notify the client; the error is
// only logged.
func writeJSON(w http.ResponseWriter, status int, data any) {
	payload, err := sonic.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode JSON response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		log.Error().Err(err).Msg("failed to write JSON response")
	}
}

// ErrorResponse is the JSON error shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, status int, err string, message string) {
	writeJSON(w, status, ErrorResponse{Error: err, Message: message})
}
