package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Renmsd/tarsiah/internal/hermes"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// publish sends an event when a bus is configured. Events never fail a
// request; a failed publish is only logged.
func publish(c hermes.Client, logger *slog.Logger, subject string, data interface{}) {
	if c == nil {
		return
	}
	if err := c.Publish(subject, data); err != nil {
		logger.Warn("publish failed", "subject", subject, "error", err)
	}
}
