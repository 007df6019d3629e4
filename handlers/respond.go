package handlers

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeReply is for the chat endpoints, whose error bodies are keyed
// "reply" like their success bodies so the UI can render them inline.
func writeReply(w http.ResponseWriter, statusCode int, reply string) {
	writeJSON(w, statusCode, map[string]string{"reply": reply})
}
