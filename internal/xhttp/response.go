package xhttp

import (
	"net/http"

	go_json "github.com/goccy/go-json"
)

func WriteJSON(w http.ResponseWriter, status int, data any) {
	SetHeaderContentTypeApplicationJSON(w)
	w.WriteHeader(status)
	_ = go_json.NewEncoder(w).Encode(data)
}

func WriteOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

// Error writes a plain-text error with the standard status text.
func Error(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}

// WriteError writes a JSON error body: {"error": "..."}.
func WriteError(w http.ResponseWriter, status int, message string) {
	if message == "" {
		message = http.StatusText(status)
	}
	WriteJSON(w, status, map[string]string{"error": message})
}
