package editor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/mermaidviz/internal/theming"
)

// RegisterRoutes mounts the editor page and its API onto the given router.
func RegisterRoutes(r chi.Router) {
	r.Get("/", ServeIndex)
	r.Post("/api/analyze", handleAnalyze)
	r.Post("/api/preview", handlePreview)
	r.Get("/api/capabilities", handleCapabilities)
}

// RegisterLiveRoutes mounts the editor WebSocket. Keep it off routers with
// a request timeout; connections live as long as the editor tab.
func RegisterLiveRoutes(r chi.Router) {
	r.Get("/ws/editor", handleWebSocket)
}

// codeRequest is the body of the analyze and preview endpoints.
type codeRequest struct {
	Code string `json:"code"`
}

// capabilityEntry is one row of the capabilities endpoint.
type capabilityEntry struct {
	DiagramType theming.DiagramType `json:"diagramType"`
	theming.Capability
	Limitation string `json:"limitation,omitempty"`
}

func handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	writeJSON(w, http.StatusOK, Analyze(req.Code))
}

func handlePreview(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	writeJSON(w, http.StatusOK, PreparePreview(req.Code))
}

func handleCapabilities(w http.ResponseWriter, r *http.Request) {
	types := theming.Types()
	entries := make([]capabilityEntry, 0, len(types))
	for _, t := range types {
		caps, _ := theming.Lookup(t)
		msg, _ := theming.LimitationMessage(t)
		entries = append(entries, capabilityEntry{DiagramType: t, Capability: caps, Limitation: msg})
	}
	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
