package editor

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Type string `json:"type"` // "analyze" or "preview"
	Code string `json:"code"`
}

// liveResponse is the outgoing WebSocket message format. Exactly one of
// Analysis, Preview and Error is set, matching Type.
type liveResponse struct {
	Type     string    `json:"type"` // "analysis", "preview" or "error"
	Analysis *Analysis `json:"analysis,omitempty"`
	Preview  *Preview  `json:"preview,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// handleWebSocket answers every editor message on the same connection so
// warnings follow the user's typing without a request per keystroke.
func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("editor: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("editor: websocket read: %v", err)
			}
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			send(conn, liveResponse{Type: "error", Error: "invalid message format"})
			continue
		}

		switch req.Type {
		case "analyze":
			a := Analyze(req.Code)
			send(conn, liveResponse{Type: "analysis", Analysis: &a})
		case "preview":
			p := PreparePreview(req.Code)
			send(conn, liveResponse{Type: "preview", Preview: &p})
		default:
			send(conn, liveResponse{Type: "error", Error: "unknown message type: " + req.Type})
		}
	}
}

func send(conn *websocket.Conn, resp liveResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("editor: websocket write: %v", err)
	}
}
