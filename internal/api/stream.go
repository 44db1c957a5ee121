package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"pacoupa/backend/internal/property"
)

// streamRequest is one client message on the solutions stream: a sparse
// profile patch to merge into the session profile, or a reset.
type streamRequest struct {
	Type  string          `json:"type"`
	Patch json.RawMessage `json:"patch,omitempty"`
}

// streamEvent is one server message on the solutions stream.
type streamEvent struct {
	Type      string             `json:"type"`
	Solutions *SolutionsResponse `json:"solutions,omitempty"`
	Message   string             `json:"message,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

// wsClient wraps a websocket connection with write locking.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) writeJSON(payload interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteJSON(payload)
}

// handleSolutionsStream runs the live recompute loop: the client streams
// profile patches as the user fills the form, the server answers each patch
// with the re-evaluated solutions. Session state lives on the connection,
// nothing is persisted.
func (s *Server) handleSolutionsStream(c *gin.Context) {
	upgrader := websocket.Upgrader{
		HandshakeTimeout:  5 * time.Second,
		EnableCompression: true,
		CheckOrigin: func(r *http.Request) bool {
			if len(s.allowedOrigins) == 0 {
				return true
			}
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			for _, allowed := range s.allowedOrigins {
				if strings.EqualFold(origin, allowed) {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("upgrade websocket")
		return
	}
	client := &wsClient{conn: conn}
	defer conn.Close()
	logrus.WithField("remote", conn.RemoteAddr().String()).Info("solutions websocket connected")

	profile := property.Default()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithError(err).Warn("solutions websocket unexpected close")
			} else {
				logrus.WithField("remote", conn.RemoteAddr().String()).Info("solutions websocket closed")
			}
			return
		}

		var req streamRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			_ = client.writeJSON(streamEvent{
				Type:      "error",
				Message:   "message illisible",
				Timestamp: time.Now().UTC(),
			})
			continue
		}

		switch req.Type {
		case "reset":
			profile = property.Default()
		case "patch", "":
			if len(req.Patch) > 0 {
				merged, err := profile.ApplyPatch(req.Patch)
				if err != nil {
					_ = client.writeJSON(streamEvent{
						Type:      "error",
						Message:   "patch invalide",
						Timestamp: time.Now().UTC(),
					})
					continue
				}
				profile = merged
			}
		default:
			_ = client.writeJSON(streamEvent{
				Type:      "error",
				Message:   "type de message inconnu",
				Timestamp: time.Now().UTC(),
			})
			continue
		}

		response := evaluateProfile(profile)
		if err := client.writeJSON(streamEvent{
			Type:      "solutions",
			Solutions: &response,
			Timestamp: time.Now().UTC(),
		}); err != nil {
			logrus.WithError(err).Warn("write solutions event")
			return
		}
	}
}
