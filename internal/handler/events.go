package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/hub"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/middleware"
)

// writeWait bounds how long a single websocket write may take before the
// connection is considered dead.
const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers connect from a separately served frontend.
	CheckOrigin: func(*http.Request) bool { return true },
}

// EventsHandler upgrades GET /v1/events to a websocket and streams hub
// events to the client until either side closes.  Browsers cannot set an
// Authorization header on a websocket handshake, so the access token is
// carried in the `token` query parameter instead and verified with the
// same code the HTTP middleware uses.
type EventsHandler struct {
	Secret string
	Hub    *hub.Hub
}

func NewEventsHandler(secret string, h *hub.Hub) *EventsHandler {
	if h == nil {
		panic("nil hub passed to NewEventsHandler")
	}
	return &EventsHandler{Secret: secret, Hub: h}
}

// Stream handles GET /v1/events?token=<access token>.
func (h *EventsHandler) Stream(c echo.Context) error {
	raw := c.QueryParam("token")
	if raw == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing token"})
	}
	userID, _, err := middleware.VerifyAccessToken(h.Secret, raw)
	if err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "invalid or expired token"})
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written its own error response.
		return nil
	}

	sub := h.Hub.Subscribe(userID)
	go h.writePump(conn, sub)
	h.readPump(conn, sub)
	return nil
}

// writePump serializes hub events onto the connection.  It exits when the
// subscriber channel closes or a write fails; either way the connection
// is torn down, which also unblocks readPump.
func (h *EventsHandler) writePump(conn *websocket.Conn, sub *hub.Subscriber) {
	defer conn.Close()
	for ev := range sub.C {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(ev); err != nil {
			log.Printf("events: write to user %d failed: %v", sub.UserID, err)
			return
		}
	}
}

// readPump discards inbound frames and exists to detect the client
// closing the connection.
func (h *EventsHandler) readPump(conn *websocket.Conn, sub *hub.Subscriber) {
	defer func() {
		h.Hub.Unsubscribe(sub)
		conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
