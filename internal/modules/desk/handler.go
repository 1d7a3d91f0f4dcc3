package desk

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/desk", h.Connect)
}

// Connect upgrades the request to a websocket and streams events until
// the terminal hangs up. The read loop only drains control frames,
// terminals do not send anything meaningful upstream.
func (h *Handler) Connect(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	id := h.hub.Register(ws)
	defer h.hub.Unregister(id)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}
