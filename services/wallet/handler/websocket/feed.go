package websocket

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/constants"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/logger"
	natspkg "github.com/rafflepay/wallet-dashboard/internal/pkg/nats"
)

// FeedHandler bridges the transaction change stream to connected dashboard
// clients over WebSocket
type FeedHandler struct {
	sync.RWMutex
	natsClient *natspkg.Client
	clients    map[*websocket.Conn]struct{}
	upgrader   websocket.Upgrader
}

// NewFeedHandler creates a new live-feed handler
func NewFeedHandler(natsClient *natspkg.Client) *FeedHandler {
	return &FeedHandler{
		natsClient: natsClient,
		clients:    make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// InitConsumers subscribes to the transaction change-stream subjects and
// forwards every event to all connected clients
func (h *FeedHandler) InitConsumers() error {
	subjects := []string{
		constants.SubjectTransactionCreated,
		constants.SubjectTransactionUpdated,
		constants.SubjectTransactionDeleted,
	}

	for _, subject := range subjects {
		if _, err := h.natsClient.Subscribe(subject, h.handleChangeEvent); err != nil {
			return err
		}
	}

	return nil
}

// handleChangeEvent broadcasts a change-stream message to all clients
func (h *FeedHandler) handleChangeEvent(msg *nats.Msg) {
	h.broadcast(msg.Data)
}

// HandleWebSocket upgrades the connection and keeps it registered until the
// client disconnects. Inbound messages are discarded; the feed is one-way.
func (h *FeedHandler) HandleWebSocket(c echo.Context) error {
	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	h.addClient(ws)
	defer h.removeClient(ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("WebSocket read error", logger.Err(err))
			}
			return nil
		}
	}
}

func (h *FeedHandler) addClient(ws *websocket.Conn) {
	h.Lock()
	defer h.Unlock()
	h.clients[ws] = struct{}{}
}

func (h *FeedHandler) removeClient(ws *websocket.Conn) {
	h.Lock()
	defer h.Unlock()
	delete(h.clients, ws)
}

// ClientCount returns the number of connected dashboard clients
func (h *FeedHandler) ClientCount() int {
	h.RLock()
	defer h.RUnlock()
	return len(h.clients)
}

// broadcast writes the event to every connected client, dropping clients
// whose connections fail
func (h *FeedHandler) broadcast(data []byte) {
	h.Lock()
	defer h.Unlock()

	for ws := range h.clients {
		if err := ws.WriteMessage(websocket.TextMessage, data); err != nil {
			logger.Warn("Dropping unresponsive feed client", logger.Err(err))
			ws.Close()
			delete(h.clients, ws)
		}
	}
}
