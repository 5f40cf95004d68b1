package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/g1tyx/idle-dungeon-runner/internal/engine"
	"github.com/g1tyx/idle-dungeon-runner/internal/network"
	"github.com/g1tyx/idle-dungeon-runner/pkg/api"
	"github.com/g1tyx/idle-dungeon-runner/pkg/logger"
	"github.com/g1tyx/idle-dungeon-runner/pkg/utils"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client — посредник между WebSocket и симуляцией.
// Читает команды зрителя, пересылает снапшоты из Hub.
type Client struct {
	ID   string
	Game *engine.Game
	Hub  *network.Hub
	Conn *websocket.Conn
	Send chan *api.ServerResponse
}

func NewClient(game *engine.Game, hub *network.Hub, conn *websocket.Conn) *Client {
	return &Client{
		ID:   utils.GenerateID(),
		Game: game,
		Hub:  hub,
		Conn: conn,
		Send: make(chan *api.ServerResponse, 256),
	}
}

// readPump читает команды от клиента.
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
		logger.Log.WithField("client_id", c.ID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// Подписка на обновления и пересылка в writePump
	updates := c.Hub.Register(c.ID)
	go forwardUpdates(updates, c.Send)

	// INIT: полный снимок для первой отрисовки
	c.Send <- c.Game.Snapshot()

	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		c.dispatch(cmd)
	}
}

// forwardUpdates пересылает кадры из hub в очередь writePump.
// Отправка неблокирующая: если writePump умер или отстал при
// полном буфере, кадр отбрасывается — иначе горутина повисла бы
// на отправке до конца жизни процесса.
func forwardUpdates(updates <-chan *api.ServerResponse, send chan<- *api.ServerResponse) {
	for msg := range updates {
		select {
		case send <- msg:
		default:
		}
	}
	close(send)
}

// dispatch разбирает команду клиента и кладет ее в очередь симуляции.
// Кривой payload просто игнорируется — зритель не может сломать забег.
func (c *Client) dispatch(cmd api.ClientCommand) {
	switch cmd.Action {
	case "USE_SKILL":
		var p api.SkillPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil || p.ID == "" {
			return
		}
		c.Game.Submit(engine.Command{Kind: engine.CmdUseSkill, SkillID: p.ID})

	case "DODGE":
		var p api.DodgePayload
		if len(cmd.Payload) > 0 {
			if err := json.Unmarshal(cmd.Payload, &p); err != nil {
				return
			}
		}
		c.Game.Submit(engine.Command{Kind: engine.CmdDodge, Dx: p.Dx, Dy: p.Dy})

	case "SPEED":
		var p api.SpeedPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			return
		}
		c.Game.Submit(engine.Command{Kind: engine.CmdSetSpeed, Speed: p.Mult})

	default:
		logger.Log.WithField("action", cmd.Action).Debug("Unknown client action")
	}
}

// writePump отправляет данные клиенту + Ping.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
