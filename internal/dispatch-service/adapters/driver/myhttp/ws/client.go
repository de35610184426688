package ws

import (
	"context"

	messagebrokerdto "ride-dispatch/internal/dispatch-service/core/domain/message_broker_dto"

	"github.com/gorilla/websocket"
)

type Client struct {
	ctx         context.Context
	conn        *websocket.Conn
	dis         *Dispatcher
	egress      chan messagebrokerdto.TripEvent
	driverEmail string
}

func NewClient(ctx context.Context, conn *websocket.Conn, dis *Dispatcher, driverEmail string) *Client {
	return &Client{
		ctx:         ctx,
		conn:        conn,
		dis:         dis,
		egress:      make(chan messagebrokerdto.TripEvent, 8),
		driverEmail: driverEmail,
	}
}

// ReadMessage drains the connection. Drivers only listen on this feed, so
// inbound payloads are discarded; the loop exists to notice closes.
func (c *Client) ReadMessage() {
	defer c.dis.RemoveClient(c)

	c.conn.SetReadLimit(1024)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.dis.log.Warn("unexpected websocket close", "driver", c.driverEmail)
			}
			break
		}
	}
}

func (c *Client) WriteMessage() {
	for {
		select {
		case <-c.ctx.Done():
			c.conn.Close()
			return
		case event, ok := <-c.egress:
			if !ok {
				c.conn.Close()
				return
			}

			if err := c.conn.WriteJSON(event); err != nil {
				c.dis.log.Warn("cannot write to websocket", "driver", c.driverEmail, "error", err.Error())
				c.dis.RemoveClient(c)
				return
			}
		}
	}
}
