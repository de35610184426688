package ws

import (
	"net/http"
	"sync"

	messagebrokerdto "ride-dispatch/internal/dispatch-service/core/domain/message_broker_dto"
	"ride-dispatch/internal/mylogger"

	"github.com/gorilla/websocket"
)

// websocketUpgrader upgrades incoming HTTP requests into a persistent
// websocket connection.
var websocketUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ClientList is a map used to help manage a map of clients
type ClientList map[*Client]bool

type Dispatcher struct {
	clients ClientList
	sync.RWMutex
	log mylogger.Logger
}

func NewDispatcher(log mylogger.Logger) *Dispatcher {
	return &Dispatcher{
		clients: make(ClientList),
		log:     log,
	}
}

// FeedHandler attaches a driver to the trip event feed. The auth middleware
// has already verified the token and stamped X-DriverEmail.
func (d *Dispatcher) FeedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := d.log.Action("feedHandler")

		driverEmail := r.PathValue("email")
		if driverEmail == "" || driverEmail != r.Header.Get("X-DriverEmail") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		conn, err := websocketUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("cannot upgrade", err)
			return
		}

		client := NewClient(r.Context(), conn, d, driverEmail)
		d.AddClient(client)
		go client.ReadMessage()
		go client.WriteMessage()

		log.Info("driver connected to trip feed", "driver", driverEmail)
	}
}

func (d *Dispatcher) AddClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	d.clients[client] = true
}

func (d *Dispatcher) RemoveClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	if _, ok := d.clients[client]; ok {
		client.conn.Close()
		delete(d.clients, client)
	}
}

// NotifyDriver pushes the event to every connection of the given driver.
// A slow client drops the event instead of blocking the request path.
func (d *Dispatcher) NotifyDriver(email string, event messagebrokerdto.TripEvent) {
	d.RLock()
	defer d.RUnlock()

	for client := range d.clients {
		if client.driverEmail != email {
			continue
		}
		select {
		case client.egress <- event:
		default:
			d.log.Warn("dropping trip event, slow websocket client", "driver", email)
		}
	}
}

// Broadcast pushes the event to every connected driver.
func (d *Dispatcher) Broadcast(event messagebrokerdto.TripEvent) {
	d.RLock()
	defer d.RUnlock()

	for client := range d.clients {
		select {
		case client.egress <- event:
		default:
			d.log.Warn("dropping trip event, slow websocket client", "driver", client.driverEmail)
		}
	}
}
