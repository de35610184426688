package ports

import (
	messagebrokerdto "ride-dispatch/internal/dispatch-service/core/domain/message_broker_dto"
)

// IDriverNotifier pushes trip events to connected driver websocket clients.
type IDriverNotifier interface {
	NotifyDriver(email string, event messagebrokerdto.TripEvent)
	Broadcast(event messagebrokerdto.TripEvent)
}
