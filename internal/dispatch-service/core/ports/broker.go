package ports

import (
	"context"

	messagebrokerdto "ride-dispatch/internal/dispatch-service/core/domain/message_broker_dto"
)

type ITripEventsBroker interface {
	Close() error
	PublishTripEvent(ctx context.Context, event messagebrokerdto.TripEvent) error
}
