package messagebrokerdto

// Trip lifecycle events → trip_topic exchange

const (
	EventTripCreated   = "created"
	EventTripAccepted  = "accept_intent"
	EventTripAssigned  = "assigned"
	EventTripStarted   = "started"
	EventTripCompleted = "completed"
)

type TripEvent struct {
	Event       string `json:"event"`
	TripID      int64  `json:"trip_id"`
	DriverEmail string `json:"driver_email,omitempty"`
	Status      string `json:"status"`
	OccurredAt  string `json:"occurred_at"`
}
