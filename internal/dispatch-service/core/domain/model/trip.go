package model

import (
	"encoding/json"
	"slices"
	"time"
)

const (
	StatusCreated   = "created"
	StatusAccept    = "accept"
	StatusWIP       = "WIP"
	StatusCompleted = "completed"
)

// PatchableTripFields maps the only client-patchable trip fields to their columns.
var PatchableTripFields = map[string]string{
	"startMeter": "start_meter",
	"endMeter":   "end_meter",
	"luggage":    "luggage",
	"pet":        "pet",
	"toll":       "toll",
	"hills":      "hills",
}

type Trip struct {
	ID                      int64      `json:"id"`
	PickupLocation          *string    `json:"pickupLocation"`
	DropLocation            *string    `json:"dropLocation"`
	TripType                *string    `json:"tripType"`
	Car                     *string    `json:"car"`
	PickupDate              *string    `json:"pickupDate"`
	PickupTime              *string    `json:"pickupTime"`
	Days                    float64    `json:"days"`
	KmPrice                 float64    `json:"kmPrice"`
	Km                      float64    `json:"km"`
	Betta                   float64    `json:"betta"`
	Phone                   *string    `json:"phone"`
	State                   *string    `json:"state"`
	CustomerName            *string    `json:"customerName"`
	CustomerRemark          *string    `json:"customerRemark"`
	Adult                   int        `json:"adult"`
	Child                   int        `json:"child"`
	Luggage                 float64    `json:"luggage"`
	CustomerCurrentLocation *string    `json:"customerCurrentLocation"`
	Status                  string     `json:"status"`
	AcceptedDrivers         string     `json:"acceptedDrivers"`
	DriverEmail             string     `json:"driverEmail"`
	AssignedAt              *time.Time `json:"assignedAt"`
	StartMeter              float64    `json:"startMeter"`
	EndMeter                float64    `json:"endMeter"`
	Pet                     float64    `json:"pet"`
	Toll                    float64    `json:"toll"`
	Hills                   float64    `json:"hills"`
	TotalKm                 float64    `json:"totalKm"`
	FinalKm                 float64    `json:"finalKm"`
	FinalBill               float64    `json:"finalBill"`
	CreatedAt               time.Time  `json:"createdAt"`
}

// TripCompletion holds the metered values written once when a trip completes.
type TripCompletion struct {
	StartMeter float64
	EndMeter   float64
	Luggage    float64
	Pet        float64
	Toll       float64
	Hills      float64
	TotalKm    float64
	FinalKm    float64
	FinalBill  float64
}

// ParseAcceptedDrivers decodes the stored JSON array of driver emails.
// Malformed content counts as an empty set, never an error.
func ParseAcceptedDrivers(raw string) []string {
	if raw == "" {
		return nil
	}
	var set []string
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil
	}
	return set
}

// AppendAcceptedDriver adds the email to the set unless it is already present.
// Arrival order is preserved.
func AppendAcceptedDriver(set []string, email string) ([]string, bool) {
	if slices.Contains(set, email) {
		return set, false
	}
	return append(set, email), true
}

// EncodeAcceptedDrivers serializes the set back to its stored form.
func EncodeAcceptedDrivers(set []string) string {
	if set == nil {
		set = []string{}
	}
	raw, _ := json.Marshal(set)
	return string(raw)
}

// InvolvesDriver reports whether the driver is tied to this trip, either as
// the assigned driver (exact match) or as a member of the accepted set.
func (t Trip) InvolvesDriver(email string) bool {
	if t.DriverEmail == email {
		return true
	}
	return slices.Contains(ParseAcceptedDrivers(t.AcceptedDrivers), email)
}
