package dto

import "time"

type BillCreateRequest struct {
	TripID              *int64     `json:"tripId"`
	DriverEmail         string     `json:"driverEmail"`
	CustomerName        string     `json:"customerName"`
	Phone               *string    `json:"phone"`
	PickupLocation      *string    `json:"pickupLocation"`
	DropLocation        *string    `json:"dropLocation"`
	PickupDate          *string    `json:"pickupDate"`
	PickupTime          *string    `json:"pickupTime"`
	TripType            *string    `json:"tripType"`
	StartMeter          float64    `json:"startMeter"`
	EndMeter            float64    `json:"endMeter"`
	TotalKm             float64    `json:"totalKm"`
	FinalKm             float64    `json:"finalKm"`
	KmPrice             float64    `json:"kmPrice"`
	TotalKmPrice        float64    `json:"totalKmPrice"`
	LuggageCharge       float64    `json:"luggageCharge"`
	PetCharge           float64    `json:"petCharge"`
	TollCharge          float64    `json:"tollCharge"`
	HillsCharge         float64    `json:"hillsCharge"`
	BettaCharge         float64    `json:"bettaCharge"`
	StateCharge         float64    `json:"stateCharge"`
	TotalEnteredCharges float64    `json:"totalEnteredCharges"`
	FinalBill           *float64   `json:"finalBill"`
	CreatedAt           *time.Time `json:"createdAt"`
}
