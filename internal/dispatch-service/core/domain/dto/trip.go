package dto

import "ride-dispatch/internal/dispatch-service/core/domain/model"

type TripCreateRequest struct {
	PickupLocation          *string `json:"pickupLocation"`
	DropLocation            *string `json:"dropLocation"`
	TripType                *string `json:"tripType"`
	Car                     *string `json:"car"`
	PickupDate              *string `json:"pickupDate"`
	PickupTime              *string `json:"pickupTime"`
	Days                    float64 `json:"days"`
	KmPrice                 float64 `json:"kmPrice"`
	Km                      float64 `json:"km"`
	Betta                   float64 `json:"betta"`
	Phone                   *string `json:"phone"`
	State                   *string `json:"state"`
	CustomerName            *string `json:"customerName"`
	CustomerRemark          *string `json:"customerRemark"`
	Adult                   int     `json:"adult"`
	Child                   int     `json:"child"`
	Luggage                 float64 `json:"luggage"`
	CustomerCurrentLocation *string `json:"customerCurrentLocation"`
}

type TripAcceptRequest struct {
	DriverEmail string `json:"driverEmail"`
}

type TripAssignRequest struct {
	TripID      int64  `json:"tripId"`
	DriverEmail string `json:"driverEmail"`
}

// TripCompleteRequest uses pointers for the three required meters so that an
// absent field is distinguishable from zero.
type TripCompleteRequest struct {
	StartMeter *float64 `json:"startMeter"`
	EndMeter   *float64 `json:"endMeter"`
	Luggage    float64  `json:"luggage"`
	Pet        float64  `json:"pet"`
	Toll       float64  `json:"toll"`
	Hills      float64  `json:"hills"`
	TotalKm    float64  `json:"totalKm"`
	FinalKm    float64  `json:"finalKm"`
	FinalBill  *float64 `json:"finalBill"`
}

type TripFieldUpdateRequest struct {
	TripID int64  `json:"tripId"`
	Field  string `json:"field"`
	Value  any    `json:"value"`
}

type TripStatusResponse struct {
	AcceptedTrips []model.Trip `json:"acceptedTrips"`
	WipTrips      []model.Trip `json:"wipTrips"`
}
