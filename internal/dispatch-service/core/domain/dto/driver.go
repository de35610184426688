package dto

import "ride-dispatch/internal/dispatch-service/core/domain/model"

// API Transfer data

type DriverRegistrationRequest struct {
	Name                     string  `json:"name"`
	Email                    string  `json:"email"`
	PhoneNumber              string  `json:"phoneNumber"`
	Password                 string  `json:"password"`
	RcNumber                 *string `json:"rcNumber"`
	FcDate                   *string `json:"fcDate"`
	InsuranceNumber          *string `json:"insuranceNumber"`
	InsuranceExpiryDate      *string `json:"insuranceExpiryDate"`
	DrivingLicense           *string `json:"drivingLicense"`
	DrivingLicenseExpiryDate *string `json:"drivingLicenseExpiryDate"`
}

type DriverExistsRequest struct {
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	RcNumber        string `json:"rcNumber"`
	InsuranceNumber string `json:"insuranceNumber"`
}

// DriverExistsResponse carries four independent booleans, one per
// uniqueness-sensitive field. They need not match the same driver row.
type DriverExistsResponse struct {
	Email           bool `json:"email"`
	PhoneNumber     bool `json:"phoneNumber"`
	RcNumber        bool `json:"rcNumber"`
	InsuranceNumber bool `json:"insuranceNumber"`
}

type DriverLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type DriverLoginResponse struct {
	Token string       `json:"token"`
	User  model.Driver `json:"user"`
}
