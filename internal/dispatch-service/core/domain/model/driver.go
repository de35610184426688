package model

import "time"

type Driver struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phoneNumber"`
	PasswordHash    []byte    `json:"-"`
	RcNumber        *string   `json:"rcNumber"`
	FcExpiry        *string   `json:"fcDate"`
	InsuranceNumber *string   `json:"insuranceNumber"`
	InsuranceExpiry *string   `json:"insuranceExpiryDate"`
	DrivingLicense  *string   `json:"drivingLicense"`
	DlExpiry        *string   `json:"drivingLicenseExpiryDate"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// DriverSummary is the short listing used by the trip-planning UI.
type DriverSummary struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DriverUniqueFields carries the four uniqueness-sensitive columns of one row,
// used by the advisory existence check.
type DriverUniqueFields struct {
	Email           string
	PhoneNumber     string
	RcNumber        *string
	InsuranceNumber *string
}
