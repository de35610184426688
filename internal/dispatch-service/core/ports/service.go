package ports

import (
	"context"

	"ride-dispatch/internal/dispatch-service/core/domain/dto"
	"ride-dispatch/internal/dispatch-service/core/domain/model"
)

type IDriverService interface {
	Register(ctx context.Context, req dto.DriverRegistrationRequest) (int64, error)
	CheckExists(ctx context.Context, req dto.DriverExistsRequest) (dto.DriverExistsResponse, error)
	Login(ctx context.Context, req dto.DriverLoginRequest) (dto.DriverLoginResponse, error)
	GetByID(ctx context.Context, id int64) (model.Driver, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	StatusByEmail(ctx context.Context, email string) (string, error)
	List(ctx context.Context) ([]model.DriverSummary, error)
	ListAll(ctx context.Context) ([]model.Driver, error)
}

type ITripsService interface {
	Create(ctx context.Context, req dto.TripCreateRequest) (int64, error)
	List(ctx context.Context) ([]model.Trip, error)
	GetByID(ctx context.Context, id int64) (model.Trip, error)

	Accept(ctx context.Context, id int64, driverEmail string) error
	AssignDriver(ctx context.Context, req dto.TripAssignRequest) error
	Start(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64, req dto.TripCompleteRequest) error
	UpdateField(ctx context.Context, req dto.TripFieldUpdateRequest) error

	AcceptedByDriver(ctx context.Context, driverEmail string) ([]model.Trip, error)
	InProgressByDriver(ctx context.Context, driverEmail string) ([]model.Trip, error)
	StatusByDriver(ctx context.Context, driverEmail string) (dto.TripStatusResponse, error)
}

type IBillsService interface {
	Create(ctx context.Context, req dto.BillCreateRequest) (int64, error)
	ListByDriver(ctx context.Context, driverEmail string) ([]model.Bill, error)
	ListAll(ctx context.Context) ([]model.Bill, error)
}
