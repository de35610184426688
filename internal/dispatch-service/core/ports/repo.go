package ports

import (
	"context"

	"ride-dispatch/internal/dispatch-service/core/domain/model"
)

type IDriverRepo interface {
	Create(ctx context.Context, driver model.Driver) (int64, error)
	FindUniqueFieldMatches(ctx context.Context, email, phone, rcNumber, insuranceNumber string) ([]model.DriverUniqueFields, error)
	GetByEmail(ctx context.Context, email string) (model.Driver, error)
	GetByID(ctx context.Context, id int64) (model.Driver, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	StatusByEmail(ctx context.Context, email string) (string, error)
	ListSummaries(ctx context.Context) ([]model.DriverSummary, error)
	ListAll(ctx context.Context) ([]model.Driver, error)
}

type ITripsRepo interface {
	Create(ctx context.Context, trip model.Trip) (int64, error)
	List(ctx context.Context) ([]model.Trip, error)
	GetByID(ctx context.Context, id int64) (model.Trip, error)

	// Accept runs the accepted-set read-modify-write in one transaction.
	// The returned bool reports whether the email was newly added.
	Accept(ctx context.Context, id int64, driverEmail string) (bool, error)
	AssignDriver(ctx context.Context, id int64, driverEmail string) error
	Start(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64, completion model.TripCompletion) error
	UpdateField(ctx context.Context, id int64, column string, value any) error

	ListByStatus(ctx context.Context, status string) ([]model.Trip, error)
}

type IBillsRepo interface {
	Create(ctx context.Context, bill model.Bill) (int64, error)
	ListByDriver(ctx context.Context, driverEmail string) ([]model.Bill, error)
	ListAll(ctx context.Context) ([]model.Bill, error)
}
