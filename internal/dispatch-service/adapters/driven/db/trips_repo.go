package db

import (
	"context"
	"errors"
	"fmt"

	"ride-dispatch/internal/dispatch-service/core/domain/model"
	"ride-dispatch/internal/dispatch-service/core/myerrors"
	"ride-dispatch/internal/dispatch-service/core/ports"

	"github.com/jackc/pgx/v5"
)

const tripFields = `
	id,
	pickup_location,
	drop_location,
	trip_type,
	car,
	pickup_date,
	pickup_time,
	days,
	km_price,
	km,
	betta,
	phone,
	state,
	customer_name,
	customer_remark,
	adult,
	child,
	luggage,
	customer_current_location,
	status,
	accepted_drivers,
	driver_email,
	assigned_at,
	start_meter,
	end_meter,
	pet,
	toll,
	hills,
	total_km,
	final_km,
	final_bill,
	created_at
`

type TripsRepo struct {
	db *DB
}

func NewTripsRepo(db *DB) ports.ITripsRepo {
	return &TripsRepo{
		db: db,
	}
}

func (tr *TripsRepo) Create(ctx context.Context, trip model.Trip) (int64, error) {
	q := `
	INSERT INTO trips (
		pickup_location,
		drop_location,
		trip_type,
		car,
		pickup_date,
		pickup_time,
		days,
		km_price,
		km,
		betta,
		phone,
		state,
		customer_name,
		customer_remark,
		adult,
		child,
		luggage,
		customer_current_location,
		status
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	RETURNING id`

	var id int64
	row := tr.db.pool.QueryRow(ctx, q,
		trip.PickupLocation,
		trip.DropLocation,
		trip.TripType,
		trip.Car,
		trip.PickupDate,
		trip.PickupTime,
		trip.Days,
		trip.KmPrice,
		trip.Km,
		trip.Betta,
		trip.Phone,
		trip.State,
		trip.CustomerName,
		trip.CustomerRemark,
		trip.Adult,
		trip.Child,
		trip.Luggage,
		trip.CustomerCurrentLocation,
		trip.Status,
	)
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert trip: %v", err)
	}
	return id, nil
}

func (tr *TripsRepo) List(ctx context.Context) ([]model.Trip, error) {
	q := `SELECT ` + tripFields + ` FROM trips ORDER BY id`
	return tr.queryTrips(ctx, q)
}

func (tr *TripsRepo) ListByStatus(ctx context.Context, status string) ([]model.Trip, error) {
	q := `SELECT ` + tripFields + ` FROM trips WHERE status = $1 ORDER BY id`
	return tr.queryTrips(ctx, q, status)
}

func (tr *TripsRepo) GetByID(ctx context.Context, id int64) (model.Trip, error) {
	q := `SELECT ` + tripFields + ` FROM trips WHERE id = $1`
	return scanTrip(tr.db.pool.QueryRow(ctx, q, id))
}

// Accept performs the accepted-set read-modify-write under a row lock so two
// concurrent accept-intents cannot lose an update.
func (tr *TripsRepo) Accept(ctx context.Context, id int64, driverEmail string) (bool, error) {
	tx, err := tr.db.pool.Begin(ctx)
	if err != nil {
		// Check if the database is alive
		if err := tr.db.IsAlive(); err != nil {
			return false, err
		}
		return false, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx) // Safe rollback if not committed

	q := `SELECT accepted_drivers FROM trips WHERE id = $1 FOR UPDATE`
	var raw string
	if err := tx.QueryRow(ctx, q, id).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, myerrors.ErrTripNotFound
		}
		return false, err
	}

	set := model.ParseAcceptedDrivers(raw)
	set, added := model.AppendAcceptedDriver(set, driverEmail)

	q = `UPDATE trips SET accepted_drivers = $1, status = $2 WHERE id = $3`
	if _, err := tx.Exec(ctx, q, model.EncodeAcceptedDrivers(set), model.StatusAccept, id); err != nil {
		return false, err
	}

	return added, tx.Commit(ctx)
}

func (tr *TripsRepo) AssignDriver(ctx context.Context, id int64, driverEmail string) error {
	q := `UPDATE trips SET driver_email = $1, status = $2, assigned_at = now() WHERE id = $3`

	tag, err := tr.db.pool.Exec(ctx, q, driverEmail, model.StatusAccept, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrTripNotFound
	}
	return nil
}

func (tr *TripsRepo) Start(ctx context.Context, id int64) error {
	q := `UPDATE trips SET status = $1 WHERE id = $2`

	tag, err := tr.db.pool.Exec(ctx, q, model.StatusWIP, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrTripNotFound
	}
	return nil
}

func (tr *TripsRepo) Complete(ctx context.Context, id int64, c model.TripCompletion) error {
	q := `
	UPDATE trips SET
		start_meter = $1,
		end_meter = $2,
		luggage = $3,
		pet = $4,
		toll = $5,
		hills = $6,
		total_km = $7,
		final_km = $8,
		final_bill = $9,
		status = $10
	WHERE id = $11`

	tag, err := tr.db.pool.Exec(ctx, q,
		c.StartMeter,
		c.EndMeter,
		c.Luggage,
		c.Pet,
		c.Toll,
		c.Hills,
		c.TotalKm,
		c.FinalKm,
		c.FinalBill,
		model.StatusCompleted,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrTripNotFound
	}
	return nil
}

// UpdateField writes one column. The column name comes from the service-side
// allow-list, never from the client.
func (tr *TripsRepo) UpdateField(ctx context.Context, id int64, column string, value any) error {
	q := fmt.Sprintf(`UPDATE trips SET %s = $1 WHERE id = $2`, column)

	tag, err := tr.db.pool.Exec(ctx, q, value, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrTripNotFound
	}
	return nil
}

func (tr *TripsRepo) queryTrips(ctx context.Context, q string, args ...any) ([]model.Trip, error) {
	rows, err := tr.db.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []model.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func scanTrip(row pgx.Row) (model.Trip, error) {
	var t model.Trip
	err := row.Scan(
		&t.ID,
		&t.PickupLocation,
		&t.DropLocation,
		&t.TripType,
		&t.Car,
		&t.PickupDate,
		&t.PickupTime,
		&t.Days,
		&t.KmPrice,
		&t.Km,
		&t.Betta,
		&t.Phone,
		&t.State,
		&t.CustomerName,
		&t.CustomerRemark,
		&t.Adult,
		&t.Child,
		&t.Luggage,
		&t.CustomerCurrentLocation,
		&t.Status,
		&t.AcceptedDrivers,
		&t.DriverEmail,
		&t.AssignedAt,
		&t.StartMeter,
		&t.EndMeter,
		&t.Pet,
		&t.Toll,
		&t.Hills,
		&t.TotalKm,
		&t.FinalKm,
		&t.FinalBill,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Trip{}, myerrors.ErrTripNotFound
		}
		return model.Trip{}, err
	}
	return t, nil
}
