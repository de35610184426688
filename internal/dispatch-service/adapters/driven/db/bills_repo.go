package db

import (
	"context"
	"fmt"

	"ride-dispatch/internal/dispatch-service/core/domain/model"
	"ride-dispatch/internal/dispatch-service/core/ports"

	"github.com/jackc/pgx/v5"
)

const billFields = `
	id,
	driver_email,
	customer_name,
	phone,
	pickup_location,
	drop_location,
	pickup_date,
	pickup_time,
	trip_type,
	start_meter,
	end_meter,
	total_km,
	final_km,
	km_price,
	total_km_price,
	luggage_charge,
	pet_charge,
	toll_charge,
	hills_charge,
	betta_charge,
	state_charge,
	total_entered_charges,
	final_bill,
	created_at
`

type BillsRepo struct {
	db *DB
}

func NewBillsRepo(db *DB) ports.IBillsRepo {
	return &BillsRepo{
		db: db,
	}
}

func (br *BillsRepo) Create(ctx context.Context, bill model.Bill) (int64, error) {
	q := `
	INSERT INTO bills (
		driver_email,
		customer_name,
		phone,
		pickup_location,
		drop_location,
		pickup_date,
		pickup_time,
		trip_type,
		start_meter,
		end_meter,
		total_km,
		final_km,
		km_price,
		total_km_price,
		luggage_charge,
		pet_charge,
		toll_charge,
		hills_charge,
		betta_charge,
		state_charge,
		total_entered_charges,
		final_bill,
		created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	RETURNING id`

	var id int64
	row := br.db.pool.QueryRow(ctx, q,
		bill.DriverEmail,
		bill.CustomerName,
		bill.Phone,
		bill.PickupLocation,
		bill.DropLocation,
		bill.PickupDate,
		bill.PickupTime,
		bill.TripType,
		bill.StartMeter,
		bill.EndMeter,
		bill.TotalKm,
		bill.FinalKm,
		bill.KmPrice,
		bill.TotalKmPrice,
		bill.LuggageCharge,
		bill.PetCharge,
		bill.TollCharge,
		bill.HillsCharge,
		bill.BettaCharge,
		bill.StateCharge,
		bill.TotalEnteredCharges,
		bill.FinalBill,
		bill.CreatedAt,
	)
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert bill: %v", err)
	}
	return id, nil
}

func (br *BillsRepo) ListByDriver(ctx context.Context, driverEmail string) ([]model.Bill, error) {
	q := `SELECT ` + billFields + ` FROM bills WHERE driver_email = $1 ORDER BY created_at DESC`
	return br.queryBills(ctx, q, driverEmail)
}

func (br *BillsRepo) ListAll(ctx context.Context) ([]model.Bill, error) {
	q := `SELECT ` + billFields + ` FROM bills ORDER BY pickup_date DESC`
	return br.queryBills(ctx, q)
}

func (br *BillsRepo) queryBills(ctx context.Context, q string, args ...any) ([]model.Bill, error) {
	rows, err := br.db.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bills := []model.Bill{}
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

func scanBill(row pgx.Row) (model.Bill, error) {
	var b model.Bill
	err := row.Scan(
		&b.ID,
		&b.DriverEmail,
		&b.CustomerName,
		&b.Phone,
		&b.PickupLocation,
		&b.DropLocation,
		&b.PickupDate,
		&b.PickupTime,
		&b.TripType,
		&b.StartMeter,
		&b.EndMeter,
		&b.TotalKm,
		&b.FinalKm,
		&b.KmPrice,
		&b.TotalKmPrice,
		&b.LuggageCharge,
		&b.PetCharge,
		&b.TollCharge,
		&b.HillsCharge,
		&b.BettaCharge,
		&b.StateCharge,
		&b.TotalEnteredCharges,
		&b.FinalBill,
		&b.CreatedAt,
	)
	if err != nil {
		return model.Bill{}, err
	}
	return b, nil
}
