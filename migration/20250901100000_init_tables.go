package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInitTables, downInitTables)
}

func upInitTables(ctx context.Context, tx *sql.Tx) error {
	// Create drivers table
	_, err := tx.ExecContext(ctx, `
		CREATE TABLE drivers (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone_number TEXT NOT NULL,
			password_hash BYTEA NOT NULL,
			rc_number TEXT,
			fc_expiry TEXT,
			insurance_number TEXT,
			insurance_expiry TEXT,
			driving_license TEXT,
			dl_expiry TEXT,
			status TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return err
	}

	// Create trips table
	_, err = tx.ExecContext(ctx, `
		CREATE TABLE trips (
			id BIGSERIAL PRIMARY KEY,
			pickup_location TEXT,
			drop_location TEXT,
			trip_type TEXT,
			car TEXT,
			pickup_date TEXT,
			pickup_time TEXT,
			days DOUBLE PRECISION NOT NULL DEFAULT 0,
			km_price DOUBLE PRECISION NOT NULL DEFAULT 0,
			km DOUBLE PRECISION NOT NULL DEFAULT 0,
			betta DOUBLE PRECISION NOT NULL DEFAULT 0,
			phone TEXT,
			state TEXT,
			customer_name TEXT,
			customer_remark TEXT,
			adult INTEGER NOT NULL DEFAULT 0,
			child INTEGER NOT NULL DEFAULT 0,
			luggage DOUBLE PRECISION NOT NULL DEFAULT 0,
			customer_current_location TEXT,
			status TEXT NOT NULL DEFAULT 'created',
			accepted_drivers TEXT NOT NULL DEFAULT '[]',
			driver_email TEXT NOT NULL DEFAULT '',
			assigned_at TIMESTAMPTZ,
			start_meter DOUBLE PRECISION NOT NULL DEFAULT 0,
			end_meter DOUBLE PRECISION NOT NULL DEFAULT 0,
			pet DOUBLE PRECISION NOT NULL DEFAULT 0,
			toll DOUBLE PRECISION NOT NULL DEFAULT 0,
			hills DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_km DOUBLE PRECISION NOT NULL DEFAULT 0,
			final_km DOUBLE PRECISION NOT NULL DEFAULT 0,
			final_bill DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		CREATE INDEX idx_trips_status ON trips (status);
	`)
	if err != nil {
		return err
	}

	// Create bills table
	_, err = tx.ExecContext(ctx, `
		CREATE TABLE bills (
			id BIGSERIAL PRIMARY KEY,
			driver_email TEXT NOT NULL,
			customer_name TEXT NOT NULL,
			phone TEXT,
			pickup_location TEXT,
			drop_location TEXT,
			pickup_date TEXT,
			pickup_time TEXT,
			trip_type TEXT,
			start_meter DOUBLE PRECISION NOT NULL DEFAULT 0,
			end_meter DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_km DOUBLE PRECISION NOT NULL DEFAULT 0,
			final_km DOUBLE PRECISION NOT NULL DEFAULT 0,
			km_price DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_km_price DOUBLE PRECISION NOT NULL DEFAULT 0,
			luggage_charge DOUBLE PRECISION NOT NULL DEFAULT 0,
			pet_charge DOUBLE PRECISION NOT NULL DEFAULT 0,
			toll_charge DOUBLE PRECISION NOT NULL DEFAULT 0,
			hills_charge DOUBLE PRECISION NOT NULL DEFAULT 0,
			betta_charge DOUBLE PRECISION NOT NULL DEFAULT 0,
			state_charge DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_entered_charges DOUBLE PRECISION NOT NULL DEFAULT 0,
			final_bill DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		CREATE INDEX idx_bills_driver_email ON bills (driver_email, created_at DESC);
	`)
	return err
}

func downInitTables(ctx context.Context, tx *sql.Tx) error {
	for _, q := range []string{
		`DROP TABLE IF EXISTS bills;`,
		`DROP TABLE IF EXISTS trips;`,
		`DROP TABLE IF EXISTS drivers;`,
	} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
