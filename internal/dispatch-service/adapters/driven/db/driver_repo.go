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

// driverColumns maps client-facing field names onto columns for the partial
// update. Unknown names are passed through quoted, the DB rejects them.
var driverColumns = map[string]string{
	"name":                     "name",
	"email":                    "email",
	"phoneNumber":              "phone_number",
	"rcNumber":                 "rc_number",
	"fcDate":                   "fc_expiry",
	"insuranceNumber":          "insurance_number",
	"insuranceExpiryDate":      "insurance_expiry",
	"drivingLicense":           "driving_license",
	"drivingLicenseExpiryDate": "dl_expiry",
	"status":                   "status",
}

const driverFields = `
	id,
	name,
	email,
	phone_number,
	password_hash,
	rc_number,
	fc_expiry,
	insurance_number,
	insurance_expiry,
	driving_license,
	dl_expiry,
	status,
	created_at
`

type DriverRepo struct {
	db *DB
}

func NewDriverRepo(db *DB) ports.IDriverRepo {
	return &DriverRepo{
		db: db,
	}
}

func (dr *DriverRepo) Create(ctx context.Context, driver model.Driver) (int64, error) {
	q := `
	INSERT INTO drivers (
		name,
		email,
		phone_number,
		password_hash,
		rc_number,
		fc_expiry,
		insurance_number,
		insurance_expiry,
		driving_license,
		dl_expiry
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`

	var id int64
	row := dr.db.pool.QueryRow(ctx, q,
		driver.Name,
		driver.Email,
		driver.PhoneNumber,
		driver.PasswordHash,
		driver.RcNumber,
		driver.FcExpiry,
		driver.InsuranceNumber,
		driver.InsuranceExpiry,
		driver.DrivingLicense,
		driver.DlExpiry,
	)
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert driver: %v", err)
	}
	return id, nil
}

func (dr *DriverRepo) FindUniqueFieldMatches(ctx context.Context, email, phone, rcNumber, insuranceNumber string) ([]model.DriverUniqueFields, error) {
	q := `
	SELECT
		email,
		phone_number,
		rc_number,
		insurance_number
	FROM
		drivers
	WHERE
		email = $1 OR phone_number = $2 OR rc_number = $3 OR insurance_number = $4`

	rows, err := dr.db.pool.Query(ctx, q, email, phone, rcNumber, insuranceNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []model.DriverUniqueFields
	for rows.Next() {
		var m model.DriverUniqueFields
		if err := rows.Scan(&m.Email, &m.PhoneNumber, &m.RcNumber, &m.InsuranceNumber); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (dr *DriverRepo) GetByEmail(ctx context.Context, email string) (model.Driver, error) {
	q := `SELECT ` + driverFields + ` FROM drivers WHERE email = $1`
	return dr.scanDriver(dr.db.pool.QueryRow(ctx, q, email))
}

func (dr *DriverRepo) GetByID(ctx context.Context, id int64) (model.Driver, error) {
	q := `SELECT ` + driverFields + ` FROM drivers WHERE id = $1`
	return dr.scanDriver(dr.db.pool.QueryRow(ctx, q, id))
}

func (dr *DriverRepo) scanDriver(row pgx.Row) (model.Driver, error) {
	var d model.Driver
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Email,
		&d.PhoneNumber,
		&d.PasswordHash,
		&d.RcNumber,
		&d.FcExpiry,
		&d.InsuranceNumber,
		&d.InsuranceExpiry,
		&d.DrivingLicense,
		&d.DlExpiry,
		&d.Status,
		&d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Driver{}, myerrors.ErrDriverNotFound
		}
		return model.Driver{}, err
	}
	return d, nil
}

func (dr *DriverRepo) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	set := ""
	args := make([]any, 0, len(fields)+1)
	for name, value := range fields {
		column, ok := driverColumns[name]
		if !ok {
			column = pgx.Identifier{name}.Sanitize()
		}
		if set != "" {
			set += ", "
		}
		args = append(args, value)
		set += fmt.Sprintf("%s = $%d", column, len(args))
	}
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE drivers SET %s WHERE id = $%d`, set, len(args))
	tag, err := dr.db.pool.Exec(ctx, q, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrDriverNotFound
	}
	return nil
}

func (dr *DriverRepo) StatusByEmail(ctx context.Context, email string) (string, error) {
	q := `SELECT status FROM drivers WHERE email = $1`

	var status string
	if err := dr.db.pool.QueryRow(ctx, q, email).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", myerrors.ErrDriverNotFound
		}
		return "", err
	}
	return status, nil
}

func (dr *DriverRepo) ListSummaries(ctx context.Context) ([]model.DriverSummary, error) {
	q := `SELECT email, name FROM drivers`

	rows, err := dr.db.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []model.DriverSummary{}
	for rows.Next() {
		var s model.DriverSummary
		if err := rows.Scan(&s.Email, &s.Name); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (dr *DriverRepo) ListAll(ctx context.Context) ([]model.Driver, error) {
	q := `SELECT ` + driverFields + ` FROM drivers`

	rows, err := dr.db.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := []model.Driver{}
	for rows.Next() {
		d, err := dr.scanDriver(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}
