package services

import (
	"context"
	"errors"
	"fmt"

	"ride-dispatch/internal/config"
	"ride-dispatch/internal/dispatch-service/core/domain/dto"
	"ride-dispatch/internal/dispatch-service/core/domain/model"
	"ride-dispatch/internal/dispatch-service/core/myerrors"
	"ride-dispatch/internal/dispatch-service/core/ports"
	"ride-dispatch/internal/mylogger"
)

type DriverService struct {
	ctx        context.Context
	cfg        *config.Config
	driverRepo ports.IDriverRepo
	mylog      mylogger.Logger
}

func NewDriverService(
	ctx context.Context,
	cfg *config.Config,
	driverRepo ports.IDriverRepo,
	mylog mylogger.Logger,
) ports.IDriverService {
	return &DriverService{
		ctx:        ctx,
		cfg:        cfg,
		driverRepo: driverRepo,
		mylog:      mylog,
	}
}

// ======================= Register =======================
//
// No uniqueness pre-check happens here: CheckExists is a separate advisory
// call, so a race between the two can admit duplicate emails or phones.
func (ds *DriverService) Register(ctx context.Context, req dto.DriverRegistrationRequest) (int64, error) {
	mylog := ds.mylog.Action("Register")

	if anyEmpty(req.Name, req.Email, req.PhoneNumber, req.Password) {
		return 0, myerrors.ErrRequiredFieldsMissing
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %v", err)
	}

	driver := model.Driver{
		Name:            req.Name,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		PasswordHash:    hashedPassword,
		RcNumber:        req.RcNumber,
		FcExpiry:        req.FcDate,
		InsuranceNumber: req.InsuranceNumber,
		InsuranceExpiry: req.InsuranceExpiryDate,
		DrivingLicense:  req.DrivingLicense,
		DlExpiry:        req.DrivingLicenseExpiryDate,
	}

	id, err := ds.driverRepo.Create(ctx, driver)
	if err != nil {
		mylog.Error("Failed to save driver in db", err)
		return 0, fmt.Errorf("cannot save driver in db: %w", err)
	}

	mylog.Info("Driver registered successfully", "driver_id", id)
	return id, nil
}

// CheckExists reports, field by field, whether any stored driver matches.
// The booleans are independent: they need not point at the same row.
func (ds *DriverService) CheckExists(ctx context.Context, req dto.DriverExistsRequest) (dto.DriverExistsResponse, error) {
	rows, err := ds.driverRepo.FindUniqueFieldMatches(ctx, req.Email, req.PhoneNumber, req.RcNumber, req.InsuranceNumber)
	if err != nil {
		ds.mylog.Error("Checking driver existence failed", err)
		return dto.DriverExistsResponse{}, err
	}

	res := dto.DriverExistsResponse{}
	for _, row := range rows {
		if row.Email == req.Email {
			res.Email = true
		}
		if row.PhoneNumber == req.PhoneNumber {
			res.PhoneNumber = true
		}
		if row.RcNumber != nil && *row.RcNumber == req.RcNumber {
			res.RcNumber = true
		}
		if row.InsuranceNumber != nil && *row.InsuranceNumber == req.InsuranceNumber {
			res.InsuranceNumber = true
		}
	}
	return res, nil
}

func (ds *DriverService) Login(ctx context.Context, req dto.DriverLoginRequest) (dto.DriverLoginResponse, error) {
	mylog := ds.mylog.Action("Login")

	if anyEmpty(req.Email, req.Password) {
		return dto.DriverLoginResponse{}, myerrors.ErrInvalidCredentials
	}

	driver, err := ds.driverRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, myerrors.ErrDriverNotFound) {
			mylog.Warn("Failed to login, unknown email")
			return dto.DriverLoginResponse{}, myerrors.ErrInvalidCredentials
		}
		mylog.Error("Failed to fetch driver from db", err)
		return dto.DriverLoginResponse{}, err
	}

	if !checkPassword(driver.PasswordHash, req.Password) {
		mylog.Debug("Failed to login, wrong password")
		return dto.DriverLoginResponse{}, myerrors.ErrInvalidCredentials
	}

	token, err := signCredential(driver.ID, driver.Email, ds.cfg.App.JwtSecret)
	if err != nil {
		mylog.Error("error to create jwt token", err)
		return dto.DriverLoginResponse{}, err
	}

	mylog.Info("Driver login successfully")
	return dto.DriverLoginResponse{Token: token, User: driver}, nil
}

func (ds *DriverService) GetByID(ctx context.Context, id int64) (model.Driver, error) {
	return ds.driverRepo.GetByID(ctx, id)
}

// Update writes the given partial field set verbatim. Nothing restricts which
// columns a client may touch here, which is a known weakness of the design.
func (ds *DriverService) Update(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return myerrors.ErrRequiredFieldsMissing
	}
	return ds.driverRepo.UpdateFields(ctx, id, fields)
}

func (ds *DriverService) StatusByEmail(ctx context.Context, email string) (string, error) {
	return ds.driverRepo.StatusByEmail(ctx, email)
}

func (ds *DriverService) List(ctx context.Context) ([]model.DriverSummary, error) {
	return ds.driverRepo.ListSummaries(ctx)
}

func (ds *DriverService) ListAll(ctx context.Context) ([]model.Driver, error) {
	return ds.driverRepo.ListAll(ctx)
}
