package services

import (
	"context"
	"time"

	"ride-dispatch/internal/dispatch-service/core/domain/dto"
	"ride-dispatch/internal/dispatch-service/core/domain/model"
	"ride-dispatch/internal/dispatch-service/core/myerrors"
	"ride-dispatch/internal/dispatch-service/core/ports"
	"ride-dispatch/internal/mylogger"
)

type BillsService struct {
	ctx       context.Context
	mylog     mylogger.Logger
	billsRepo ports.IBillsRepo
}

func NewBillsService(ctx context.Context, mylog mylogger.Logger, billsRepo ports.IBillsRepo) ports.IBillsService {
	return &BillsService{
		ctx:       ctx,
		mylog:     mylog,
		billsRepo: billsRepo,
	}
}

// Create appends one immutable billing row. The client computes all fare
// components, the server stores them verbatim.
func (bs *BillsService) Create(ctx context.Context, req dto.BillCreateRequest) (int64, error) {
	mylog := bs.mylog.Action("CreateBill")

	if req.DriverEmail == "" || req.CustomerName == "" || req.FinalBill == nil {
		return 0, myerrors.ErrRequiredFieldsMissing
	}

	createdAt := time.Now()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	bill := model.Bill{
		DriverEmail:         req.DriverEmail,
		CustomerName:        req.CustomerName,
		Phone:               req.Phone,
		PickupLocation:      req.PickupLocation,
		DropLocation:        req.DropLocation,
		PickupDate:          req.PickupDate,
		PickupTime:          req.PickupTime,
		TripType:            req.TripType,
		StartMeter:          req.StartMeter,
		EndMeter:            req.EndMeter,
		TotalKm:             req.TotalKm,
		FinalKm:             req.FinalKm,
		KmPrice:             req.KmPrice,
		TotalKmPrice:        req.TotalKmPrice,
		LuggageCharge:       req.LuggageCharge,
		PetCharge:           req.PetCharge,
		TollCharge:          req.TollCharge,
		HillsCharge:         req.HillsCharge,
		BettaCharge:         req.BettaCharge,
		StateCharge:         req.StateCharge,
		TotalEnteredCharges: req.TotalEnteredCharges,
		FinalBill:           *req.FinalBill,
		CreatedAt:           createdAt,
	}

	id, err := bs.billsRepo.Create(ctx, bill)
	if err != nil {
		mylog.Error("cannot save bill in db", err)
		return 0, err
	}

	mylog.Info("bill saved", "bill_id", id, "driver", req.DriverEmail)
	return id, nil
}

func (bs *BillsService) ListByDriver(ctx context.Context, driverEmail string) ([]model.Bill, error) {
	if driverEmail == "" {
		return nil, myerrors.ErrRequiredFieldsMissing
	}
	return bs.billsRepo.ListByDriver(ctx, driverEmail)
}

func (bs *BillsService) ListAll(ctx context.Context) ([]model.Bill, error) {
	return bs.billsRepo.ListAll(ctx)
}
