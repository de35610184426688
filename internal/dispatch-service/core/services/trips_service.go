package services

import (
	"context"
	"time"

	"ride-dispatch/internal/dispatch-service/core/domain/dto"
	messagebrokerdto "ride-dispatch/internal/dispatch-service/core/domain/message_broker_dto"
	"ride-dispatch/internal/dispatch-service/core/domain/model"
	"ride-dispatch/internal/dispatch-service/core/myerrors"
	"ride-dispatch/internal/dispatch-service/core/ports"
	"ride-dispatch/internal/mylogger"
)

type TripsService struct {
	ctx       context.Context
	mylog     mylogger.Logger
	tripsRepo ports.ITripsRepo
	broker    ports.ITripEventsBroker
	notifier  ports.IDriverNotifier
}

func NewTripsService(
	ctx context.Context,
	mylog mylogger.Logger,
	tripsRepo ports.ITripsRepo,
	broker ports.ITripEventsBroker,
	notifier ports.IDriverNotifier,
) ports.ITripsService {
	return &TripsService{
		ctx:       ctx,
		mylog:     mylog,
		tripsRepo: tripsRepo,
		broker:    broker,
		notifier:  notifier,
	}
}

func (ts *TripsService) Create(ctx context.Context, req dto.TripCreateRequest) (int64, error) {
	mylog := ts.mylog.Action("CreateTrip")

	trip := model.Trip{
		PickupLocation:          req.PickupLocation,
		DropLocation:            req.DropLocation,
		TripType:                req.TripType,
		Car:                     req.Car,
		PickupDate:              req.PickupDate,
		PickupTime:              req.PickupTime,
		Days:                    req.Days,
		KmPrice:                 req.KmPrice,
		Km:                      req.Km,
		Betta:                   req.Betta,
		Phone:                   req.Phone,
		State:                   req.State,
		CustomerName:            req.CustomerName,
		CustomerRemark:          req.CustomerRemark,
		Adult:                   req.Adult,
		Child:                   req.Child,
		Luggage:                 req.Luggage,
		CustomerCurrentLocation: req.CustomerCurrentLocation,
		Status:                  model.StatusCreated,
	}

	id, err := ts.tripsRepo.Create(ctx, trip)
	if err != nil {
		mylog.Error("cannot save trip in db", err)
		return 0, err
	}

	mylog.Info("trip created", "trip_id", id)
	ts.publishEvent(ctx, messagebrokerdto.TripEvent{
		Event:  messagebrokerdto.EventTripCreated,
		TripID: id,
		Status: model.StatusCreated,
	}, "")
	return id, nil
}

func (ts *TripsService) List(ctx context.Context) ([]model.Trip, error) {
	return ts.tripsRepo.List(ctx)
}

func (ts *TripsService) GetByID(ctx context.Context, id int64) (model.Trip, error) {
	return ts.tripsRepo.GetByID(ctx, id)
}

// Accept records a driver's interest in the trip. The accepted set keeps
// arrival order, drops duplicates, and never excludes other drivers.
func (ts *TripsService) Accept(ctx context.Context, id int64, driverEmail string) error {
	mylog := ts.mylog.Action("AcceptTrip")

	if driverEmail == "" {
		return myerrors.ErrRequiredFieldsMissing
	}

	added, err := ts.tripsRepo.Accept(ctx, id, driverEmail)
	if err != nil {
		return err
	}
	if !added {
		mylog.Debug("driver already in accepted set", "trip_id", id, "driver", driverEmail)
	}

	ts.publishEvent(ctx, messagebrokerdto.TripEvent{
		Event:       messagebrokerdto.EventTripAccepted,
		TripID:      id,
		DriverEmail: driverEmail,
		Status:      model.StatusAccept,
	}, driverEmail)
	return nil
}

// AssignDriver is the privileged transition: it binds exactly one driver and
// does not consult or clear the accepted set.
func (ts *TripsService) AssignDriver(ctx context.Context, req dto.TripAssignRequest) error {
	if req.TripID == 0 || req.DriverEmail == "" {
		return myerrors.ErrRequiredFieldsMissing
	}

	if err := ts.tripsRepo.AssignDriver(ctx, req.TripID, req.DriverEmail); err != nil {
		return err
	}

	ts.publishEvent(ctx, messagebrokerdto.TripEvent{
		Event:       messagebrokerdto.EventTripAssigned,
		TripID:      req.TripID,
		DriverEmail: req.DriverEmail,
		Status:      model.StatusAccept,
	}, req.DriverEmail)
	return nil
}

// Start moves the trip to WIP regardless of its current state.
func (ts *TripsService) Start(ctx context.Context, id int64) error {
	if err := ts.tripsRepo.Start(ctx, id); err != nil {
		return err
	}

	ts.publishEvent(ctx, messagebrokerdto.TripEvent{
		Event:  messagebrokerdto.EventTripStarted,
		TripID: id,
		Status: model.StatusWIP,
	}, "")
	return nil
}

// Complete writes the metered fields exactly once and moves the trip to
// completed. No check that the trip was previously WIP.
func (ts *TripsService) Complete(ctx context.Context, id int64, req dto.TripCompleteRequest) error {
	if req.StartMeter == nil || req.EndMeter == nil || req.FinalBill == nil {
		return myerrors.ErrRequiredFieldsMissing
	}

	completion := model.TripCompletion{
		StartMeter: *req.StartMeter,
		EndMeter:   *req.EndMeter,
		Luggage:    req.Luggage,
		Pet:        req.Pet,
		Toll:       req.Toll,
		Hills:      req.Hills,
		TotalKm:    req.TotalKm,
		FinalKm:    req.FinalKm,
		FinalBill:  *req.FinalBill,
	}

	if err := ts.tripsRepo.Complete(ctx, id, completion); err != nil {
		return err
	}

	ts.publishEvent(ctx, messagebrokerdto.TripEvent{
		Event:  messagebrokerdto.EventTripCompleted,
		TripID: id,
		Status: model.StatusCompleted,
	}, "")
	return nil
}

// UpdateField writes one trip field, restricted to the patch allow-list.
func (ts *TripsService) UpdateField(ctx context.Context, req dto.TripFieldUpdateRequest) error {
	if req.TripID == 0 || req.Field == "" {
		return myerrors.ErrRequiredFieldsMissing
	}

	column, ok := model.PatchableTripFields[req.Field]
	if !ok {
		return myerrors.ErrFieldNotAllowed
	}

	return ts.tripsRepo.UpdateField(ctx, req.TripID, column, req.Value)
}

func (ts *TripsService) AcceptedByDriver(ctx context.Context, driverEmail string) ([]model.Trip, error) {
	return ts.tripsForDriver(ctx, model.StatusAccept, driverEmail)
}

func (ts *TripsService) InProgressByDriver(ctx context.Context, driverEmail string) ([]model.Trip, error) {
	return ts.tripsForDriver(ctx, model.StatusWIP, driverEmail)
}

func (ts *TripsService) StatusByDriver(ctx context.Context, driverEmail string) (dto.TripStatusResponse, error) {
	accepted, err := ts.tripsForDriver(ctx, model.StatusAccept, driverEmail)
	if err != nil {
		return dto.TripStatusResponse{}, err
	}
	wip, err := ts.tripsForDriver(ctx, model.StatusWIP, driverEmail)
	if err != nil {
		return dto.TripStatusResponse{}, err
	}
	return dto.TripStatusResponse{AcceptedTrips: accepted, WipTrips: wip}, nil
}

// tripsForDriver scopes by status and matches the driver either exactly on
// driver_email or by membership in the parsed accepted set. A substring of
// another driver's email never matches.
func (ts *TripsService) tripsForDriver(ctx context.Context, status, driverEmail string) ([]model.Trip, error) {
	if driverEmail == "" {
		return nil, myerrors.ErrRequiredFieldsMissing
	}

	trips, err := ts.tripsRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Trip, 0, len(trips))
	for _, trip := range trips {
		if trip.InvolvesDriver(driverEmail) {
			matched = append(matched, trip)
		}
	}
	return matched, nil
}

// publishEvent fans a lifecycle event out to the broker and the websocket
// feed. Failures are logged, never surfaced to the caller.
func (ts *TripsService) publishEvent(ctx context.Context, event messagebrokerdto.TripEvent, driverEmail string) {
	event.OccurredAt = time.Now().UTC().Format(time.RFC3339)

	if ts.broker != nil {
		if err := ts.broker.PublishTripEvent(ctx, event); err != nil {
			ts.mylog.Error("cannot publish trip event", err, "trip_id", event.TripID, "event", event.Event)
		}
	}

	if ts.notifier != nil {
		if driverEmail != "" {
			ts.notifier.NotifyDriver(driverEmail, event)
		} else {
			ts.notifier.Broadcast(event)
		}
	}
}
