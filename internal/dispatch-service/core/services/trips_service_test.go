package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ride-dispatch/internal/dispatch-service/core/domain/dto"
	"ride-dispatch/internal/dispatch-service/core/domain/model"
	"ride-dispatch/internal/dispatch-service/core/myerrors"
	"ride-dispatch/internal/dispatch-service/core/ports"
	"ride-dispatch/internal/mylogger"
)

// fakeTripsRepo keeps trips in memory and reuses the same accepted-set
// helpers the real store relies on.
type fakeTripsRepo struct {
	trips  map[int64]*model.Trip
	nextID int64
}

func newFakeTripsRepo() *fakeTripsRepo {
	return &fakeTripsRepo{trips: make(map[int64]*model.Trip), nextID: 1}
}

func (f *fakeTripsRepo) Create(_ context.Context, trip model.Trip) (int64, error) {
	trip.ID = f.nextID
	if trip.AcceptedDrivers == "" {
		trip.AcceptedDrivers = "[]"
	}
	f.trips[trip.ID] = &trip
	f.nextID++
	return trip.ID, nil
}

func (f *fakeTripsRepo) List(_ context.Context) ([]model.Trip, error) {
	out := make([]model.Trip, 0, len(f.trips))
	for id := int64(1); id < f.nextID; id++ {
		if trip, ok := f.trips[id]; ok {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (f *fakeTripsRepo) GetByID(_ context.Context, id int64) (model.Trip, error) {
	trip, ok := f.trips[id]
	if !ok {
		return model.Trip{}, myerrors.ErrTripNotFound
	}
	return *trip, nil
}

func (f *fakeTripsRepo) Accept(_ context.Context, id int64, driverEmail string) (bool, error) {
	trip, ok := f.trips[id]
	if !ok {
		return false, myerrors.ErrTripNotFound
	}
	set, added := model.AppendAcceptedDriver(model.ParseAcceptedDrivers(trip.AcceptedDrivers), driverEmail)
	trip.AcceptedDrivers = model.EncodeAcceptedDrivers(set)
	trip.Status = model.StatusAccept
	return added, nil
}

func (f *fakeTripsRepo) AssignDriver(_ context.Context, id int64, driverEmail string) error {
	trip, ok := f.trips[id]
	if !ok {
		return myerrors.ErrTripNotFound
	}
	trip.DriverEmail = driverEmail
	trip.Status = model.StatusAccept
	return nil
}

func (f *fakeTripsRepo) Start(_ context.Context, id int64) error {
	trip, ok := f.trips[id]
	if !ok {
		return myerrors.ErrTripNotFound
	}
	trip.Status = model.StatusWIP
	return nil
}

func (f *fakeTripsRepo) Complete(_ context.Context, id int64, completion model.TripCompletion) error {
	trip, ok := f.trips[id]
	if !ok {
		return myerrors.ErrTripNotFound
	}
	trip.StartMeter = completion.StartMeter
	trip.EndMeter = completion.EndMeter
	trip.Luggage = completion.Luggage
	trip.Pet = completion.Pet
	trip.Toll = completion.Toll
	trip.Hills = completion.Hills
	trip.TotalKm = completion.TotalKm
	trip.FinalKm = completion.FinalKm
	trip.FinalBill = completion.FinalBill
	trip.Status = model.StatusCompleted
	return nil
}

func (f *fakeTripsRepo) UpdateField(_ context.Context, id int64, column string, value any) error {
	trip, ok := f.trips[id]
	if !ok {
		return myerrors.ErrTripNotFound
	}
	v, _ := value.(float64)
	switch column {
	case "start_meter":
		trip.StartMeter = v
	case "end_meter":
		trip.EndMeter = v
	case "luggage":
		trip.Luggage = v
	case "pet":
		trip.Pet = v
	case "toll":
		trip.Toll = v
	case "hills":
		trip.Hills = v
	}
	return nil
}

func (f *fakeTripsRepo) ListByStatus(_ context.Context, status string) ([]model.Trip, error) {
	out := []model.Trip{}
	for id := int64(1); id < f.nextID; id++ {
		if trip, ok := f.trips[id]; ok && trip.Status == status {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func newTripsServiceForTest(t *testing.T) (ports.ITripsService, *fakeTripsRepo) {
	t.Helper()
	mylog, err := mylogger.New("ERROR")
	require.NoError(t, err)
	repo := newFakeTripsRepo()
	return NewTripsService(context.Background(), mylog, repo, nil, nil), repo
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestTripCreateDefaultsToCreatedStatus(t *testing.T) {
	svc, repo := newTripsServiceForTest(t)

	id, err := svc.Create(context.Background(), dto.TripCreateRequest{
		PickupLocation: strPtr("Airport"),
		DropLocation:   strPtr("Downtown"),
	})
	require.NoError(t, err)

	trip, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCreated, trip.Status)
	assert.Equal(t, "", trip.DriverEmail)
}

func TestTripAcceptRequiresDriverEmail(t *testing.T) {
	svc, _ := newTripsServiceForTest(t)

	err := svc.Accept(context.Background(), 1, "")
	assert.ErrorIs(t, err, myerrors.ErrRequiredFieldsMissing)
}

func TestTripAcceptUnknownTrip(t *testing.T) {
	svc, _ := newTripsServiceForTest(t)

	err := svc.Accept(context.Background(), 42, "a@x.com")
	assert.ErrorIs(t, err, myerrors.ErrTripNotFound)
}

func TestTripAcceptKeepsOrderAndIsIdempotent(t *testing.T) {
	svc, repo := newTripsServiceForTest(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.TripCreateRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Accept(ctx, id, "a@x.com"))
	require.NoError(t, svc.Accept(ctx, id, "b@x.com"))
	require.NoError(t, svc.Accept(ctx, id, "a@x.com"))

	trip, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccept, trip.Status)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, model.ParseAcceptedDrivers(trip.AcceptedDrivers))
}

func TestTripAssignDoesNotTouchAcceptedSet(t *testing.T) {
	svc, repo := newTripsServiceForTest(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.TripCreateRequest{})
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, id, "a@x.com"))

	require.NoError(t, svc.AssignDriver(ctx, dto.TripAssignRequest{TripID: id, DriverEmail: "b@x.com"}))

	trip, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", trip.DriverEmail)
	assert.Equal(t, []string{"a@x.com"}, model.ParseAcceptedDrivers(trip.AcceptedDrivers))
}

func TestTripAssignValidation(t *testing.T) {
	svc, _ := newTripsServiceForTest(t)

	err := svc.AssignDriver(context.Background(), dto.TripAssignRequest{DriverEmail: "a@x.com"})
	assert.ErrorIs(t, err, myerrors.ErrRequiredFieldsMissing)

	err = svc.AssignDriver(context.Background(), dto.TripAssignRequest{TripID: 1})
	assert.ErrorIs(t, err, myerrors.ErrRequiredFieldsMissing)
}

func TestTripCompleteRequiresMeters(t *testing.T) {
	svc, repo := newTripsServiceForTest(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.TripCreateRequest{})
	require.NoError(t, err)

	err = svc.Complete(ctx, id, dto.TripCompleteRequest{
		StartMeter: floatPtr(10),
		EndMeter:   floatPtr(60),
	})
	assert.ErrorIs(t, err, myerrors.ErrRequiredFieldsMissing)

	// the failed attempt must leave the trip untouched
	trip, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCreated, trip.Status)
	assert.Zero(t, trip.FinalBill)
}

func TestTripUpdateFieldAllowList(t *testing.T) {
	svc, repo := newTripsServiceForTest(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.TripCreateRequest{})
	require.NoError(t, err)

	err = svc.UpdateField(ctx, dto.TripFieldUpdateRequest{TripID: id, Field: "status", Value: "completed"})
	assert.ErrorIs(t, err, myerrors.ErrFieldNotAllowed)

	trip, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCreated, trip.Status)

	require.NoError(t, svc.UpdateField(ctx, dto.TripFieldUpdateRequest{TripID: id, Field: "toll", Value: float64(25)}))
	trip, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, float64(25), trip.Toll)
}

func TestTripUpdateFieldValidation(t *testing.T) {
	svc, _ := newTripsServiceForTest(t)

	err := svc.UpdateField(context.Background(), dto.TripFieldUpdateRequest{Field: "toll", Value: 1.0})
	assert.ErrorIs(t, err, myerrors.ErrRequiredFieldsMissing)

	err = svc.UpdateField(context.Background(), dto.TripFieldUpdateRequest{TripID: 1, Value: 1.0})
	assert.ErrorIs(t, err, myerrors.ErrRequiredFieldsMissing)
}

func TestStatusQueriesMatchExactly(t *testing.T) {
	svc, _ := newTripsServiceForTest(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.TripCreateRequest{})
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, id, "joanne@x.com"))

	trips, err := svc.AcceptedByDriver(ctx, "joanne@x.com")
	require.NoError(t, err)
	assert.Len(t, trips, 1)

	// substring of an accepted driver's email
	trips, err = svc.AcceptedByDriver(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Empty(t, trips)

	_, err = svc.AcceptedByDriver(ctx, "")
	assert.ErrorIs(t, err, myerrors.ErrRequiredFieldsMissing)
}

func TestTripLifecycle(t *testing.T) {
	svc, repo := newTripsServiceForTest(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.TripCreateRequest{
		PickupLocation: strPtr("Airport"),
		DropLocation:   strPtr("Harbour"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Accept(ctx, id, "a@x.com"))
	require.NoError(t, svc.Accept(ctx, id, "b@x.com"))

	res, err := svc.StatusByDriver(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Len(t, res.AcceptedTrips, 1)
	assert.Empty(t, res.WipTrips)

	require.NoError(t, svc.Start(ctx, id))

	res, err = svc.StatusByDriver(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Empty(t, res.AcceptedTrips)
	assert.Len(t, res.WipTrips, 1)

	require.NoError(t, svc.Complete(ctx, id, dto.TripCompleteRequest{
		StartMeter: floatPtr(100),
		EndMeter:   floatPtr(180),
		TotalKm:    80,
		FinalKm:    80,
		FinalBill:  floatPtr(1450),
	}))

	trip, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, trip.Status)
	assert.Equal(t, float64(1450), trip.FinalBill)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, model.ParseAcceptedDrivers(trip.AcceptedDrivers))
}
