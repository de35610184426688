package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ride-dispatch/internal/dispatch-service/core/domain/dto"
	"ride-dispatch/internal/dispatch-service/core/domain/model"
	"ride-dispatch/internal/dispatch-service/core/myerrors"
	"ride-dispatch/internal/mylogger"
)

// stubTripsService answers with canned results and records the last call.
type stubTripsService struct {
	createID    int64
	err         error
	acceptEmail string
	acceptID    int64
}

func (s *stubTripsService) Create(context.Context, dto.TripCreateRequest) (int64, error) {
	return s.createID, s.err
}

func (s *stubTripsService) List(context.Context) ([]model.Trip, error) {
	return []model.Trip{}, s.err
}

func (s *stubTripsService) GetByID(context.Context, int64) (model.Trip, error) {
	return model.Trip{}, s.err
}

func (s *stubTripsService) Accept(_ context.Context, id int64, driverEmail string) error {
	s.acceptID = id
	s.acceptEmail = driverEmail
	return s.err
}

func (s *stubTripsService) AssignDriver(context.Context, dto.TripAssignRequest) error {
	return s.err
}

func (s *stubTripsService) Start(context.Context, int64) error {
	return s.err
}

func (s *stubTripsService) Complete(_ context.Context, _ int64, req dto.TripCompleteRequest) error {
	if req.StartMeter == nil || req.EndMeter == nil || req.FinalBill == nil {
		return myerrors.ErrRequiredFieldsMissing
	}
	return s.err
}

func (s *stubTripsService) UpdateField(_ context.Context, req dto.TripFieldUpdateRequest) error {
	if _, ok := model.PatchableTripFields[req.Field]; !ok {
		return myerrors.ErrFieldNotAllowed
	}
	return s.err
}

func (s *stubTripsService) AcceptedByDriver(context.Context, string) ([]model.Trip, error) {
	return []model.Trip{}, s.err
}

func (s *stubTripsService) InProgressByDriver(context.Context, string) ([]model.Trip, error) {
	return []model.Trip{}, s.err
}

func (s *stubTripsService) StatusByDriver(context.Context, string) (dto.TripStatusResponse, error) {
	return dto.TripStatusResponse{}, s.err
}

func newTripsMux(t *testing.T, svc *stubTripsService) *http.ServeMux {
	t.Helper()
	mylog, err := mylogger.New("ERROR")
	require.NoError(t, err)

	th := NewTripsHandler(svc, mylog)

	mux := http.NewServeMux()
	mux.Handle("POST /api/trips/add-trips", th.Create())
	mux.Handle("PUT /api/trips/update-field", th.UpdateField())
	mux.Handle("PUT /api/trips/{id}/accept", th.Accept())
	mux.Handle("PUT /api/trips/{id}/complete", th.Complete())
	mux.Handle("GET /api/trips/{id}", th.GetByID())
	return mux
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestCreateTripHandler(t *testing.T) {
	mux := newTripsMux(t, &stubTripsService{createID: 7})

	req := httptest.NewRequest(http.MethodPost, "/api/trips/add-trips",
		strings.NewReader(`{"pickupLocation":"Airport","dropLocation":"Downtown"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Trip stored successfully", body["message"])
	assert.Equal(t, float64(7), body["tripId"])
}

func TestCreateTripHandlerBadJSON(t *testing.T) {
	mux := newTripsMux(t, &stubTripsService{})

	req := httptest.NewRequest(http.MethodPost, "/api/trips/add-trips", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "failed to parse JSON", decodeBody(t, rec)["message"])
}

func TestAcceptTripHandler(t *testing.T) {
	svc := &stubTripsService{}
	mux := newTripsMux(t, svc)

	req := httptest.NewRequest(http.MethodPut, "/api/trips/12/accept",
		strings.NewReader(`{"driverEmail":"a@x.com"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Trip accepted successfully", decodeBody(t, rec)["message"])
	assert.Equal(t, int64(12), svc.acceptID)
	assert.Equal(t, "a@x.com", svc.acceptEmail)
}

func TestAcceptTripHandlerBadID(t *testing.T) {
	mux := newTripsMux(t, &stubTripsService{})

	req := httptest.NewRequest(http.MethodPut, "/api/trips/abc/accept",
		strings.NewReader(`{"driverEmail":"a@x.com"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptTripHandlerNotFound(t *testing.T) {
	mux := newTripsMux(t, &stubTripsService{err: myerrors.ErrTripNotFound})

	req := httptest.NewRequest(http.MethodPut, "/api/trips/99/accept",
		strings.NewReader(`{"driverEmail":"a@x.com"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip not found", decodeBody(t, rec)["message"])
}

func TestCompleteTripHandlerMissingFinalBill(t *testing.T) {
	mux := newTripsMux(t, &stubTripsService{})

	req := httptest.NewRequest(http.MethodPut, "/api/trips/5/complete",
		strings.NewReader(`{"startMeter":100,"endMeter":180}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "required fields are missing", decodeBody(t, rec)["message"])
}

func TestCompleteTripHandlerEchoesBill(t *testing.T) {
	mux := newTripsMux(t, &stubTripsService{})

	req := httptest.NewRequest(http.MethodPut, "/api/trips/5/complete",
		strings.NewReader(`{"startMeter":100,"endMeter":180,"finalBill":1450}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Trip marked as completed successfully", body["message"])
	assert.Equal(t, float64(5), body["tripId"])
	assert.Equal(t, float64(1450), body["finalBill"])
}

func TestUpdateFieldHandlerRejectsUnknownField(t *testing.T) {
	mux := newTripsMux(t, &stubTripsService{})

	req := httptest.NewRequest(http.MethodPut, "/api/trips/update-field",
		strings.NewReader(`{"tripId":3,"field":"status","value":"completed"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid field name", decodeBody(t, rec)["message"])
}

func TestUpdateFieldHandlerAllowsListedField(t *testing.T) {
	mux := newTripsMux(t, &stubTripsService{})

	req := httptest.NewRequest(http.MethodPut, "/api/trips/update-field",
		strings.NewReader(`{"tripId":3,"field":"toll","value":25}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Trip updated successfully", decodeBody(t, rec)["message"])
}

func TestGetTripHandlerInternalError(t *testing.T) {
	mux := newTripsMux(t, &stubTripsService{err: assert.AnError})

	req := httptest.NewRequest(http.MethodGet, "/api/trips/1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Fetching trip failed", decodeBody(t, rec)["message"])
}
