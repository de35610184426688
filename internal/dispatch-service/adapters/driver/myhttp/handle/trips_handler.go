package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"ride-dispatch/internal/dispatch-service/core/domain/dto"
	"ride-dispatch/internal/dispatch-service/core/ports"
	"ride-dispatch/internal/mylogger"
)

type TripsHandler struct {
	tripsService ports.ITripsService
	mylog        mylogger.Logger
}

func NewTripsHandler(tripsService ports.ITripsService, mylog mylogger.Logger) *TripsHandler {
	return &TripsHandler{
		tripsService: tripsService,
		mylog:        mylog,
	}
}

func (th *TripsHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.TripCreateRequest

		mylog := th.mylog.Action("CreateTrip")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		tripId, err := th.tripsService.Create(r.Context(), req)
		if err != nil {
			respondError(w, mylog, err, "Storing trip")
			return
		}

		JsonResponse(w, http.StatusCreated, map[string]any{
			"message": "Trip stored successfully",
			"tripId":  tripId,
		})
	}
}

func (th *TripsHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := th.mylog.Action("ListTrips")

		trips, err := th.tripsService.List(r.Context())
		if err != nil {
			respondError(w, mylog, err, "Fetching trips")
			return
		}

		JsonResponse(w, http.StatusOK, trips)
	}
}

func (th *TripsHandler) GetByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := th.mylog.Action("GetTrip")

		id, err := pathID(r, "id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		trip, err := th.tripsService.GetByID(r.Context(), id)
		if err != nil {
			respondError(w, mylog, err, "Fetching trip")
			return
		}

		JsonResponse(w, http.StatusOK, trip)
	}
}

func (th *TripsHandler) Accept() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := th.mylog.Action("AcceptTrip")

		id, err := pathID(r, "id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		var req dto.TripAcceptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		if err := th.tripsService.Accept(r.Context(), id, req.DriverEmail); err != nil {
			respondError(w, mylog, err, "Accepting trip")
			return
		}

		JsonResponse(w, http.StatusOK, map[string]any{
			"message": "Trip accepted successfully",
		})
	}
}

func (th *TripsHandler) AssignDriver() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := th.mylog.Action("AssignDriver")

		var req dto.TripAssignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		if err := th.tripsService.AssignDriver(r.Context(), req); err != nil {
			respondError(w, mylog, err, "Assigning driver")
			return
		}

		JsonResponse(w, http.StatusOK, map[string]any{
			"message": "Driver assigned successfully",
		})
	}
}

func (th *TripsHandler) Start() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := th.mylog.Action("StartTrip")

		id, err := pathID(r, "id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		if err := th.tripsService.Start(r.Context(), id); err != nil {
			respondError(w, mylog, err, "Starting trip")
			return
		}

		JsonResponse(w, http.StatusOK, map[string]any{
			"message": "Trip started successfully",
		})
	}
}

func (th *TripsHandler) Complete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := th.mylog.Action("CompleteTrip")

		id, err := pathID(r, "id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		var req dto.TripCompleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		if err := th.tripsService.Complete(r.Context(), id, req); err != nil {
			respondError(w, mylog, err, "Completing trip")
			return
		}

		JsonResponse(w, http.StatusOK, map[string]any{
			"message":   "Trip marked as completed successfully",
			"tripId":    id,
			"finalBill": req.FinalBill,
		})
	}
}

func (th *TripsHandler) UpdateField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := th.mylog.Action("UpdateTripField")

		var req dto.TripFieldUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		if err := th.tripsService.UpdateField(r.Context(), req); err != nil {
			respondError(w, mylog, err, "Updating trip field")
			return
		}

		JsonResponse(w, http.StatusOK, map[string]any{
			"message": "Trip updated successfully",
		})
	}
}

func (th *TripsHandler) AcceptedByDriver() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := th.mylog.Action("AcceptedTrips")

		trips, err := th.tripsService.AcceptedByDriver(r.Context(), r.PathValue("driverEmail"))
		if err != nil {
			respondError(w, mylog, err, "Fetching accepted trips")
			return
		}

		JsonResponse(w, http.StatusOK, trips)
	}
}

func (th *TripsHandler) InProgressByDriver() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := th.mylog.Action("WipTrips")

		trips, err := th.tripsService.InProgressByDriver(r.Context(), r.PathValue("driverEmail"))
		if err != nil {
			respondError(w, mylog, err, "Fetching WIP trips")
			return
		}

		JsonResponse(w, http.StatusOK, trips)
	}
}

func (th *TripsHandler) StatusByDriver() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := th.mylog.Action("TripStatus")

		res, err := th.tripsService.StatusByDriver(r.Context(), r.PathValue("email"))
		if err != nil {
			respondError(w, mylog, err, "Fetching trips")
			return
		}

		JsonResponse(w, http.StatusOK, res)
	}
}
