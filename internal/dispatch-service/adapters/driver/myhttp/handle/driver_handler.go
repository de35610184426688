package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"ride-dispatch/internal/dispatch-service/core/domain/dto"
	"ride-dispatch/internal/dispatch-service/core/ports"
	"ride-dispatch/internal/mylogger"
)

type DriverHandler struct {
	driverService ports.IDriverService
	mylog         mylogger.Logger
}

func NewDriverHandler(driverService ports.IDriverService, mylog mylogger.Logger) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
		mylog:         mylog,
	}
}

func (dh *DriverHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.DriverRegistrationRequest

		mylog := dh.mylog.Action("Register")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		driverId, err := dh.driverService.Register(r.Context(), req)
		if err != nil {
			respondError(w, mylog, err, "Driver registration")
			return
		}

		JsonResponse(w, http.StatusCreated, map[string]any{
			"message":  "Driver registered successfully",
			"driverId": driverId,
		})
	}
}

func (dh *DriverHandler) CheckExists() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.DriverExistsRequest

		mylog := dh.mylog.Action("CheckExists")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		res, err := dh.driverService.CheckExists(r.Context(), req)
		if err != nil {
			respondError(w, mylog, err, "Checking driver existence")
			return
		}

		JsonResponse(w, http.StatusOK, res)
	}
}

func (dh *DriverHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.DriverLoginRequest

		mylog := dh.mylog.Action("Login")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		res, err := dh.driverService.Login(r.Context(), req)
		if err != nil {
			respondError(w, mylog, err, "Login")
			return
		}

		JsonResponse(w, http.StatusOK, res)
	}
}

func (dh *DriverHandler) GetByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := dh.mylog.Action("GetDriver")

		id, err := pathID(r, "id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		driver, err := dh.driverService.GetByID(r.Context(), id)
		if err != nil {
			respondError(w, mylog, err, "Fetching driver")
			return
		}

		JsonResponse(w, http.StatusOK, driver)
	}
}

func (dh *DriverHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := dh.mylog.Action("UpdateDriver")

		id, err := pathID(r, "id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		fields := map[string]any{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		if err := dh.driverService.Update(r.Context(), id, fields); err != nil {
			respondError(w, mylog, err, "Updating driver")
			return
		}

		JsonResponse(w, http.StatusOK, map[string]any{
			"message": "Driver updated successfully",
		})
	}
}

func (dh *DriverHandler) Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := dh.mylog.Action("DriverStatus")

		status, err := dh.driverService.StatusByEmail(r.Context(), r.PathValue("email"))
		if err != nil {
			respondError(w, mylog, err, "Fetching driver status")
			return
		}

		JsonResponse(w, http.StatusOK, map[string]any{
			"status": status,
		})
	}
}

func (dh *DriverHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := dh.mylog.Action("ListDrivers")

		drivers, err := dh.driverService.List(r.Context())
		if err != nil {
			respondError(w, mylog, err, "Fetching drivers")
			return
		}

		JsonResponse(w, http.StatusOK, drivers)
	}
}

func (dh *DriverHandler) ListAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := dh.mylog.Action("ListAllDrivers")

		drivers, err := dh.driverService.ListAll(r.Context())
		if err != nil {
			respondError(w, mylog, err, "Fetching drivers")
			return
		}

		JsonResponse(w, http.StatusOK, drivers)
	}
}
