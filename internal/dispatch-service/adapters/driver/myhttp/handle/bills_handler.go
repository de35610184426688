package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"ride-dispatch/internal/dispatch-service/core/domain/dto"
	"ride-dispatch/internal/dispatch-service/core/ports"
	"ride-dispatch/internal/mylogger"
)

type BillsHandler struct {
	billsService ports.IBillsService
	mylog        mylogger.Logger
}

func NewBillsHandler(billsService ports.IBillsService, mylog mylogger.Logger) *BillsHandler {
	return &BillsHandler{
		billsService: billsService,
		mylog:        mylog,
	}
}

func (bh *BillsHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.BillCreateRequest

		mylog := bh.mylog.Action("CreateBill")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		billId, err := bh.billsService.Create(r.Context(), req)
		if err != nil {
			respondError(w, mylog, err, "Saving bill")
			return
		}

		JsonResponse(w, http.StatusCreated, map[string]any{
			"message": "Bill saved successfully",
			"billId":  billId,
			"tripId":  req.TripID,
		})
	}
}

func (bh *BillsHandler) ListByDriver() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := bh.mylog.Action("DriverBills")

		bills, err := bh.billsService.ListByDriver(r.Context(), r.PathValue("driverEmail"))
		if err != nil {
			respondError(w, mylog, err, "Fetching bills")
			return
		}

		JsonResponse(w, http.StatusOK, bills)
	}
}

func (bh *BillsHandler) ListAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := bh.mylog.Action("ListBills")

		bills, err := bh.billsService.ListAll(r.Context())
		if err != nil {
			respondError(w, mylog, err, "Fetching bills")
			return
		}

		JsonResponse(w, http.StatusOK, bills)
	}
}
