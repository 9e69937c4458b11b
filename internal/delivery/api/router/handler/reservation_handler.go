package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/nadoran78/mytable/config"
	"github.com/nadoran78/mytable/internal/delivery/api/response"
	"github.com/nadoran78/mytable/internal/delivery/api/validator"
	"github.com/nadoran78/mytable/internal/domain/entity"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReservationHandlerParams holds dependencies for ReservationHandler, injected by Fx.
type ReservationHandlerParams struct {
	fx.In

	ReservationUC usecase.ReservationUsecase
	Config        *config.Config
	Logger        *slog.Logger
}

// ReservationHandler serves both sides of the reservation lifecycle.
type ReservationHandler struct {
	reservationUC usecase.ReservationUsecase
	location      *time.Location
	toResponse    func(*entity.Reservation) ReservationResponse
	logger        *slog.Logger
	now           func() time.Time
}

// NewReservationHandler is the constructor for ReservationHandler
func NewReservationHandler(params ReservationHandlerParams) *ReservationHandler {
	loc := params.Config.Reservation.Location()

	return &ReservationHandler{
		reservationUC: params.ReservationUC,
		location:      loc,
		toResponse:    reservationMapper(loc),
		logger:        params.Logger,
		now:           time.Now,
	}
}

// reservationInput combines date and time in the business zone. The visit day may
// not lie before today.
func (h *ReservationHandler) reservationInput(req *ReservationRequest) (*usecase.ReservationInput, error) {
	dateTime, err := time.ParseInLocation(dateLayout+" "+timeLayout, req.Date+" "+req.Time, h.location)
	if err != nil {
		return nil, validator.Invalid("date", "형식이 올바르지 않습니다.")
	}

	today := h.now().In(h.location)
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, h.location)
	if dateTime.Before(startOfToday) {
		return nil, validator.Invalid("date", "예약일은 오늘 이후여야 합니다.")
	}

	return &usecase.ReservationInput{
		Storename:          req.Storename,
		DateTime:           dateTime,
		UnderName:          *req.UnderName,
		Phone:              req.Phone,
		SpecialInstruction: req.SpecialInstruction,
		NumberOfPeople:     req.NumberOfPeople,
	}, nil
}

// --- Customer ---

// Request handles POST /customer/reservation/request
func (h *ReservationHandler) Request(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req ReservationRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	input, err := h.reservationInput(&req)
	if err != nil {
		return err
	}

	out, err := h.reservationUC.Create(c.Request().Context(), identity.UID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := "SUCCESS"
	if !out.Notified {
		result = "FAIL"
	}

	return created(c, CreateReservationResponse{
		Result:      result,
		Reservation: h.toResponse(out.Reservation),
	})
}

// MyList handles GET /customer/reservation/my-list
func (h *ReservationHandler) MyList(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	page, err := bindPage(c)
	if err != nil {
		return err
	}

	reservations, err := h.reservationUC.ListMine(c.Request().Context(), identity.UID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, response.NewPageResponse(reservations, h.toResponse))
}

// CustomerDetail handles GET /customer/reservation/detail?reservationUid=
func (h *ReservationHandler) CustomerDetail(c echo.Context) error {
	return h.runAction(c, h.reservationUC.GetForCustomer)
}

// Update handles PUT /customer/reservation/detail/update?reservationUid=
func (h *ReservationHandler) Update(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	uid, err := requiredQuery(c, "reservationUid")
	if err != nil {
		return err
	}

	var req ReservationRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	input, err := h.reservationInput(&req)
	if err != nil {
		return err
	}

	reservation, err := h.reservationUC.Update(c.Request().Context(), identity.UID, uid, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, h.toResponse(reservation))
}

// Cancel handles POST /customer/reservation/detail/cancel?reservationUid=
func (h *ReservationHandler) Cancel(c echo.Context) error {
	return h.runAction(c, h.reservationUC.Cancel)
}

// CheckInQR handles GET /customer/reservation/detail/qr?reservationUid=
func (h *ReservationHandler) CheckInQR(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	uid, err := requiredQuery(c, "reservationUid")
	if err != nil {
		return err
	}

	png, err := h.reservationUC.CheckInQR(c.Request().Context(), identity.UID, uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// --- Partner ---

// StoreReservations handles GET /partner/store/reservations
func (h *ReservationHandler) StoreReservations(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	storename, err := requiredQuery(c, "storename")
	if err != nil {
		return err
	}

	startDate, err := queryDate(c, "startDate", h.location)
	if err != nil {
		return err
	}

	endDate, err := queryDate(c, "endDate", h.location)
	if err != nil {
		return err
	}

	page, err := bindPage(c)
	if err != nil {
		return err
	}

	reservations, err := h.reservationUC.ListByStore(c.Request().Context(), identity.UID, storename, startDate, endDate, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, response.NewPageResponse(reservations, h.toResponse))
}

// PartnerDetail handles GET /partner/reservation/detail?reservationUid=
func (h *ReservationHandler) PartnerDetail(c echo.Context) error {
	return h.runAction(c, h.reservationUC.GetForPartner)
}

// Confirm handles POST /partner/reservation/detail/confirm?reservationUid=
func (h *ReservationHandler) Confirm(c echo.Context) error {
	return h.runAction(c, h.reservationUC.Confirm)
}

// Reject handles POST /partner/reservation/detail/reject?reservationUid=
func (h *ReservationHandler) Reject(c echo.Context) error {
	return h.runAction(c, h.reservationUC.Reject)
}

// ArrivalCheck handles POST /partner/reservation/detail/arrival-check?reservationUid=
func (h *ReservationHandler) ArrivalCheck(c echo.Context) error {
	return h.runAction(c, h.reservationUC.ArrivalCheck)
}

// ArrivalCheckByQR handles POST /partner/reservation/arrival-check/qr
func (h *ReservationHandler) ArrivalCheckByQR(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req ArrivalQRRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	reservation, err := h.reservationUC.ArrivalCheckByQR(c.Request().Context(), identity.UID, req.Storename, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, h.toResponse(reservation))
}

// KioskSearch handles GET /partner/store/reservation/search
func (h *ReservationHandler) KioskSearch(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	params := make(map[string]string, 3)
	for _, name := range []string{"storename", "underName", "phone"} {
		if params[name], err = requiredQuery(c, name); err != nil {
			return err
		}
	}

	page, err := bindPage(c)
	if err != nil {
		return err
	}

	reservations, err := h.reservationUC.SearchByKiosk(
		c.Request().Context(), identity.UID, params["storename"], params["underName"], params["phone"], page,
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, response.NewPageResponse(reservations, h.toResponse))
}

// reservationAction is a single-reservation operation keyed by the reservationUid query.
type reservationAction func(ctx context.Context, accountUID, reservationUID string) (*entity.Reservation, error)

func (h *ReservationHandler) runAction(c echo.Context, action reservationAction) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	uid, err := requiredQuery(c, "reservationUid")
	if err != nil {
		return err
	}

	reservation, err := action(c.Request().Context(), identity.UID, uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, h.toResponse(reservation))
}
