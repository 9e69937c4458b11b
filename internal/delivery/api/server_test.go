package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nadoran78/mytable/config"
	apimiddleware "github.com/nadoran78/mytable/internal/delivery/api/middleware"
	"github.com/nadoran78/mytable/internal/delivery/api/router"
	"github.com/nadoran78/mytable/internal/delivery/api/router/handler"
	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	mockSvc "github.com/nadoran78/mytable/internal/mocks/service"
	mockUC "github.com/nadoran78/mytable/internal/mocks/usecase"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	customerToken = "customer-token"
	partnerToken  = "partner-token"
	customerUID   = "c0ffee00c0ffee00c0ffee00c0ffee00"
	partnerUID    = "beef0000beef0000beef0000beef0000"
)

type apiFixture struct {
	e            *echo.Echo
	accounts     *mockUC.MockAccountUsecase
	stores       *mockUC.MockStoreUsecase
	reservations *mockUC.MockReservationUsecase
	reviews      *mockUC.MockReviewUsecase
	devices      *mockUC.MockDeviceUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{
		Auth:        &config.AuthConfig{HeaderName: "X-AUTH-TOKEN"},
		Reservation: &config.ReservationConfig{},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.DiscardHandler)

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().Resolve(customerToken).
		Return(entity.Identity{UID: customerUID, Roles: entity.Roles{entity.RoleCustomer}}, nil).Maybe()
	tokens.EXPECT().Resolve(partnerToken).
		Return(entity.Identity{UID: partnerUID, Roles: entity.Roles{entity.RolePartner}}, nil).Maybe()

	fx := &apiFixture{
		accounts:     mockUC.NewMockAccountUsecase(t),
		stores:       mockUC.NewMockStoreUsecase(t),
		reservations: mockUC.NewMockReservationUsecase(t),
		reviews:      mockUC.NewMockReviewUsecase(t),
		devices:      mockUC.NewMockDeviceUsecase(t),
	}

	fx.e = NewEcho(cfg, logger, router.RouterParams{
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: fx.accounts, Logger: logger}),
		StoreHandler:   handler.NewStoreHandler(handler.StoreHandlerParams{StoreUC: fx.stores, Logger: logger}),
		ReservationHandler: handler.NewReservationHandler(handler.ReservationHandlerParams{
			ReservationUC: fx.reservations, Config: cfg, Logger: logger,
		}),
		ReviewHandler:       handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: fx.reviews, Logger: logger}),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: fx.devices, Logger: logger}),
		AuthMiddleware:      apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{TokenSvc: tokens, Config: cfg}),
		RateLimitMiddleware: apimiddleware.NewRateLimitMiddleware(apimiddleware.RateLimitMiddlewareParams{Logger: logger}),
	})

	return fx
}

func (fx *apiFixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("X-AUTH-TOKEN", token)
	}

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data         json.RawMessage `json:"data"`
	ErrorCode    string          `json:"errorCode"`
	ErrorMessage string          `json:"errorMessage"`
	Error        *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	assert.NotEmpty(t, env.Meta.RequestID)

	return env
}

func sampleReservation(status entity.ReservationStatus) *entity.Reservation {
	return &entity.Reservation{
		UID:         "aaaabbbbccccddddeeeeffff00001111",
		CustomerUID: customerUID,
		Storename:   "Noodle House",
		PartnerUID:  partnerUID,
		DateTime:    time.Date(2099, 1, 1, 18, 30, 0, 0, time.Local),
		UnderName:   "홍길동",
		Phone:       "010-1234-5678",
		Status:      status,
		Version:     1,
	}
}

const reservationBody = `{"date":"2099-01-01","time":"18:30:00","underName":"홍길동","phone":"010-1234-5678","storename":"Noodle House"}`

func TestHealth(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodGet, "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decode(t, rec).Error.Code)
}

func TestAuthBoundary(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodPost, "/customer/reservation/request", reservationBody, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)

	rec = fx.do(http.MethodPost, "/customer/reservation/request", reservationBody, partnerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ACCESS_DENIED", decode(t, rec).Error.Code)
}

func TestErrorBodyCarriesFlatCodeAndMessage(t *testing.T) {
	fx := newAPIFixture(t)
	fx.stores.EXPECT().GetInfo(mock.Anything, "Nowhere").Return(nil, domainerrors.ErrStoreNotFound)

	rec := fx.do(http.MethodGet, "/store/info?storename=Nowhere", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND_STORE", env.ErrorCode)
	assert.Equal(t, env.Error.Code, env.ErrorCode)
	assert.Equal(t, env.Error.Message, env.ErrorMessage)
	assert.Equal(t, "존재하지 않는 점포입니다.", env.ErrorMessage)
}

func TestReservationRequest(t *testing.T) {
	t.Run("created and notified", func(t *testing.T) {
		fx := newAPIFixture(t)
		fx.reservations.EXPECT().
			Create(mock.Anything, customerUID, mock.MatchedBy(func(in *usecase.ReservationInput) bool {
				return in.Storename == "Noodle House" &&
					in.UnderName == "홍길동" &&
					in.DateTime.Equal(time.Date(2099, 1, 1, 18, 30, 0, 0, time.Local))
			})).
			Return(&usecase.CreateReservationOutput{Reservation: sampleReservation(entity.ReservationStatusWaiting), Notified: true}, nil)

		rec := fx.do(http.MethodPost, "/customer/reservation/request", reservationBody, customerToken)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var data handler.CreateReservationResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
		assert.Equal(t, "SUCCESS", data.Result)
		assert.Equal(t, "2099-01-01", data.Reservation.Date)
		assert.Equal(t, "18:30:00", data.Reservation.Time)
		assert.Equal(t, "WAITING", data.Reservation.Status)
	})

	t.Run("empty under-name reports FAIL", func(t *testing.T) {
		fx := newAPIFixture(t)
		reservation := sampleReservation(entity.ReservationStatusWaiting)
		reservation.UnderName = ""
		fx.reservations.EXPECT().Create(mock.Anything, customerUID, mock.Anything).
			Return(&usecase.CreateReservationOutput{Reservation: reservation}, nil)

		body := strings.Replace(reservationBody, `"홍길동"`, `""`, 1)
		rec := fx.do(http.MethodPost, "/customer/reservation/request", body, customerToken)
		require.Equal(t, http.StatusCreated, rec.Code)

		var data handler.CreateReservationResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
		assert.Equal(t, "FAIL", data.Result)
	})

	t.Run("server-assigned fields are rejected", func(t *testing.T) {
		fx := newAPIFixture(t)

		body := strings.Replace(reservationBody, `{`, `{"uid":"abc","status":"CONFIRM",`, 1)
		rec := fx.do(http.MethodPost, "/customer/reservation/request", body, customerToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "uid")
		assert.Contains(t, env.Error.Details, "status")
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := newAPIFixture(t)

		rec := fx.do(http.MethodPost, "/customer/reservation/request", `{"phone":"1234"}`, customerToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		details := decode(t, rec).Error.Details
		for _, field := range []string{"date", "time", "underName", "phone", "storename"} {
			assert.Contains(t, details, field)
		}
	})

	t.Run("past day", func(t *testing.T) {
		fx := newAPIFixture(t)

		body := strings.Replace(reservationBody, "2099-01-01", "2001-01-01", 1)
		rec := fx.do(http.MethodPost, "/customer/reservation/request", body, customerToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "예약일은 오늘 이후여야 합니다.", decode(t, rec).Error.Details["date"])
	})

	t.Run("domain error", func(t *testing.T) {
		fx := newAPIFixture(t)
		fx.reservations.EXPECT().Create(mock.Anything, customerUID, mock.Anything).
			Return(nil, domainerrors.ErrReservationDateOutOfWindow)

		rec := fx.do(http.MethodPost, "/customer/reservation/request", reservationBody, customerToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		env := decode(t, rec)
		assert.Equal(t, "RESERVATION_DATE_MUST_BE_IN_A_MONTH", env.Error.Code)
		assert.Equal(t, "예약은 한달 이내만 가능합니다.", env.Error.Message)
	})
}

func TestReservationMyList(t *testing.T) {
	fx := newAPIFixture(t)
	page := entity.PageRequest{Page: 1, Size: 2}
	fx.reservations.EXPECT().ListMine(mock.Anything, customerUID, page).
		Return(entity.NewPage([]*entity.Reservation{sampleReservation(entity.ReservationStatusConfirm)}, page, 3), nil)

	rec := fx.do(http.MethodGet, "/customer/reservation/my-list?page=1&size=2", "", customerToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Content       []handler.ReservationResponse `json:"content"`
		TotalElements int64                         `json:"totalElements"`
		TotalPages    int                           `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Len(t, data.Content, 1)
	assert.Equal(t, int64(3), data.TotalElements)
	assert.Equal(t, 2, data.TotalPages)

	rec = fx.do(http.MethodGet, "/customer/reservation/my-list?size=500", "", customerToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "size")
}

func TestReservationPartnerActions(t *testing.T) {
	fx := newAPIFixture(t)
	uid := "aaaabbbbccccddddeeeeffff00001111"

	fx.reservations.EXPECT().Confirm(mock.Anything, partnerUID, uid).
		Return(sampleReservation(entity.ReservationStatusConfirm), nil)
	fx.reservations.EXPECT().Reject(mock.Anything, partnerUID, uid).
		Return(nil, domainerrors.ErrAccessOnlyStoreOwner)

	rec := fx.do(http.MethodPost, "/partner/reservation/detail/confirm?reservationUid="+uid, "", partnerToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var data handler.ReservationResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, "CONFIRM", data.Status)

	rec = fx.do(http.MethodPost, "/partner/reservation/detail/reject?reservationUid="+uid, "", partnerToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ACCESS_ONLY_STORE_OWNER", decode(t, rec).Error.Code)

	rec = fx.do(http.MethodPost, "/partner/reservation/detail/confirm", "", partnerToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "반드시 값이 있어야 합니다.", decode(t, rec).Error.Details["reservationUid"])
}

func TestStoreReservations(t *testing.T) {
	fx := newAPIFixture(t)
	fx.reservations.EXPECT().
		ListByStore(mock.Anything, partnerUID, "Noodle House",
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
			time.Date(2024, 6, 30, 0, 0, 0, 0, time.Local),
			entity.PageRequest{Page: 0, Size: 10}).
		Return(entity.NewPage[*entity.Reservation](nil, entity.PageRequest{Size: 10}, 0), nil)

	rec := fx.do(http.MethodGet,
		"/partner/store/reservations?storename=Noodle%20House&startDate=2024-06-01&endDate=2024-06-30", "", partnerToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = fx.do(http.MethodGet,
		"/partner/store/reservations?storename=Noodle%20House&startDate=06/01/2024&endDate=2024-06-30", "", partnerToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "startDate")
}

func TestKioskSearchAndQR(t *testing.T) {
	fx := newAPIFixture(t)
	fx.reservations.EXPECT().
		SearchByKiosk(mock.Anything, partnerUID, "Noodle House", "홍길동", "010-1234-5678", entity.PageRequest{Size: 10}).
		Return(entity.NewPage([]*entity.Reservation{sampleReservation(entity.ReservationStatusConfirm)}, entity.PageRequest{Size: 10}, 1), nil)
	fx.reservations.EXPECT().
		ArrivalCheckByQR(mock.Anything, partnerUID, "Noodle House", `{"reservation_uid":"x","type":"check_in"}`).
		Return(sampleReservation(entity.ReservationStatusArrived), nil)
	fx.reservations.EXPECT().CheckInQR(mock.Anything, customerUID, "aaaabbbbccccddddeeeeffff00001111").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	rec := fx.do(http.MethodGet,
		"/partner/store/reservation/search?storename=Noodle%20House&underName=%ED%99%8D%EA%B8%B8%EB%8F%99&phone=010-1234-5678", "", partnerToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = fx.do(http.MethodPost, "/partner/reservation/arrival-check/qr",
		`{"storename":"Noodle House","qrData":"{\"reservation_uid\":\"x\",\"type\":\"check_in\"}"}`, partnerToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = fx.do(http.MethodGet, "/customer/reservation/detail/qr?reservationUid=aaaabbbbccccddddeeeeffff00001111", "", customerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestAccountRoutes(t *testing.T) {
	fx := newAPIFixture(t)
	fx.accounts.EXPECT().
		SignIn(mock.Anything, &usecase.SignInInput{Kind: entity.AccountKindPartner, Email: "p@example.com", Password: "pw"}).
		Return(&usecase.SignInOutput{Token: "jwt", ExpiresIn: 24 * time.Hour}, nil)
	fx.accounts.EXPECT().GetInfo(mock.Anything, entity.Identity{UID: customerUID, Roles: entity.Roles{entity.RoleCustomer}}).
		Return(&entity.Account{UID: customerUID, Email: "c@example.com", Name: "kim", PasswordHash: "hash"}, nil)

	rec := fx.do(http.MethodPost, "/sign-in/partner", `{"email":"p@example.com","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var signIn handler.SignInResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &signIn))
	assert.Equal(t, "jwt", signIn.Token)
	assert.Equal(t, int64(86400), signIn.ExpiresIn)

	rec = fx.do(http.MethodPost, "/sign-in/admin", `{"email":"p@example.com","password":"pw"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, rec).Error.Code)

	rec = fx.do(http.MethodGet, "/customer/info", "", customerToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var info handler.MemberInfoResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &info))
	assert.Equal(t, "**********", info.Password)

	rec = fx.do(http.MethodGet, "/partner/info", "", customerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSignUpValidation(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodPost, "/sign-up/customer",
		`{"email":"not-an-email","name":"kim","password":"short","phone":"02-123-4567","birth":"1990-01-01"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	details := decode(t, rec).Error.Details
	assert.Equal(t, "이메일 주소가 유효하지 않습니다.", details["email"])
	assert.Contains(t, details, "password")
	assert.Contains(t, details, "phone")
	assert.NotContains(t, details, "name")
}

func TestStoreRoutes(t *testing.T) {
	fx := newAPIFixture(t)
	fx.stores.EXPECT().AutoComplete(mock.Anything, "noo").Return([]string{"Noodle House"}, nil)
	fx.stores.EXPECT().GetInfo(mock.Anything, "Nowhere").Return(nil, domainerrors.ErrStoreNotFound)

	rec := fx.do(http.MethodGet, "/store/autocomplete?keyword=noo", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var names []string
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &names))
	assert.Equal(t, []string{"Noodle House"}, names)

	rec = fx.do(http.MethodGet, "/store/info?storename=Nowhere", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND_STORE", decode(t, rec).Error.Code)

	rec = fx.do(http.MethodGet, "/store/info", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "storename")

	rec = fx.do(http.MethodPost, "/store/register", `{"storename":"x"}`, customerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReviewAndDeviceRoutes(t *testing.T) {
	fx := newAPIFixture(t)
	fx.reviews.EXPECT().ListByStore(mock.Anything, "Noodle House", entity.PageRequest{Size: 10}).
		Return(entity.NewPage([]*entity.Review{{Storename: "Noodle House", CustomerName: "김*수", Title: "good"}}, entity.PageRequest{Size: 10}, 1), nil)

	rec := fx.do(http.MethodGet, "/store/review/list?storename=Noodle%20House", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Content []handler.ReviewResponse `json:"content"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
	require.Len(t, list.Content, 1)
	assert.Equal(t, "김*수", list.Content[0].Name)

	rec = fx.do(http.MethodDelete, "/store/review?reviewId=not-a-uuid", "", partnerToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "reviewId")

	rec = fx.do(http.MethodDelete, "/api/v1/devices/not-a-uuid", "", customerToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "id")
}
