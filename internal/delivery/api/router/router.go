// Package router registers the API routes.
package router

import (
	"github.com/nadoran78/mytable/internal/delivery/api/middleware"
	"github.com/nadoran78/mytable/internal/delivery/api/router/handler"
	"github.com/nadoran78/mytable/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	StoreHandler        *handler.StoreHandler
	ReservationHandler  *handler.ReservationHandler
	ReviewHandler       *handler.ReviewHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	account     *handler.AccountHandler
	store       *handler.StoreHandler
	reservation *handler.ReservationHandler
	review      *handler.ReviewHandler
	device      *handler.DeviceHandler
	auth        *middleware.AuthMiddleware
	rateLimit   *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		account:     params.AccountHandler,
		store:       params.StoreHandler,
		reservation: params.ReservationHandler,
		review:      params.ReviewHandler,
		device:      params.DeviceHandler,
		auth:        params.AuthMiddleware,
		rateLimit:   params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	customerOnly := []echo.MiddlewareFunc{r.auth.Authenticate, r.auth.RequireRole(entity.RoleCustomer)}
	partnerOnly := []echo.MiddlewareFunc{r.auth.Authenticate, r.auth.RequireRole(entity.RolePartner)}

	// Accounts
	e.POST("/sign-up/:kind", r.account.SignUp)
	e.POST("/sign-in/:kind", r.account.SignIn, r.rateLimit.Limit)

	for _, member := range []struct {
		prefix string
		mw     []echo.MiddlewareFunc
	}{
		{"/customer", customerOnly},
		{"/partner", partnerOnly},
	} {
		info := e.Group(member.prefix+"/info", member.mw...)
		info.GET("", r.account.GetInfo)
		info.PUT("", r.account.UpdateInfo)
		info.DELETE("", r.account.Delete)
	}

	// Stores
	storeGroup := e.Group("/store")
	{
		storeGroup.GET("/autocomplete", r.store.AutoComplete)
		storeGroup.GET("/info", r.store.GetInfo)
		storeGroup.POST("/register", r.store.Register, partnerOnly...)
		storeGroup.PUT("/info/update", r.store.Update, partnerOnly...)
		storeGroup.DELETE("/info/delete", r.store.Delete, partnerOnly...)
	}

	// Reviews
	reviewGroup := storeGroup.Group("/review")
	{
		reviewGroup.GET("/list", r.review.List)
		reviewGroup.GET("", r.review.Get)
		reviewGroup.POST("", r.review.Create, customerOnly...)
		reviewGroup.PUT("", r.review.Update, customerOnly...)
		reviewGroup.DELETE("", r.review.Delete, r.auth.Authenticate)
	}

	// Customer reservations
	customerGroup := e.Group("/customer/reservation", customerOnly...)
	{
		customerGroup.POST("/request", r.reservation.Request)
		customerGroup.GET("/my-list", r.reservation.MyList)
		customerGroup.GET("/detail", r.reservation.CustomerDetail)
		customerGroup.PUT("/detail/update", r.reservation.Update)
		customerGroup.POST("/detail/cancel", r.reservation.Cancel)
		customerGroup.GET("/detail/qr", r.reservation.CheckInQR)
	}

	// Partner reservations and kiosk
	partnerGroup := e.Group("/partner", partnerOnly...)
	{
		partnerGroup.GET("/my-stores", r.store.ListMine)
		partnerGroup.GET("/store/reservations", r.reservation.StoreReservations)
		partnerGroup.GET("/reservation/detail", r.reservation.PartnerDetail)
		partnerGroup.POST("/reservation/detail/confirm", r.reservation.Confirm)
		partnerGroup.POST("/reservation/detail/reject", r.reservation.Reject)
		partnerGroup.GET("/store/reservation/search", r.reservation.KioskSearch, r.rateLimit.Limit)
		partnerGroup.POST("/reservation/detail/arrival-check", r.reservation.ArrivalCheck, r.rateLimit.Limit)
		partnerGroup.POST("/reservation/arrival-check/qr", r.reservation.ArrivalCheckByQR, r.rateLimit.Limit)
	}

	// Devices
	devicesGroup := e.Group("/api/v1/devices", r.auth.Authenticate)
	{
		devicesGroup.POST("", r.device.RegisterDevice)
		devicesGroup.GET("", r.device.GetDevices)
		devicesGroup.PUT("/:id/token", r.device.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.device.DeactivateDevice)
	}
}
