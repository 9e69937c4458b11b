package handler

import (
	"log/slog"

	"github.com/nadoran78/mytable/internal/delivery/api/response"
	"github.com/nadoran78/mytable/internal/domain/entity"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler serves store registration, search and management.
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

func storeInput(req *StoreRequest) *usecase.StoreInput {
	return &usecase.StoreInput{
		Storename: req.Storename,
		Phone:     req.Phone,
		Address: entity.Address{
			Sido:          req.Sido,
			Sigungu:       req.Sigungu,
			Roadname:      req.Roadname,
			DetailAddress: req.DetailAddress,
		},
		Description: req.Description,
		Tables:      req.tables(),
	}
}

// Register handles POST /store/register
func (h *StoreHandler) Register(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req StoreRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	store, err := h.storeUC.Register(c.Request().Context(), identity.UID, storeInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return created(c, newStoreResponse(store))
}

// AutoComplete handles GET /store/autocomplete?keyword=
func (h *StoreHandler) AutoComplete(c echo.Context) error {
	names, err := h.storeUC.AutoComplete(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, names)
}

// GetInfo handles GET /store/info?storename=
func (h *StoreHandler) GetInfo(c echo.Context) error {
	storename, err := requiredQuery(c, "storename")
	if err != nil {
		return err
	}

	store, err := h.storeUC.GetInfo(c.Request().Context(), storename)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newStoreResponse(store))
}

// Update handles PUT /store/info/update?existingStorename=
func (h *StoreHandler) Update(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	existing, err := requiredQuery(c, "existingStorename")
	if err != nil {
		return err
	}

	var req StoreRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	store, err := h.storeUC.Update(c.Request().Context(), identity.UID, existing, storeInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newStoreResponse(store))
}

// Delete handles DELETE /store/info/delete?storename=
func (h *StoreHandler) Delete(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	storename, err := requiredQuery(c, "storename")
	if err != nil {
		return err
	}

	if err := h.storeUC.Delete(c.Request().Context(), identity.UID, storename); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "점포가 삭제되었습니다."})
}

// ListMine handles GET /partner/my-stores
func (h *StoreHandler) ListMine(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	page, err := bindPage(c)
	if err != nil {
		return err
	}

	stores, err := h.storeUC.ListMine(c.Request().Context(), identity.UID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, response.NewPageResponse(stores, newStoreResponse))
}
