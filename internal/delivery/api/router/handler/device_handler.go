package handler

import (
	"log/slog"

	"github.com/nadoran78/mytable/internal/delivery/api/response"
	"github.com/nadoran78/mytable/internal/delivery/api/validator"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

func deviceID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, validator.Invalid("id", "Invalid device ID")
	}

	return id, nil
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), identity.UID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return created(c, device)
}

// GetDevices handles retrieving the caller's devices
func (h *DeviceHandler) GetDevices(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetDevices(c.Request().Context(), identity.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, devices)
}

// UpdateFCMToken handles updating FCM token for a device
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	id, err := deviceID(c)
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), identity.UID, id, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "FCM token updated successfully"})
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	id, err := deviceID(c)
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), identity.UID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Device deactivated successfully"})
}
