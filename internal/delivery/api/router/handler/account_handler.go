package handler

import (
	"log/slog"
	"time"

	"github.com/nadoran78/mytable/internal/delivery/api/response"
	"github.com/nadoran78/mytable/internal/delivery/api/validator"
	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves sign-up, sign-in and member info.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

func accountKind(c echo.Context) (entity.AccountKind, error) {
	kind, ok := entity.ParseAccountKind(c.Param("kind"))
	if !ok {
		return "", domainerrors.ErrInvalidRequest
	}

	return kind, nil
}

// parseBirth accepts only dates strictly in the past.
func parseBirth(raw string) (time.Time, error) {
	birth, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, validator.Invalid("birth", "형식이 올바르지 않습니다: "+dateLayout)
	}
	if !birth.Before(time.Now()) {
		return time.Time{}, validator.Invalid("birth", "과거 날짜여야 합니다.")
	}

	return birth, nil
}

// SignUp handles POST /sign-up/:kind
func (h *AccountHandler) SignUp(c echo.Context) error {
	kind, err := accountKind(c)
	if err != nil {
		return err
	}

	var req SignUpRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	birth, err := parseBirth(req.Birth)
	if err != nil {
		return err
	}

	account, err := h.accountUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Kind:     kind,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Birth:    birth,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return created(c, newMemberInfoResponse(account))
}

// SignIn handles POST /sign-in/:kind
func (h *AccountHandler) SignIn(c echo.Context) error {
	kind, err := accountKind(c)
	if err != nil {
		return err
	}

	var req SignInRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	out, err := h.accountUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		Kind:     kind,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, SignInResponse{
		Token:     out.Token,
		ExpiresIn: int64(out.ExpiresIn / time.Second),
	})
}

// GetInfo handles GET /{customer|partner}/info
func (h *AccountHandler) GetInfo(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	account, err := h.accountUC.GetInfo(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newMemberInfoResponse(account))
}

// UpdateInfo handles PUT /{customer|partner}/info
func (h *AccountHandler) UpdateInfo(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req UpdateMemberRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateAccountInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	}
	if req.Birth != "" {
		if input.Birth, err = parseBirth(req.Birth); err != nil {
			return err
		}
	}

	account, err := h.accountUC.UpdateInfo(c.Request().Context(), identity, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newMemberInfoResponse(account))
}

// Delete handles DELETE /{customer|partner}/info
func (h *AccountHandler) Delete(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req WithdrawRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.Delete(c.Request().Context(), identity, req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Account withdrawn", slog.String("uid", identity.UID))

	return response.OK(c, map[string]string{"message": "회원 탈퇴가 완료되었습니다."})
}
