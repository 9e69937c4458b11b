package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/nadoran78/mytable/internal/delivery/api/response"
	"github.com/nadoran78/mytable/internal/delivery/api/validator"
	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	"github.com/nadoran78/mytable/internal/domain/constants"
	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// caller returns the identity stored by the auth middleware.
func caller(c echo.Context) (entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return entity.Identity{}, domainerrors.ErrInvalidToken
	}

	return identity, nil
}

// bindBody decodes the JSON body into req and validates it.
func bindBody(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return domainerrors.ErrInvalidRequest
	}

	return c.Validate(req)
}

func requiredQuery(c echo.Context, name string) (string, error) {
	value := strings.TrimSpace(c.QueryParam(name))
	if value == "" {
		return "", validator.Required(name)
	}

	return value, nil
}

// pageQuery holds the paging parameters shared by every list endpoint.
type pageQuery struct {
	Page int `json:"page" validate:"min=0"`
	Size int `json:"size" validate:"min=1,max=100"`
}

func bindPage(c echo.Context) (entity.PageRequest, error) {
	q := pageQuery{Size: constants.DefaultPageSize}
	if err := echo.QueryParamsBinder(c).Int("page", &q.Page).Int("size", &q.Size).BindError(); err != nil {
		return entity.PageRequest{}, domainerrors.ErrInvalidRequest
	}

	if err := c.Validate(&q); err != nil {
		return entity.PageRequest{}, err
	}

	return entity.PageRequest{Page: q.Page, Size: q.Size}, nil
}

func queryDate(c echo.Context, name string, loc *time.Location) (time.Time, error) {
	raw, err := requiredQuery(c, name)
	if err != nil {
		return time.Time{}, err
	}

	day, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return time.Time{}, validator.Invalid(name, "형식이 올바르지 않습니다: "+dateLayout)
	}

	return day, nil
}

func created(c echo.Context, data any) error {
	return response.Success(c, http.StatusCreated, data)
}
