package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "admin-system/pkg/errors"
	"admin-system/pkg/types"
)

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

type ListBody struct {
	List       interface{}       `json:"list"`
	Pagination *types.Pagination `json:"pagination,omitempty"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Code: http.StatusOK,
		Msg:  "Success",
		Data: data,
	})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Code: http.StatusCreated,
		Msg:  "Created",
		Data: data,
	})
}

func SuccessList(c echo.Context, list interface{}, total uint64, page, limit int) error {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + uint64(limit) - 1) / uint64(limit))
	}

	return c.JSON(http.StatusOK, Response{
		Code: http.StatusOK,
		Msg:  "Success",
		Data: ListBody{
			List: list,
			Pagination: &types.Pagination{
				TotalCount: total,
				TotalPages: totalPages,
				Page:       page,
				Limit:      limit,
			},
		},
	})
}

// ErrorResponse is the single point where error kinds become status codes.
// Token failures are 401, authorization failures 403, explicit HttpError codes
// pass through, everything else collapses to 500.
func ErrorResponse(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	msg := "Internal server error"

	var (
		tokenErr *apperrors.TokenError
		authzErr *apperrors.AuthorizationError
		srvErr   *apperrors.ServerError
		httpErr  *apperrors.HttpError
		valErr   validator.ValidationErrors
	)

	switch {
	case errors.As(err, &tokenErr):
		code = http.StatusUnauthorized
		msg = tokenErr.Msg
	case errors.As(err, &authzErr):
		code = http.StatusForbidden
		msg = authzErr.Msg
	case errors.As(err, &srvErr):
		code = http.StatusInternalServerError
		msg = srvErr.Msg
	case errors.As(err, &httpErr):
		code = httpErr.Code
		msg = httpErr.Message
	case errors.As(err, &valErr):
		code = http.StatusUnprocessableEntity
		msg = "Request validation failed"
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		msg = "Record not found"
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		msg = "Bad request"
	}

	return c.JSON(code, Response{Code: code, Msg: msg, Data: nil})
}
