package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pos/internal/service"
	"pos/pkg/response"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case service.IsValidation(err),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInsufficientPayment):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	code := statusFor(err)
	c.JSON(code, response.Error(code, err.Error()))
}

// bindJSON decodes the body into req, answering 400 on failure.
// A string where a number is expected is reported as a non-numeric quantity.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Value == "string" {
		err = &service.ValidationError{Field: typeErr.Field, Kind: service.NonNumericQuantity}
	}
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
	return false
}

// idParam parses the :id path parameter, answering 400 when it is not a number.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid id: "+c.Param("id")))
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, what+" not found"))
}
