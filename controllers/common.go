package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// pathID parses an integer path parameter. A non-integer value is a
// format error, answered before any existence check.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		resp.BadRequest(c, MsgBadRequest)
		return 0, false
	}
	return uint(id), true
}

// isPriceViolation reports whether the binding error is specifically a
// present-but-negative price. A missing price stays a generic format
// error; only the floor violation gets the dedicated message.
func isPriceViolation(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Field() == "Price" && fe.Tag() == "gte" {
			return true
		}
	}
	return false
}

// writeServiceError maps the known service failures to their status and
// message; anything else is a datastore failure.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		resp.NotFound(c, MsgNoCategory)
	case errors.Is(err, services.ErrMenuNotFound):
		resp.NotFound(c, MsgNoMenu)
	default:
		resp.ServerError(c, err)
	}
}
