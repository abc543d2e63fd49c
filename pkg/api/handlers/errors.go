package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/kodakam/pkg/api/types"
	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/device"
)

// writeError maps catalog and device errors to HTTP responses.
func writeError(c *gin.Context, err error) {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: verr.Error(),
			Param:   verr.Param,
			Reason:  verr.Reason,
			Limit:   verr.Limit,
		})
	case errors.Is(err, device.ErrValidation):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	case errors.Is(err, catalog.ErrUnknownCommand):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "unknown_command",
			Message: err.Error(),
		})
	case errors.Is(err, device.ErrInvalidAddress):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_address",
			Message: err.Error(),
		})
	case errors.Is(err, device.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, types.ErrorResponse{
			Error:   "timeout",
			Message: "Request timed out waiting for camera response",
		})
	case errors.Is(err, device.ErrNotCamera):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "not_a_camera",
			Message: err.Error(),
		})
	case errors.Is(err, device.ErrUnreachable), errors.Is(err, device.ErrHTTPStatus):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "camera_error",
			Message: err.Error(),
		})
	case errors.Is(err, context.Canceled):
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
			Error:   "cancelled",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
