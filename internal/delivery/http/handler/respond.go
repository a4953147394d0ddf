package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainOrder "buildmat-dispatch/internal/domain/order"
	domainTruck "buildmat-dispatch/internal/domain/truck"
	domainUser "buildmat-dispatch/internal/domain/user"
	appErrors "buildmat-dispatch/pkg/errors"
	"buildmat-dispatch/pkg/utils"
)

// respondError maps domain errors onto HTTP status codes so every handler
// reports them the same way.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, domainOrder.ErrOrderNotFound),
		errors.Is(err, domainTruck.ErrTruckTypeNotFound),
		errors.Is(err, domainUser.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainOrder.ErrNotOrderCustomer),
		errors.Is(err, domainOrder.ErrNotAssignedDriver):
		status = http.StatusForbidden
	case errors.Is(err, domainOrder.ErrAlreadyAssigned),
		errors.Is(err, domainOrder.ErrOrderTerminal),
		errors.Is(err, domainOrder.ErrOrderInProgress),
		errors.Is(err, domainOrder.ErrTripComplete),
		errors.Is(err, domainUser.ErrUserAlreadyExists),
		errors.Is(err, domainTruck.ErrTruckTypeAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, domainUser.ErrUserInactive):
		status = http.StatusUnauthorized
	}
	utils.ErrorResponse(c, status, err.Error())
}

// callerID reads the authenticated user's id set by the auth middleware.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func callerRole(c *gin.Context) string {
	return c.GetString("role")
}
