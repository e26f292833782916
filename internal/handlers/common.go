// internal/handlers/common.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orbitto/orbitto-backend/internal/services"
	"github.com/orbitto/orbitto-backend/internal/utils"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// handleServiceError maps the services' sentinel errors onto the HTTP error
// taxonomy; anything unexpected is a persistence fault and surfaces as a 500.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, services.ErrAccountInactive):
		utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrInventoryNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrEmailExists),
		errors.Is(err, services.ErrUserEmailExists),
		errors.Is(err, services.ErrSKUExists),
		errors.Is(err, services.ErrCustomerEmailExists),
		errors.Is(err, services.ErrOrderNumberExists),
		errors.Is(err, services.ErrInventoryExists):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidOrderStatus):
		utils.BadRequestResponse(c, err.Error())
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
