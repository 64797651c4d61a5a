package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// RegisterCleanupRoutes registers the cleanup route with
// the RouterGroup that is passed.
func RegisterCleanupRoutes(r *gin.RouterGroup) {
	r.DELETE("", Cleanup)
}

// @Summary		Delete everything
// @Description	Permanently deletes all records of the authenticated user. The account itself is kept.
// @Tags			v1
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			confirm	query	string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	err = models.DeleteUserData(models.DB, currentUser(c), false)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
