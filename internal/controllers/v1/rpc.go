package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/httputil"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"gorm.io/gorm"
)

// RegisterRPCRoutes registers the procedure style endpoints with
// the RouterGroup that is passed.
func RegisterRPCRoutes(r *gin.RouterGroup) {
	r.POST("/setup-user-account", SetupUserAccount)
	r.POST("/delete-user-account", DeleteUserAccount)
	r.POST("/run-sweep", RunSweep)
}

// RegisterPublicRPCRoutes registers the procedure endpoints that do not
// need a session.
func RegisterPublicRPCRoutes(r *gin.RouterGroup) {
	r.POST("/check-email-exists", CheckEmailExists)
}

// RPCResponse is the envelope for procedure style endpoints.
type RPCResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"account initialized"`
}

// CheckEmailRequest carries the address to look up.
type CheckEmailRequest struct {
	Email string `json:"email" example:"maria@example.com"`
}

// CheckEmailResponse reports whether an account exists for the address.
type CheckEmailResponse struct {
	Exists bool    `json:"exists" example:"true"`
	Error  *string `json:"error"` // The error, if any occurred
}

// @Summary		Setup account
// @Description	Seeds the default categories for a fresh account. Idempotent, repeated calls are no-ops.
// @Tags			RPC
// @Produce		json
// @Success		200	{object}	RPCResponse
// @Failure		500	{object}	httpError
// @Router			/v1/rpc/setup-user-account [post]
func SetupUserAccount(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, currentUser(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if user.SetupCompleted {
		c.JSON(http.StatusOK, RPCResponse{
			Success: true,
			Message: "account already initialized",
		})
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for _, category := range models.DefaultCategories(user.ID) {
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
		}

		return tx.Model(&user).Update("setup_completed", true).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, RPCResponse{
		Success: true,
		Message: "account initialized",
	})
}

// @Summary		Delete account
// @Description	Deletes the authenticated user and every record that belongs to them
// @Tags			RPC
// @Produce		json
// @Success		200	{object}	RPCResponse
// @Failure		500	{object}	httpError
// @Router			/v1/rpc/delete-user-account [post]
func DeleteUserAccount(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, currentUser(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteUserData(models.DB, user.ID, true)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, RPCResponse{
		Success: true,
		Message: "account deleted",
	})
}

// @Summary		Check email
// @Description	Reports whether an account exists for the address. Used by the sign-in form.
// @Tags			RPC
// @Accept			json
// @Produce		json
// @Success		200		{object}	CheckEmailResponse
// @Failure		400		{object}	CheckEmailResponse
// @Param			email	body		CheckEmailRequest	true	"Email"
// @Router			/v1/rpc/check-email-exists [post]
func CheckEmailExists(c *gin.Context) {
	var request CheckEmailRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CheckEmailResponse{
			Error: &s,
		})
		return
	}

	if request.Email == "" {
		s := errEmailRequired.Error()
		c.JSON(http.StatusBadRequest, CheckEmailResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = models.DB.Model(&models.User{}).Where("email = ?", request.Email).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CheckEmailResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CheckEmailResponse{Exists: count > 0})
}

// @Summary		Run sweep
// @Description	Runs the overdue sweep immediately instead of waiting for the schedule
// @Tags			RPC
// @Produce		json
// @Success		200	{object}	RPCResponse
// @Failure		500	{object}	httpError
// @Router			/v1/rpc/run-sweep [post]
func RunSweep(c *gin.Context) {
	if deps.Sweep == nil {
		c.JSON(http.StatusOK, RPCResponse{
			Success: false,
			Message: "the sweeper is not configured",
		})
		return
	}

	err := deps.Sweep(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, RPCResponse{
		Success: true,
		Message: "sweep completed",
	})
}
