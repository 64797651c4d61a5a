package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/httputil"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"gorm.io/gorm"
)

// RegisterMaintenanceRoutes registers the routes for maintenances with
// the RouterGroup that is passed.
func RegisterMaintenanceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMaintenanceList)
		r.POST("", CreateMaintenance)
	}

	// Maintenance with ID
	{
		r.OPTIONS("/:id", OptionsMaintenanceDetail)
		r.GET("/:id", GetMaintenance)
		r.PATCH("/:id", UpdateMaintenance)
		r.DELETE("/:id", DeleteMaintenance)
		r.PATCH("/:id/complete", CompleteMaintenance)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Maintenances
// @Success		204
// @Router			/v1/maintenances [options]
func OptionsMaintenanceList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Maintenances
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/maintenances/{id} [options]
func OptionsMaintenanceDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Maintenance{})
}

// @Summary		Create maintenance
// @Description	Creates a new maintenance item for a vehicle
// @Tags			Maintenances
// @Accept			json
// @Produce		json
// @Success		201			{object}	MaintenanceResponse
// @Failure		400			{object}	MaintenanceResponse
// @Failure		500			{object}	MaintenanceResponse
// @Param			maintenance	body		MaintenanceEditable	true	"Maintenance"
// @Router			/v1/maintenances [post]
func CreateMaintenance(c *gin.Context) {
	var editable MaintenanceEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &e,
		})
		return
	}

	// The vehicle must belong to the requesting user
	var vehicle models.Vehicle
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&vehicle, editable.VehicleID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &e,
		})
		return
	}

	maintenance := editable.model(currentUser(c))

	err = models.DB.Create(&maintenance).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &e,
		})
		return
	}

	data := newMaintenance(c, maintenance)
	c.JSON(http.StatusCreated, MaintenanceResponse{Data: &data})
}

// @Summary		Get maintenance
// @Description	Returns a specific maintenance
// @Tags			Maintenances
// @Produce		json
// @Success		200	{object}	MaintenanceResponse
// @Failure		400	{object}	MaintenanceResponse
// @Failure		404	{object}	MaintenanceResponse
// @Failure		500	{object}	MaintenanceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/maintenances/{id} [get]
func GetMaintenance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &s,
		})
		return
	}

	var maintenance models.Maintenance
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&maintenance, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &s,
		})
		return
	}

	data := newMaintenance(c, maintenance)
	c.JSON(http.StatusOK, MaintenanceResponse{Data: &data})
}

// @Summary		Update maintenance
// @Description	Update an existing maintenance. Only values to be updated need to be specified.
// @Tags			Maintenances
// @Accept			json
// @Produce		json
// @Success		200			{object}	MaintenanceResponse
// @Failure		400			{object}	MaintenanceResponse
// @Failure		404			{object}	MaintenanceResponse
// @Failure		500			{object}	MaintenanceResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			maintenance	body		MaintenanceEditable	true	"Maintenance"
// @Router			/v1/maintenances/{id} [patch]
func UpdateMaintenance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &s,
		})
		return
	}

	var maintenance models.Maintenance
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&maintenance, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MaintenanceEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &s,
		})
		return
	}

	var data MaintenanceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&maintenance).Select("", updateFields...).Updates(data.model(maintenance.UserID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &s,
		})
		return
	}

	r := newMaintenance(c, maintenance)
	c.JSON(http.StatusOK, MaintenanceResponse{Data: &r})
}

// @Summary		Complete maintenance
// @Description	Records the maintenance as done and schedules the next occurrence from the configured intervals. The vehicle mileage is updated when the reported reading is higher.
// @Tags			Maintenances
// @Accept			json
// @Produce		json
// @Success		200			{object}	MaintenanceResponse
// @Failure		400			{object}	MaintenanceResponse
// @Failure		404			{object}	MaintenanceResponse
// @Failure		500			{object}	MaintenanceResponse
// @Param			id			path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			completion	body		MaintenanceCompleteRequest	true	"Completion"
// @Router			/v1/maintenances/{id}/complete [patch]
func CompleteMaintenance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &s,
		})
		return
	}

	var maintenance models.Maintenance
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&maintenance, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &s,
		})
		return
	}

	var request MaintenanceCompleteRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &s,
		})
		return
	}

	var vehicle models.Vehicle
	err = models.DB.First(&vehicle, maintenance.VehicleID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &s,
		})
		return
	}

	if request.Mileage == 0 {
		request.Mileage = vehicle.Mileage
	}

	maintenance.Complete(request.Mileage, time.Now())

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&maintenance).Error; err != nil {
			return err
		}

		if request.Mileage > vehicle.Mileage {
			return tx.Model(&vehicle).Update("mileage", request.Mileage).Error
		}

		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceResponse{
			Error: &s,
		})
		return
	}

	data := newMaintenance(c, maintenance)
	c.JSON(http.StatusOK, MaintenanceResponse{Data: &data})
}

// @Summary		Delete maintenance
// @Description	Deletes a maintenance
// @Tags			Maintenances
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/maintenances/{id} [delete]
func DeleteMaintenance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var maintenance models.Maintenance
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&maintenance, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&maintenance).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
