package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/httputil"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/sortable"
	"golang.org/x/exp/slices"
)

// RegisterVehicleRoutes registers the routes for vehicles with
// the RouterGroup that is passed.
func RegisterVehicleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsVehicleList)
		r.GET("", GetVehicles)
		r.POST("", CreateVehicle)
	}

	// Vehicle with ID
	{
		r.OPTIONS("/:id", OptionsVehicleDetail)
		r.GET("/:id", GetVehicle)
		r.PATCH("/:id", UpdateVehicle)
		r.DELETE("/:id", DeleteVehicle)
		r.GET("/:id/maintenances", GetVehicleMaintenances)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vehicles
// @Success		204
// @Router			/v1/vehicles [options]
func OptionsVehicleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vehicles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vehicles/{id} [options]
func OptionsVehicleDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Vehicle{})
}

// @Summary		Create vehicle
// @Description	Creates a new vehicle
// @Tags			Vehicles
// @Accept			json
// @Produce		json
// @Success		201		{object}	VehicleResponse
// @Failure		400		{object}	VehicleResponse
// @Failure		500		{object}	VehicleResponse
// @Param			vehicle	body		VehicleEditable	true	"Vehicle"
// @Router			/v1/vehicles [post]
func CreateVehicle(c *gin.Context) {
	var editable VehicleEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &e,
		})
		return
	}

	vehicle := editable.model(currentUser(c))

	err = models.DB.Create(&vehicle).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &e,
		})
		return
	}

	data := newVehicle(c, vehicle)
	c.JSON(http.StatusCreated, VehicleResponse{Data: &data})
}

// @Summary		Get vehicles
// @Description	Returns a list of vehicles
// @Tags			Vehicles
// @Produce		json
// @Success		200	{object}	VehicleListResponse
// @Failure		400	{object}	VehicleListResponse
// @Failure		500	{object}	VehicleListResponse
// @Router			/v1/vehicles [get]
// @Param			name			query	string	false	"Filter by name"
// @Param			plate			query	string	false	"Filter by plate"
// @Param			search			query	string	false	"Search for this text in name, brand and model"
// @Param			sortBy			query	string	false	"Sort by this field"
// @Param			sortDirection	query	string	false	"Sort direction: asc, desc or none"
// @Param			offset			query	uint	false	"The offset of the first Vehicle returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Vehicles to return. Defaults to 50."
func GetVehicles(c *gin.Context) {
	var filter VehicleQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Where("user_id = ?", currentUser(c)).
		Order("name ASC")

	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Plate != "" {
		q = q.Where("plate LIKE ?", "%"+filter.Plate+"%")
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("name LIKE ?", "%"+filter.Search+"%").
				Or(models.DB.Where("brand LIKE ?", "%"+filter.Search+"%")).
				Or(models.DB.Where("model LIKE ?", "%"+filter.Search+"%")),
		)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Vehicles and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var vehicles []models.Vehicle
	err := q.Find(&vehicles).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VehicleListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VehicleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Vehicle, 0, len(vehicles))
	for _, vehicle := range vehicles {
		data = append(data, newVehicle(c, vehicle))
	}

	data = sortable.Sort(data, filter.SortBy, sortable.ParseDirection(filter.SortDirection))

	c.JSON(http.StatusOK, VehicleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get vehicle
// @Description	Returns a specific vehicle
// @Tags			Vehicles
// @Produce		json
// @Success		200	{object}	VehicleResponse
// @Failure		400	{object}	VehicleResponse
// @Failure		404	{object}	VehicleResponse
// @Failure		500	{object}	VehicleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vehicles/{id} [get]
func GetVehicle(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &s,
		})
		return
	}

	var vehicle models.Vehicle
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&vehicle, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &s,
		})
		return
	}

	data := newVehicle(c, vehicle)
	c.JSON(http.StatusOK, VehicleResponse{Data: &data})
}

// @Summary		Get vehicle maintenances
// @Description	Returns the maintenances of a vehicle
// @Tags			Vehicles
// @Produce		json
// @Success		200	{object}	MaintenanceListResponse
// @Failure		400	{object}	MaintenanceListResponse
// @Failure		404	{object}	MaintenanceListResponse
// @Failure		500	{object}	MaintenanceListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vehicles/{id}/maintenances [get]
func GetVehicleMaintenances(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceListResponse{
			Error: &s,
		})
		return
	}

	var vehicle models.Vehicle
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&vehicle, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceListResponse{
			Error: &s,
		})
		return
	}

	var maintenances []models.Maintenance
	err = models.DB.
		Where(&models.Maintenance{VehicleID: vehicle.ID}).
		Order("item ASC").
		Find(&maintenances).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaintenanceListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Maintenance, 0, len(maintenances))
	for _, maintenance := range maintenances {
		data = append(data, newMaintenance(c, maintenance))
	}

	c.JSON(http.StatusOK, MaintenanceListResponse{Data: data})
}

// @Summary		Update vehicle
// @Description	Update an existing vehicle. Only values to be updated need to be specified.
// @Tags			Vehicles
// @Accept			json
// @Produce		json
// @Success		200		{object}	VehicleResponse
// @Failure		400		{object}	VehicleResponse
// @Failure		404		{object}	VehicleResponse
// @Failure		500		{object}	VehicleResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			vehicle	body		VehicleEditable	true	"Vehicle"
// @Router			/v1/vehicles/{id} [patch]
func UpdateVehicle(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &s,
		})
		return
	}

	var vehicle models.Vehicle
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&vehicle, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, VehicleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &s,
		})
		return
	}

	var data VehicleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&vehicle).Select("", updateFields...).Updates(data.model(vehicle.UserID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &s,
		})
		return
	}

	r := newVehicle(c, vehicle)
	c.JSON(http.StatusOK, VehicleResponse{Data: &r})
}

// @Summary		Delete vehicle
// @Description	Deletes a vehicle and its maintenances
// @Tags			Vehicles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vehicles/{id} [delete]
func DeleteVehicle(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var vehicle models.Vehicle
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&vehicle, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteVehicle(models.DB, vehicle)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
