package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// VehicleEditable represents all user configurable parameters
type VehicleEditable struct {
	Name    string `json:"name" example:"Carro da família" default:""`
	Brand   string `json:"brand" example:"Fiat" default:""`
	Model   string `json:"model" example:"Argo" default:""`
	Year    int    `json:"year" example:"2021"`
	Plate   string `json:"plate" example:"ABC1D23" default:""` // Stored upper case
	Mileage int    `json:"mileage" example:"42000"`            // Current odometer reading in km
}

func (editable VehicleEditable) model(userID uuid.UUID) models.Vehicle {
	return models.Vehicle{
		UserID:  userID,
		Name:    editable.Name,
		Brand:   editable.Brand,
		Model:   editable.Model,
		Year:    editable.Year,
		Plate:   editable.Plate,
		Mileage: editable.Mileage,
	}
}

type VehicleLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/vehicles/8cf4dd8e-eb3a-4f4a-b8ac-0cba37b1bc71"`                      // The vehicle itself
	Maintenances string `json:"maintenances" example:"https://example.com/api/v1/vehicles/8cf4dd8e-eb3a-4f4a-b8ac-0cba37b1bc71/maintenances"` // Maintenances of the vehicle
}

type Vehicle struct {
	models.DefaultModel
	VehicleEditable
	Links VehicleLinks `json:"links"`
}

func newVehicle(c *gin.Context, model models.Vehicle) Vehicle {
	url := requestURL(c)

	return Vehicle{
		DefaultModel: model.DefaultModel,
		VehicleEditable: VehicleEditable{
			Name:    model.Name,
			Brand:   model.Brand,
			Model:   model.Model,
			Year:    model.Year,
			Plate:   model.Plate,
			Mileage: model.Mileage,
		},
		Links: VehicleLinks{
			Self:         fmt.Sprintf("%s/v1/vehicles/%s", url, model.ID),
			Maintenances: fmt.Sprintf("%s/v1/vehicles/%s/maintenances", url, model.ID),
		},
	}
}

type VehicleListResponse struct {
	Data       []Vehicle   `json:"data"`                                                          // List of Vehicles
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type VehicleResponse struct {
	Data  *Vehicle `json:"data"`                                                          // Data for the Vehicle
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type VehicleQueryFilter struct {
	Name          string `form:"name" filterField:"false"`          // By name
	Plate         string `form:"plate" filterField:"false"`         // By plate
	Search        string `form:"search" filterField:"false"`        // By string in name, brand and model
	SortBy        string `form:"sortBy" filterField:"false"`        // Sort by this field
	SortDirection string `form:"sortDirection" filterField:"false"` // asc, desc or none
	Offset        uint   `form:"offset" filterField:"false"`        // The offset of the first Vehicle returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`         // Maximum number of Vehicles to return. Defaults to 50.
}
