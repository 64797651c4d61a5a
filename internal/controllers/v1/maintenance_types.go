package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// MaintenanceEditable represents all user configurable parameters
type MaintenanceEditable struct {
	VehicleID      uuid.UUID                `json:"vehicleId" example:"8cf4dd8e-eb3a-4f4a-b8ac-0cba37b1bc71"`
	Item           string                   `json:"item" example:"Troca de óleo" default:""`
	Description    string                   `json:"description" example:"Óleo sintético 5W30" default:""`
	IntervalMonths int                      `json:"intervalMonths" example:"6"`      // Months between occurrences, 0 to disable
	IntervalKM     int                      `json:"intervalKm" example:"10000"`      // Kilometers between occurrences, 0 to disable
	NextDate       *time.Time               `json:"nextDate" example:"2025-06-15T00:00:00Z"`
	NextMileage    int                      `json:"nextMileage" example:"52000"`
	Status         models.MaintenanceStatus `json:"status" example:"pendente" default:"pendente"`
}

func (editable MaintenanceEditable) model(userID uuid.UUID) models.Maintenance {
	return models.Maintenance{
		UserID:         userID,
		VehicleID:      editable.VehicleID,
		Item:           editable.Item,
		Description:    editable.Description,
		IntervalMonths: editable.IntervalMonths,
		IntervalKM:     editable.IntervalKM,
		NextDate:       editable.NextDate,
		NextMileage:    editable.NextMileage,
		Status:         editable.Status,
	}
}

type MaintenanceLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/maintenances/c3f52bb8-0a19-4e7e-8c21-ec9b6b4f8a3f"` // The maintenance itself
	Vehicle string `json:"vehicle" example:"https://example.com/api/v1/vehicles/8cf4dd8e-eb3a-4f4a-b8ac-0cba37b1bc71"`  // The owning vehicle
}

type Maintenance struct {
	models.DefaultModel
	MaintenanceEditable

	LastDate    *time.Time `json:"lastDate" example:"2024-12-15T00:00:00Z"` // When the maintenance was last done
	LastMileage int        `json:"lastMileage" example:"42000"`             // Odometer reading when it was last done

	Links MaintenanceLinks `json:"links"`
}

func newMaintenance(c *gin.Context, model models.Maintenance) Maintenance {
	url := requestURL(c)

	return Maintenance{
		DefaultModel: model.DefaultModel,
		MaintenanceEditable: MaintenanceEditable{
			VehicleID:      model.VehicleID,
			Item:           model.Item,
			Description:    model.Description,
			IntervalMonths: model.IntervalMonths,
			IntervalKM:     model.IntervalKM,
			NextDate:       model.NextDate,
			NextMileage:    model.NextMileage,
			Status:         model.Status,
		},
		LastDate:    model.LastDate,
		LastMileage: model.LastMileage,
		Links: MaintenanceLinks{
			Self:    fmt.Sprintf("%s/v1/maintenances/%s", url, model.ID),
			Vehicle: fmt.Sprintf("%s/v1/vehicles/%s", url, model.VehicleID),
		},
	}
}

type MaintenanceListResponse struct {
	Data  []Maintenance `json:"data"`                                                          // List of Maintenances
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MaintenanceResponse struct {
	Data  *Maintenance `json:"data"`                                                          // Data for the Maintenance
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// MaintenanceCompleteRequest carries the odometer reading at completion time.
type MaintenanceCompleteRequest struct {
	Mileage int `json:"mileage" example:"52100"`
}
