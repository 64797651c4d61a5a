package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// GoalEditable represents all user configurable parameters
type GoalEditable struct {
	Name        string          `json:"name" example:"Viagem de férias" default:""` // Name of the goal, unique per user
	Description string          `json:"description" example:"Praia em janeiro" default:""`
	TargetValue decimal.Decimal `json:"targetValue" example:"5000.00"` // Amount to save, must be positive
	SavedValue  decimal.Decimal `json:"savedValue" example:"1250.00"`  // Amount saved so far
	Deadline    *time.Time      `json:"deadline" example:"2025-12-20T00:00:00Z"`
	CategoryID  *uuid.UUID      `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
}

func (editable GoalEditable) model(userID uuid.UUID) models.Goal {
	return models.Goal{
		UserID:      userID,
		Name:        editable.Name,
		Description: editable.Description,
		TargetValue: editable.TargetValue,
		SavedValue:  editable.SavedValue,
		Deadline:    editable.Deadline,
		CategoryID:  editable.CategoryID,
	}
}

type GoalLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/goals/dc6ac5a8-4e9b-4e4e-aab9-1dbf0cbc9e4a"` // The goal itself
}

type Goal struct {
	models.DefaultModel
	GoalEditable

	Achieved bool            `json:"achieved" example:"false"` // True once savedValue reaches targetValue
	Progress decimal.Decimal `json:"progress" example:"0.25"`  // Saved fraction of the target, between 0 and 1

	Links GoalLinks `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	url := requestURL(c)

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:        model.Name,
			Description: model.Description,
			TargetValue: model.TargetValue,
			SavedValue:  model.SavedValue,
			Deadline:    model.Deadline,
			CategoryID:  model.CategoryID,
		},
		Achieved: model.Achieved,
		Progress: model.Progress(),
		Links: GoalLinks{
			Self: fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of Goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Data  []GoalResponse `json:"data"`                                                          // List of the created Goals or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                          // Data for the Goal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalQueryFilter struct {
	Name          string `form:"name" filterField:"false"`          // By name
	Achieved      string `form:"achieved" filterField:"false"`      // By achieved state: true or false
	Search        string `form:"search" filterField:"false"`        // By string in name or description
	SortBy        string `form:"sortBy" filterField:"false"`        // Sort by this field
	SortDirection string `form:"sortDirection" filterField:"false"` // asc, desc or none
	Offset        uint   `form:"offset" filterField:"false"`        // The offset of the first Goal returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`         // Maximum number of Goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() models.Goal {
	return models.Goal{}
}
