package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	Description string                   `json:"description" example:"Salário" default:""` // What the income is about
	Amount      decimal.Decimal          `json:"amount" example:"4500.00"`                 // Amount received, must be positive
	Date        time.Time                `json:"date" example:"2025-01-05T00:00:00Z"`      // Date of the receipt
	Status      models.InstallmentStatus `json:"status" example:"recebida" default:"pendente"`
	CategoryID  *uuid.UUID               `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
}

func (editable IncomeEditable) model(userID uuid.UUID) models.Income {
	return models.Income{
		UserID:      userID,
		Description: editable.Description,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Status:      editable.Status,
		CategoryID:  editable.CategoryID,
	}
}

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/incomes/5b218b51-4f9b-4be3-8f63-8e7f5e0f2a2e"` // The income itself
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := requestURL(c)

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			Description: model.Description,
			Amount:      model.Amount,
			Date:        model.Date,
			Status:      model.Status,
			CategoryID:  model.CategoryID,
		},
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
		},
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of Incomes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Data  []IncomeResponse `json:"data"`                                                          // List of the created Incomes or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the Income
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	Description   string `form:"description" filterField:"false"`   // By description
	Status        string `form:"status"`                            // By status
	Category      string `form:"category" filterField:"false"`      // By category ID
	From          string `form:"from" filterField:"false"`          // Only incomes on or after this date (YYYY-MM-DD)
	Until         string `form:"until" filterField:"false"`         // Only incomes before this date (YYYY-MM-DD)
	Search        string `form:"search" filterField:"false"`        // By string in description
	SortBy        string `form:"sortBy" filterField:"false"`        // Sort by this field
	SortDirection string `form:"sortDirection" filterField:"false"` // asc, desc or none
	Offset        uint   `form:"offset" filterField:"false"`        // The offset of the first Income returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`         // Maximum number of Incomes to return. Defaults to 50.
}

func (f IncomeQueryFilter) model() models.Income {
	return models.Income{
		Status: models.InstallmentStatus(f.Status),
	}
}
