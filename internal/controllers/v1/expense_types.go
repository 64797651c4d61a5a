package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Description string                   `json:"description" example:"Supermercado" default:""` // What the expense is about
	Amount      decimal.Decimal          `json:"amount" example:"312.45"`                       // Amount paid, must be positive
	Date        time.Time                `json:"date" example:"2025-01-08T00:00:00Z"`           // Date of the payment
	Status      models.InstallmentStatus `json:"status" example:"pago" default:"pendente"`
	CategoryID  *uuid.UUID               `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
}

func (editable ExpenseEditable) model(userID uuid.UUID) models.Expense {
	return models.Expense{
		UserID:      userID,
		Description: editable.Description,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Status:      editable.Status,
		CategoryID:  editable.CategoryID,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/ca36423f-ae2c-4ccb-b433-1b2bb95b6f2c"` // The expense itself
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := requestURL(c)

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Description: model.Description,
			Amount:      model.Amount,
			Date:        model.Date,
			Status:      model.Status,
			CategoryID:  model.CategoryID,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of Expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created Expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the Expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Description   string `form:"description" filterField:"false"`   // By description
	Status        string `form:"status"`                            // By status
	Category      string `form:"category" filterField:"false"`      // By category ID
	From          string `form:"from" filterField:"false"`          // Only expenses on or after this date (YYYY-MM-DD)
	Until         string `form:"until" filterField:"false"`         // Only expenses before this date (YYYY-MM-DD)
	Search        string `form:"search" filterField:"false"`        // By string in description
	SortBy        string `form:"sortBy" filterField:"false"`        // Sort by this field
	SortDirection string `form:"sortDirection" filterField:"false"` // asc, desc or none
	Offset        uint   `form:"offset" filterField:"false"`        // The offset of the first Expense returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`         // Maximum number of Expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		Status: models.InstallmentStatus(f.Status),
	}
}
