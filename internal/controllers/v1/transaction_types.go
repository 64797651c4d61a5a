package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Type        models.TransactionType `json:"type" example:"despesa"`                    // receita or despesa
	Description string                 `json:"description" example:"Padaria" default:""` // What the transaction is about
	Amount      decimal.Decimal        `json:"amount" example:"18.90"`                   // Amount, always positive
	Date        time.Time              `json:"date" example:"2025-01-12T00:00:00Z"`      // Date of the transaction
	CategoryID  *uuid.UUID             `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
}

func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		Type:        editable.Type,
		Description: editable.Description,
		Amount:      editable.Amount,
		Date:        editable.Date,
		CategoryID:  editable.CategoryID,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d49bb02e-bd04-4a35-a3d3-77dd1bfda7b9"` // The transaction itself
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := requestURL(c)

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:        model.Type,
			Description: model.Description,
			Amount:      model.Amount,
			Date:        model.Date,
			CategoryID:  model.CategoryID,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of Transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of the created Transactions or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the Transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Type          string `form:"type"`                              // By type: receita or despesa
	Description   string `form:"description" filterField:"false"`   // By description
	Category      string `form:"category" filterField:"false"`      // By category ID
	From          string `form:"from" filterField:"false"`          // Only transactions on or after this date (YYYY-MM-DD)
	Until         string `form:"until" filterField:"false"`         // Only transactions before this date (YYYY-MM-DD)
	Search        string `form:"search" filterField:"false"`        // By string in description
	SortBy        string `form:"sortBy" filterField:"false"`        // Sort by this field
	SortDirection string `form:"sortDirection" filterField:"false"` // asc, desc or none
	Offset        uint   `form:"offset" filterField:"false"`        // The offset of the first Transaction returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`         // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Type: models.TransactionType(f.Type),
	}
}
