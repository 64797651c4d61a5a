package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// ParceledIncomeEditable represents all user configurable parameters
type ParceledIncomeEditable struct {
	Description      string          `json:"description" example:"Venda do notebook" default:""` // What the income is about
	Payer            string          `json:"payer" example:"Maria" default:""`                   // Who pays
	TotalValue       decimal.Decimal `json:"totalValue" example:"600.00"`                        // Total value to receive
	DueDate          time.Time       `json:"dueDate" example:"2025-02-05T00:00:00Z"`             // Date of the first installment
	InstallmentCount int             `json:"installmentCount" example:"6"`                       // Number of installments
	CategoryID       *uuid.UUID      `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
}

func (editable ParceledIncomeEditable) model(userID uuid.UUID) models.ParceledIncome {
	return models.ParceledIncome{
		UserID:           userID,
		Description:      editable.Description,
		Payer:            editable.Payer,
		TotalValue:       editable.TotalValue,
		DueDate:          editable.DueDate,
		InstallmentCount: editable.InstallmentCount,
		CategoryID:       editable.CategoryID,
	}
}

type ParceledIncomeLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/parceled-incomes/61b7a14e-0cc5-4aef-8da7-c02f31a0a1c2"`                      // The parceled income itself
	Installments string `json:"installments" example:"https://example.com/api/v1/parceled-incomes/61b7a14e-0cc5-4aef-8da7-c02f31a0a1c2/installments"` // Installments of the parceled income
}

type ParceledIncome struct {
	models.DefaultModel
	ParceledIncomeEditable

	// These fields are derived from the installments
	SettledValue   decimal.Decimal         `json:"settledValue" example:"200.00"`   // Amount already received
	RemainingValue decimal.Decimal         `json:"remainingValue" example:"400.00"` // totalValue - settledValue
	SettledCount   int                     `json:"settledCount" example:"2"`        // Number of received installments
	Status         models.ObligationStatus `json:"status" example:"pendente"`       // pendente, vencida or quitada

	Links ParceledIncomeLinks `json:"links"`
}

func newParceledIncome(c *gin.Context, model models.ParceledIncome) ParceledIncome {
	url := requestURL(c)

	return ParceledIncome{
		DefaultModel: model.DefaultModel,
		ParceledIncomeEditable: ParceledIncomeEditable{
			Description:      model.Description,
			Payer:            model.Payer,
			TotalValue:       model.TotalValue,
			DueDate:          model.DueDate,
			InstallmentCount: model.InstallmentCount,
			CategoryID:       model.CategoryID,
		},
		SettledValue:   model.SettledValue,
		RemainingValue: model.RemainingValue,
		SettledCount:   model.SettledCount,
		Status:         model.Status,
		Links: ParceledIncomeLinks{
			Self:         fmt.Sprintf("%s/v1/parceled-incomes/%s", url, model.ID),
			Installments: fmt.Sprintf("%s/v1/parceled-incomes/%s/installments", url, model.ID),
		},
	}
}

type ParceledIncomeListResponse struct {
	Data       []ParceledIncome `json:"data"`                                                          // List of ParceledIncomes
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}

type ParceledIncomeResponse struct {
	Data  *ParceledIncome `json:"data"`                                                          // Data for the ParceledIncome
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ParceledIncomeQueryFilter struct {
	Payer         string `form:"payer" filterField:"false"`         // By payer
	Status        string `form:"status"`                            // By status
	Category      string `form:"category" filterField:"false"`      // By category ID
	Search        string `form:"search" filterField:"false"`        // By string in description and payer
	SortBy        string `form:"sortBy" filterField:"false"`        // Sort by this field
	SortDirection string `form:"sortDirection" filterField:"false"` // asc, desc or none
	Offset        uint   `form:"offset" filterField:"false"`        // The offset of the first ParceledIncome returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`         // Maximum number of ParceledIncomes to return. Defaults to 50.
}

func (f ParceledIncomeQueryFilter) model() models.ParceledIncome {
	return models.ParceledIncome{
		Status: models.ObligationStatus(f.Status),
	}
}

// IncomeInstallment is the API representation of one installment.
type IncomeInstallment struct {
	models.DefaultModel
	ParceledIncomeID uuid.UUID                `json:"parceledIncomeId" example:"61b7a14e-0cc5-4aef-8da7-c02f31a0a1c2"`
	Number           int                      `json:"number" example:"2"`
	Date             time.Time                `json:"date" example:"2025-03-05T00:00:00Z"`
	Amount           decimal.Decimal          `json:"amount" example:"100.00"`
	Status           models.InstallmentStatus `json:"status" example:"pendente"`
	Links            IncomeInstallmentLinks   `json:"links"`
}

type IncomeInstallmentLinks struct {
	Self           string `json:"self" example:"https://example.com/api/v1/income-installments/0f91b62a-4d5b-4e06-9be1-9ef2b2b2dd8e"`       // The installment itself
	ParceledIncome string `json:"parceledIncome" example:"https://example.com/api/v1/parceled-incomes/61b7a14e-0cc5-4aef-8da7-c02f31a0a1c2"` // The owning parceled income
}

func newIncomeInstallment(c *gin.Context, model models.IncomeInstallment) IncomeInstallment {
	url := requestURL(c)

	return IncomeInstallment{
		DefaultModel:     model.DefaultModel,
		ParceledIncomeID: model.ParceledIncomeID,
		Number:           model.Number,
		Date:             model.Date,
		Amount:           model.Amount,
		Status:           model.Status,
		Links: IncomeInstallmentLinks{
			Self:           fmt.Sprintf("%s/v1/income-installments/%s", url, model.ID),
			ParceledIncome: fmt.Sprintf("%s/v1/parceled-incomes/%s", url, model.ParceledIncomeID),
		},
	}
}

type IncomeInstallmentListResponse struct {
	Data  []IncomeInstallment `json:"data"`                                                          // List of installments
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// IncomeInstallmentStatusResponse is returned by the receive and
// unreceive operations. It carries the updated installment together
// with the recalculated parent.
type IncomeInstallmentStatusResponse struct {
	Data           *IncomeInstallment `json:"data"`           // The updated installment
	ParceledIncome *ParceledIncome    `json:"parceledIncome"` // The recalculated parent
	Error          *string            `json:"error"`          // The error, if any occurred
}
