package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// DebtEditable represents all user configurable parameters
type DebtEditable struct {
	Description      string          `json:"description" example:"Financiamento do carro" default:""` // What the debt is about
	Creditor         string          `json:"creditor" example:"Banco XYZ" default:""`                 // Who is owed
	TotalValue       decimal.Decimal `json:"totalValue" example:"1200.00"`                            // Total value of the debt
	DueDate          time.Time       `json:"dueDate" example:"2025-01-10T00:00:00Z"`                  // Due date of the first installment
	InstallmentCount int             `json:"installmentCount" example:"12"`                           // Number of installments
	CategoryID       *uuid.UUID      `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
}

func (editable DebtEditable) model(userID uuid.UUID) models.Debt {
	return models.Debt{
		UserID:           userID,
		Description:      editable.Description,
		Creditor:         editable.Creditor,
		TotalValue:       editable.TotalValue,
		DueDate:          editable.DueDate,
		InstallmentCount: editable.InstallmentCount,
		CategoryID:       editable.CategoryID,
	}
}

type DebtLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/debts/d1b4a9d2-9dfe-4b43-bbde-3a4a0b90f01b"`                      // The debt itself
	Installments string `json:"installments" example:"https://example.com/api/v1/debts/d1b4a9d2-9dfe-4b43-bbde-3a4a0b90f01b/installments"` // Installments of the debt
}

type Debt struct {
	models.DefaultModel
	DebtEditable

	// These fields are derived from the installments
	SettledValue   decimal.Decimal         `json:"settledValue" example:"300.00"`   // Amount already paid
	RemainingValue decimal.Decimal         `json:"remainingValue" example:"900.00"` // totalValue - settledValue
	SettledCount   int                     `json:"settledCount" example:"3"`        // Number of paid installments
	Status         models.ObligationStatus `json:"status" example:"pendente"`       // pendente, vencida or quitada

	Links DebtLinks `json:"links"`
}

func newDebt(c *gin.Context, model models.Debt) Debt {
	url := requestURL(c)

	return Debt{
		DefaultModel: model.DefaultModel,
		DebtEditable: DebtEditable{
			Description:      model.Description,
			Creditor:         model.Creditor,
			TotalValue:       model.TotalValue,
			DueDate:          model.DueDate,
			InstallmentCount: model.InstallmentCount,
			CategoryID:       model.CategoryID,
		},
		SettledValue:   model.SettledValue,
		RemainingValue: model.RemainingValue,
		SettledCount:   model.SettledCount,
		Status:         model.Status,
		Links: DebtLinks{
			Self:         fmt.Sprintf("%s/v1/debts/%s", url, model.ID),
			Installments: fmt.Sprintf("%s/v1/debts/%s/installments", url, model.ID),
		},
	}
}

type DebtListResponse struct {
	Data       []Debt      `json:"data"`                                                          // List of Debts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DebtResponse struct {
	Data  *Debt   `json:"data"`                                                          // Data for the Debt
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DebtQueryFilter struct {
	Creditor      string `form:"creditor" filterField:"false"`      // By creditor
	Status        string `form:"status"`                            // By status
	Category      string `form:"category" filterField:"false"`      // By category ID
	Search        string `form:"search" filterField:"false"`        // By string in description and creditor
	SortBy        string `form:"sortBy" filterField:"false"`        // Sort by this field
	SortDirection string `form:"sortDirection" filterField:"false"` // asc, desc or none
	Offset        uint   `form:"offset" filterField:"false"`        // The offset of the first Debt returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`         // Maximum number of Debts to return. Defaults to 50.
}

func (f DebtQueryFilter) model() models.Debt {
	return models.Debt{
		Status: models.ObligationStatus(f.Status),
	}
}

// DebtInstallment is the API representation of one installment.
type DebtInstallment struct {
	models.DefaultModel
	DebtID uuid.UUID                `json:"debtId" example:"d1b4a9d2-9dfe-4b43-bbde-3a4a0b90f01b"`
	Number int                      `json:"number" example:"3"`
	Date   time.Time                `json:"date" example:"2025-03-10T00:00:00Z"`
	Amount decimal.Decimal          `json:"amount" example:"100.00"`
	Status models.InstallmentStatus `json:"status" example:"pendente"`
	Links  DebtInstallmentLinks     `json:"links"`
}

type DebtInstallmentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/debt-installments/9dcc4ab4-a52c-4b3f-9472-d4b8a2bd29f4"` // The installment itself
	Debt string `json:"debt" example:"https://example.com/api/v1/debts/d1b4a9d2-9dfe-4b43-bbde-3a4a0b90f01b"`             // The owning debt
}

func newDebtInstallment(c *gin.Context, model models.DebtInstallment) DebtInstallment {
	url := requestURL(c)

	return DebtInstallment{
		DefaultModel: model.DefaultModel,
		DebtID:       model.DebtID,
		Number:       model.Number,
		Date:         model.Date,
		Amount:       model.Amount,
		Status:       model.Status,
		Links: DebtInstallmentLinks{
			Self: fmt.Sprintf("%s/v1/debt-installments/%s", url, model.ID),
			Debt: fmt.Sprintf("%s/v1/debts/%s", url, model.DebtID),
		},
	}
}

type DebtInstallmentListResponse struct {
	Data  []DebtInstallment `json:"data"`                                                          // List of installments
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// DebtInstallmentStatusResponse is returned by the pay and unpay
// operations. It carries the updated installment together with the
// recalculated parent, so the calling view can refresh both.
type DebtInstallmentStatusResponse struct {
	Data  *DebtInstallment `json:"data"`  // The updated installment
	Debt  *Debt            `json:"debt"`  // The recalculated parent debt
	Error *string          `json:"error"` // The error, if any occurred
}
