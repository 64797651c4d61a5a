package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// ImportRuleEditable represents all user configurable parameters
type ImportRuleEditable struct {
	Priority   int       `json:"priority" example:"10"`              // Higher priority rules win
	Pattern    string    `json:"pattern" example:"uber*" default:""` // Glob pattern matched against the description, case-insensitive
	CategoryID uuid.UUID `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
}

func (editable ImportRuleEditable) model(userID uuid.UUID) models.ImportRule {
	return models.ImportRule{
		UserID:     userID,
		Priority:   editable.Priority,
		Pattern:    editable.Pattern,
		CategoryID: editable.CategoryID,
	}
}

type ImportRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/import/rules/a5cf4af3-93e8-4b9c-9f0b-e0bd72df81a1"` // The rule itself
}

type ImportRule struct {
	models.DefaultModel
	ImportRuleEditable
	Links ImportRuleLinks `json:"links"`
}

func newImportRule(c *gin.Context, model models.ImportRule) ImportRule {
	url := requestURL(c)

	return ImportRule{
		DefaultModel: model.DefaultModel,
		ImportRuleEditable: ImportRuleEditable{
			Priority:   model.Priority,
			Pattern:    model.Pattern,
			CategoryID: model.CategoryID,
		},
		Links: ImportRuleLinks{
			Self: fmt.Sprintf("%s/v1/import/rules/%s", url, model.ID),
		},
	}
}

type ImportRuleListResponse struct {
	Data  []ImportRule `json:"data"`                                                          // List of ImportRules
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ImportRuleResponse struct {
	Data  *ImportRule `json:"data"`                                                          // Data for the ImportRule
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// ImportAnalysis is one parsed statement row awaiting confirmation.
type ImportAnalysis struct {
	models.DefaultModel
	Source      string                 `json:"source" example:"extrato-janeiro.pdf"`
	Description string                 `json:"description" example:"UBER *TRIP"`
	Amount      decimal.Decimal        `json:"amount" example:"24.90"`
	Date        time.Time              `json:"date" example:"2025-01-14T00:00:00Z"`
	Type        models.TransactionType `json:"type" example:"despesa"`
	CategoryID  *uuid.UUID             `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Confirmed   bool                   `json:"confirmed" example:"false"`
}

func newImportAnalysis(model models.ImportAnalysis) ImportAnalysis {
	return ImportAnalysis{
		DefaultModel: model.DefaultModel,
		Source:       model.Source,
		Description:  model.Description,
		Amount:       model.Amount,
		Date:         model.Date,
		Type:         model.Type,
		CategoryID:   model.CategoryID,
		Confirmed:    model.Confirmed,
	}
}

type ImportAnalysisListResponse struct {
	Data  []ImportAnalysis `json:"data"`  // List of analysis rows
	Error *string          `json:"error"` // The error, if any occurred
}

// ImportConfirmRequest selects analysis rows to turn into transactions.
// A category can be overridden per row.
type ImportConfirmRequest struct {
	Rows []ImportConfirmRow `json:"rows"`
}

type ImportConfirmRow struct {
	ID         uuid.UUID  `json:"id" example:"bfc8e0bd-2de7-4bb0-8f3f-5d9b3bb9f8d0"`
	CategoryID *uuid.UUID `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
}

// ImportConfirmResponse lists the transactions created from the
// confirmed rows.
type ImportConfirmResponse struct {
	Data  []Transaction `json:"data"`  // The created transactions
	Error *string       `json:"error"` // The error, if any occurred
}
