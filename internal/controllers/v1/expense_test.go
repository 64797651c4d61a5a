package v1_test

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/vchoerlle/zelofinanceiro-sub001/internal/controllers/v1"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/test"
)

func (suite *TestSuiteStandard) createTestExpense(editable v1.ExpenseEditable) v1.Expense {
	if editable.Amount.IsZero() {
		editable.Amount = decimal.NewFromInt(10)
	}

	if editable.Date.IsZero() {
		editable.Date = time.Now()
	}

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", []v1.ExpenseEditable{editable}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestCreateExpensesPartialError() {
	t := suite.T()

	recorder := test.Request(t, http.MethodPost, "/v1/expenses", []v1.ExpenseEditable{
		{Description: "Supermercado", Amount: decimal.NewFromFloat(312.45), Date: time.Now()},
		{Description: "Broken", Amount: decimal.NewFromInt(-5), Date: time.Now()},
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(t, &recorder, &response)
	require.Len(t, response.Data, 2)

	assert.NotNil(t, response.Data[0].Data)
	assert.NotNil(t, response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestGetExpensesFilters() {
	t := suite.T()

	january := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	february := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	_ = suite.createTestExpense(v1.ExpenseEditable{Description: "Supermercado", Date: january, Status: models.InstallmentPago})
	_ = suite.createTestExpense(v1.ExpenseEditable{Description: "Farmácia", Date: february})

	tests := []struct {
		query string
		count int
	}{
		{"", 2},
		{"?status=pago", 1},
		{"?status=pendente", 1},
		{"?from=2026-02-01", 1},
		{"?until=2026-02-01", 1},
		{"?search=farm", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(t, http.MethodGet, "/v1/expenses"+tt.query, nil, suite.headers)
		test.AssertHTTPStatus(t, &recorder, http.StatusOK)

		var response v1.ExpenseListResponse
		test.DecodeResponse(t, &recorder, &response)
		assert.Len(t, response.Data, tt.count, "wrong number of expenses for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	t := suite.T()

	expense := suite.createTestExpense(v1.ExpenseEditable{Description: "Supermercado"})

	recorder := test.Request(t, http.MethodPatch, expense.Links.Self, map[string]any{
		"status": "pago",
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, models.InstallmentPago, response.Data.Status)
	assert.Equal(t, "Supermercado", response.Data.Description)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	t := suite.T()

	expense := suite.createTestExpense(v1.ExpenseEditable{Description: "Supermercado"})

	recorder := test.Request(t, http.MethodDelete, expense.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	recorder = test.Request(t, http.MethodGet, expense.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}
