package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/vchoerlle/zelofinanceiro-sub001/internal/controllers/v1"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/test"
)

func (suite *TestSuiteStandard) TestGetExport() {
	t := suite.T()

	category := suite.createTestCategory(v1.CategoryEditable{Name: "Transporte"})
	_ = suite.createTestExpense(v1.ExpenseEditable{Description: "Uber", CategoryID: &category.ID})
	_ = suite.createTestDebt(v1.DebtEditable{TotalValue: decimal.NewFromInt(100), InstallmentCount: 2})
	_ = suite.createTestGoal(v1.GoalEditable{Name: "Viagem"})
	_ = suite.createTestVehicle(v1.VehicleEditable{Name: "Carro"})

	// Another user's records must not leak into the dump
	_, otherHeaders := test.CreateUser(t)
	otherRecorder := test.Request(t, http.MethodPost, "/v1/goals", []v1.GoalEditable{
		{Name: "Outra meta", TargetValue: decimal.NewFromInt(100)},
	}, otherHeaders)
	test.AssertHTTPStatus(t, &otherRecorder, http.StatusCreated)

	recorder := test.Request(t, http.MethodGet, "/v1/export", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "attachment")

	var response v1.ExportResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)

	assert.Len(t, response.Data.Categories, 1)
	assert.Len(t, response.Data.Expenses, 1)
	assert.Len(t, response.Data.Debts, 1)
	assert.Len(t, response.Data.Goals, 1)
	assert.Len(t, response.Data.Vehicles, 1)
	assert.Empty(t, response.Data.Transactions)
}

func (suite *TestSuiteStandard) TestCleanup() {
	t := suite.T()

	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Transporte"})
	_ = suite.createTestGoal(v1.GoalEditable{Name: "Viagem"})

	// The confirmation parameter is required
	recorder := test.Request(t, http.MethodDelete, "/v1?confirm=yes-please", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

	recorder = test.Request(t, http.MethodDelete, "/v1?confirm=yes-please-delete-everything", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	// Everything is gone, the account survives
	recorder = test.Request(t, http.MethodGet, "/v1/categories", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var categories v1.CategoryListResponse
	test.DecodeResponse(t, &recorder, &categories)
	assert.Empty(t, categories.Data)

	recorder = test.Request(t, http.MethodGet, "/v1/me", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)
}
