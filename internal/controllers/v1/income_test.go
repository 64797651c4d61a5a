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

func (suite *TestSuiteStandard) createTestIncome(editable v1.IncomeEditable) v1.Income {
	if editable.Amount.IsZero() {
		editable.Amount = decimal.NewFromInt(100)
	}

	if editable.Date.IsZero() {
		editable.Date = time.Now()
	}

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/incomes", []v1.IncomeEditable{editable}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.IncomeCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestCreateIncomeInvalidAmount() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/incomes", []v1.IncomeEditable{
		{Description: "Broken", Amount: decimal.NewFromInt(-100), Date: time.Now()},
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetIncomesFilters() {
	t := suite.T()

	_ = suite.createTestIncome(v1.IncomeEditable{Description: "Salário", Amount: decimal.NewFromInt(4500), Status: models.InstallmentRecebida})
	_ = suite.createTestIncome(v1.IncomeEditable{Description: "Freelance", Amount: decimal.NewFromInt(800)})

	tests := []struct {
		query string
		count int
	}{
		{"", 2},
		{"?status=recebida", 1},
		{"?status=pendente", 1},
		{"?search=sal", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(t, http.MethodGet, "/v1/incomes"+tt.query, nil, suite.headers)
		test.AssertHTTPStatus(t, &recorder, http.StatusOK)

		var response v1.IncomeListResponse
		test.DecodeResponse(t, &recorder, &response)
		assert.Len(t, response.Data, tt.count, "wrong number of incomes for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestUpdateIncome() {
	t := suite.T()

	income := suite.createTestIncome(v1.IncomeEditable{Description: "Salário"})

	recorder := test.Request(t, http.MethodPatch, income.Links.Self, map[string]any{
		"status": "recebida",
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.IncomeResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, models.InstallmentRecebida, response.Data.Status)
	assert.Equal(t, "Salário", response.Data.Description)
}

func (suite *TestSuiteStandard) TestDeleteIncome() {
	t := suite.T()

	income := suite.createTestIncome(v1.IncomeEditable{Description: "Salário"})

	recorder := test.Request(t, http.MethodDelete, income.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	recorder = test.Request(t, http.MethodGet, income.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}
