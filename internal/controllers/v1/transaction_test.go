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

func (suite *TestSuiteStandard) createTestTransaction(editable v1.TransactionEditable) v1.Transaction {
	if editable.Type == "" {
		editable.Type = models.TransactionDespesa
	}

	if editable.Date.IsZero() {
		editable.Date = time.Now()
	}

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", []v1.TransactionEditable{editable}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestCreateTransactions() {
	t := suite.T()

	recorder := test.Request(t, http.MethodPost, "/v1/transactions", []v1.TransactionEditable{
		{Type: models.TransactionReceita, Description: "Salário", Amount: decimal.NewFromInt(4500), Date: time.Now()},
		{Type: "transferência", Description: "Broken", Amount: decimal.NewFromInt(10), Date: time.Now()},
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(t, &recorder, &response)
	require.Len(t, response.Data, 2)

	assert.NotNil(t, response.Data[0].Data)
	require.NotNil(t, response.Data[1].Error)
	assert.Equal(t, models.ErrTransactionTypeInvalid.Error(), *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestGetTransactionsFilters() {
	t := suite.T()

	january := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	february := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	category := suite.createTestCategory(v1.CategoryEditable{Name: "Transporte"})

	_ = suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionReceita, Description: "Salário", Amount: decimal.NewFromInt(4500), Date: january})
	_ = suite.createTestTransaction(v1.TransactionEditable{Description: "Uber", Amount: decimal.NewFromFloat(24.90), Date: january, CategoryID: &category.ID})
	_ = suite.createTestTransaction(v1.TransactionEditable{Description: "Padaria", Amount: decimal.NewFromFloat(18.90), Date: february})

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{"?type=receita", 1},
		{"?type=despesa", 2},
		{"?from=2026-02-01", 1},
		{"?until=2026-02-01", 2},
		{"?from=2026-01-01&until=2026-02-01", 2},
		{"?category=" + category.ID.String(), 1},
		{"?search=padaria", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(t, http.MethodGet, "/v1/transactions"+tt.query, nil, suite.headers)
		test.AssertHTTPStatus(t, &recorder, http.StatusOK)

		var response v1.TransactionListResponse
		test.DecodeResponse(t, &recorder, &response)
		assert.Len(t, response.Data, tt.count, "wrong number of transactions for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	t := suite.T()

	transaction := suite.createTestTransaction(v1.TransactionEditable{Description: "Padaria", Amount: decimal.NewFromFloat(18.90)})

	recorder := test.Request(t, http.MethodPatch, transaction.Links.Self, map[string]any{
		"amount": "21.50",
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.True(t, response.Data.Amount.Equal(decimal.NewFromFloat(21.50)))
	assert.Equal(t, "Padaria", response.Data.Description)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	t := suite.T()

	transaction := suite.createTestTransaction(v1.TransactionEditable{Description: "Padaria", Amount: decimal.NewFromFloat(18.90)})

	recorder := test.Request(t, http.MethodDelete, transaction.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	recorder = test.Request(t, http.MethodGet, transaction.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}
