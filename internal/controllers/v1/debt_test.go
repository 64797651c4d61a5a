package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/vchoerlle/zelofinanceiro-sub001/internal/controllers/v1"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/test"
)

func (suite *TestSuiteStandard) createTestDebt(editable v1.DebtEditable) v1.Debt {
	if editable.InstallmentCount == 0 {
		editable.InstallmentCount = 1
	}

	if editable.DueDate.IsZero() {
		editable.DueDate = time.Now().AddDate(0, 1, 0)
	}

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/debts", editable, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.DebtResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) debtInstallments(debt v1.Debt) []v1.DebtInstallment {
	recorder := test.Request(suite.T(), http.MethodGet, debt.Links.Installments, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DebtInstallmentListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response.Data
}

func (suite *TestSuiteStandard) TestCreateDebt() {
	t := suite.T()

	debt := suite.createTestDebt(v1.DebtEditable{
		Description:      "Financiamento do carro",
		Creditor:         "Banco XYZ",
		TotalValue:       decimal.NewFromInt(1200),
		InstallmentCount: 12,
	})

	assert.Equal(t, models.ObligationPendente, debt.Status)
	assert.True(t, debt.RemainingValue.Equal(decimal.NewFromInt(1200)))

	installments := suite.debtInstallments(debt)
	require.Len(t, installments, 12)
	assert.True(t, installments[0].Amount.Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestCreateDebtInvalidInstallments() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/debts", v1.DebtEditable{
		TotalValue:       decimal.NewFromInt(100),
		DueDate:          time.Now(),
		InstallmentCount: -1,
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetDebtsFilters() {
	t := suite.T()

	_ = suite.createTestDebt(v1.DebtEditable{Description: "Cartão", Creditor: "Nubank", TotalValue: decimal.NewFromInt(100)})
	_ = suite.createTestDebt(v1.DebtEditable{Description: "Empréstimo", Creditor: "Itaú", TotalValue: decimal.NewFromInt(100)})

	tests := []struct {
		query string
		count int
	}{
		{"", 2},
		{"?creditor=Nubank", 1},
		{"?status=pendente", 2},
		{"?status=quitada", 0},
		{"?search=emprést", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(t, http.MethodGet, "/v1/debts"+tt.query, nil, suite.headers)
		test.AssertHTTPStatus(t, &recorder, http.StatusOK)

		var response v1.DebtListResponse
		test.DecodeResponse(t, &recorder, &response)
		assert.Len(t, response.Data, tt.count, "wrong number of debts for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestPayAndUnpayInstallment() {
	t := suite.T()

	debt := suite.createTestDebt(v1.DebtEditable{
		TotalValue:       decimal.NewFromInt(300),
		InstallmentCount: 3,
	})
	installments := suite.debtInstallments(debt)
	require.Len(t, installments, 3)

	// Pay the first installment
	recorder := test.Request(t, http.MethodPatch, fmt.Sprintf("/v1/debt-installments/%s/pay", installments[0].ID), nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.DebtInstallmentStatusResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	require.NotNil(t, response.Debt)

	assert.Equal(t, models.InstallmentPago, response.Data.Status)
	assert.Equal(t, 1, response.Debt.SettledCount)
	assert.True(t, response.Debt.SettledValue.Equal(decimal.NewFromInt(100)))
	assert.True(t, response.Debt.RemainingValue.Equal(decimal.NewFromInt(200)))

	// Pay the rest, the debt settles
	for _, installment := range installments[1:] {
		recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("/v1/debt-installments/%s/pay", installment.ID), nil, suite.headers)
		test.AssertHTTPStatus(t, &recorder, http.StatusOK)
	}

	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, models.ObligationQuitada, response.Debt.Status)

	// Unpaying one reopens the debt
	recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("/v1/debt-installments/%s/unpay", installments[1].ID), nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, models.InstallmentPendente, response.Data.Status)
	assert.Equal(t, models.ObligationPendente, response.Debt.Status)
	assert.Equal(t, 2, response.Debt.SettledCount)
}

func (suite *TestSuiteStandard) TestPayInstallmentOfOtherUser() {
	t := suite.T()

	debt := suite.createTestDebt(v1.DebtEditable{
		TotalValue:       decimal.NewFromInt(100),
		InstallmentCount: 2,
	})
	installments := suite.debtInstallments(debt)

	_, otherHeaders := test.CreateUser(t)

	recorder := test.Request(t, http.MethodPatch, fmt.Sprintf("/v1/debt-installments/%s/pay", installments[0].ID), nil, otherHeaders)
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateDebtKeepsInstallmentLayout() {
	t := suite.T()

	debt := suite.createTestDebt(v1.DebtEditable{
		Description:      "Cartão",
		TotalValue:       decimal.NewFromInt(100),
		InstallmentCount: 4,
	})

	recorder := test.Request(t, http.MethodPatch, debt.Links.Self, map[string]any{
		"description":      "Cartão de crédito",
		"installmentCount": 10,
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.DebtResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)

	assert.Equal(t, "Cartão de crédito", response.Data.Description)
	assert.Equal(t, 4, response.Data.InstallmentCount, "the installment count is fixed after creation")
	assert.Len(t, suite.debtInstallments(debt), 4)
}

func (suite *TestSuiteStandard) TestDeleteDebt() {
	t := suite.T()

	debt := suite.createTestDebt(v1.DebtEditable{
		TotalValue:       decimal.NewFromInt(100),
		InstallmentCount: 2,
	})

	recorder := test.Request(t, http.MethodDelete, debt.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	recorder = test.Request(t, http.MethodGet, debt.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}
