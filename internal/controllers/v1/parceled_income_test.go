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

func (suite *TestSuiteStandard) createTestParceledIncome(editable v1.ParceledIncomeEditable) v1.ParceledIncome {
	if editable.InstallmentCount == 0 {
		editable.InstallmentCount = 1
	}

	if editable.DueDate.IsZero() {
		editable.DueDate = time.Now().AddDate(0, 1, 0)
	}

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/parceled-incomes", editable, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ParceledIncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) incomeInstallments(income v1.ParceledIncome) []v1.IncomeInstallment {
	recorder := test.Request(suite.T(), http.MethodGet, income.Links.Installments, nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.IncomeInstallmentListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response.Data
}

func (suite *TestSuiteStandard) TestCreateParceledIncome() {
	t := suite.T()

	income := suite.createTestParceledIncome(v1.ParceledIncomeEditable{
		Description:      "Venda do notebook",
		Payer:            "João",
		TotalValue:       decimal.NewFromInt(600),
		InstallmentCount: 6,
	})

	assert.Equal(t, models.ObligationPendente, income.Status)
	assert.True(t, income.RemainingValue.Equal(decimal.NewFromInt(600)))

	installments := suite.incomeInstallments(income)
	require.Len(t, installments, 6)
	assert.True(t, installments[0].Amount.Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestReceiveAndUnreceiveInstallment() {
	t := suite.T()

	income := suite.createTestParceledIncome(v1.ParceledIncomeEditable{
		TotalValue:       decimal.NewFromInt(300),
		InstallmentCount: 3,
	})
	installments := suite.incomeInstallments(income)
	require.Len(t, installments, 3)

	recorder := test.Request(t, http.MethodPatch, fmt.Sprintf("/v1/income-installments/%s/receive", installments[0].ID), nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.IncomeInstallmentStatusResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	require.NotNil(t, response.ParceledIncome)

	assert.Equal(t, models.InstallmentRecebida, response.Data.Status)
	assert.Equal(t, 1, response.ParceledIncome.SettledCount)
	assert.True(t, response.ParceledIncome.SettledValue.Equal(decimal.NewFromInt(100)))
	assert.True(t, response.ParceledIncome.RemainingValue.Equal(decimal.NewFromInt(200)))

	// Receiving everything settles the income
	for _, installment := range installments[1:] {
		recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("/v1/income-installments/%s/receive", installment.ID), nil, suite.headers)
		test.AssertHTTPStatus(t, &recorder, http.StatusOK)
	}

	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, models.ObligationQuitada, response.ParceledIncome.Status)

	recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("/v1/income-installments/%s/unreceive", installments[2].ID), nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, models.InstallmentPendente, response.Data.Status)
	assert.Equal(t, models.ObligationPendente, response.ParceledIncome.Status)
}

func (suite *TestSuiteStandard) TestReceiveInstallmentOfOtherUser() {
	t := suite.T()

	income := suite.createTestParceledIncome(v1.ParceledIncomeEditable{
		TotalValue:       decimal.NewFromInt(100),
		InstallmentCount: 2,
	})
	installments := suite.incomeInstallments(income)

	_, otherHeaders := test.CreateUser(t)

	recorder := test.Request(t, http.MethodPatch, fmt.Sprintf("/v1/income-installments/%s/receive", installments[0].ID), nil, otherHeaders)
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetParceledIncomesFilters() {
	t := suite.T()

	_ = suite.createTestParceledIncome(v1.ParceledIncomeEditable{Description: "Venda do notebook", Payer: "João", TotalValue: decimal.NewFromInt(100)})
	_ = suite.createTestParceledIncome(v1.ParceledIncomeEditable{Description: "Freelance", Payer: "Agência", TotalValue: decimal.NewFromInt(100)})

	tests := []struct {
		query string
		count int
	}{
		{"", 2},
		{"?payer=João", 1},
		{"?status=pendente", 2},
		{"?status=quitada", 0},
		{"?search=freela", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(t, http.MethodGet, "/v1/parceled-incomes"+tt.query, nil, suite.headers)
		test.AssertHTTPStatus(t, &recorder, http.StatusOK)

		var response v1.ParceledIncomeListResponse
		test.DecodeResponse(t, &recorder, &response)
		assert.Len(t, response.Data, tt.count, "wrong number of parceled incomes for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestDeleteParceledIncome() {
	t := suite.T()

	income := suite.createTestParceledIncome(v1.ParceledIncomeEditable{
		TotalValue:       decimal.NewFromInt(100),
		InstallmentCount: 2,
	})

	recorder := test.Request(t, http.MethodDelete, income.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	recorder = test.Request(t, http.MethodGet, income.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}
