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

func (suite *TestSuiteStandard) TestSetupUserAccount() {
	t := suite.T()

	recorder := test.Request(t, http.MethodPost, "/v1/rpc/setup-user-account", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.RPCResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.True(t, response.Success)
	assert.Equal(t, "account initialized", response.Message)

	var count int64
	require.Nil(t, models.DB.Model(&models.Category{}).Where("user_id = ?", suite.user.ID).Count(&count).Error)
	assert.Greater(t, count, int64(0))

	// Running it again does not duplicate the categories
	recorder = test.Request(t, http.MethodPost, "/v1/rpc/setup-user-account", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, "account already initialized", response.Message)

	var after int64
	require.Nil(t, models.DB.Model(&models.Category{}).Where("user_id = ?", suite.user.ID).Count(&after).Error)
	assert.Equal(t, count, after)
}

func (suite *TestSuiteStandard) TestDeleteUserAccount() {
	t := suite.T()

	_ = suite.createTestDebt(v1.DebtEditable{TotalValue: decimal.NewFromInt(100), InstallmentCount: 2})

	recorder := test.Request(t, http.MethodPost, "/v1/rpc/delete-user-account", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	// The session is now useless
	recorder = test.Request(t, http.MethodGet, "/v1/me", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)

	err := models.DB.First(&models.User{}, suite.user.ID).Error
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCheckEmailExists() {
	t := suite.T()

	recorder := test.Request(t, http.MethodPost, "/v1/rpc/check-email-exists", v1.CheckEmailRequest{Email: suite.user.Email})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.CheckEmailResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.True(t, response.Exists)

	recorder = test.Request(t, http.MethodPost, "/v1/rpc/check-email-exists", v1.CheckEmailRequest{Email: "nobody@example.com"})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	test.DecodeResponse(t, &recorder, &response)
	assert.False(t, response.Exists)

	recorder = test.Request(t, http.MethodPost, "/v1/rpc/check-email-exists", v1.CheckEmailRequest{})
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRunSweep() {
	t := suite.T()

	// An installment whose date has passed without being paid
	debt := suite.createTestDebt(v1.DebtEditable{
		TotalValue:       decimal.NewFromInt(100),
		DueDate:          time.Now().AddDate(0, -1, 0),
		InstallmentCount: 1,
	})

	recorder := test.Request(t, http.MethodPost, "/v1/rpc/run-sweep", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.RPCResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.True(t, response.Success)

	installments := suite.debtInstallments(debt)
	require.Len(t, installments, 1)
	assert.Equal(t, models.InstallmentVencida, installments[0].Status)
}
