package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

func (suite *TestSuiteStandard) TestTransactionTypeValidation() {
	user := suite.createTestUser()

	err := models.DB.Create(&models.Transaction{
		UserID: user.ID,
		Type:   "transferencia",
		Amount: decimal.NewFromInt(10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestMonthlyBalance() {
	t := suite.T()
	user := suite.createTestUser()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 1, 0)

	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Type:   models.TransactionReceita,
		Amount: decimal.NewFromInt(3000),
		Date:   from.AddDate(0, 0, 4),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Type:   models.TransactionDespesa,
		Amount: decimal.NewFromFloat(1234.56),
		Date:   from.AddDate(0, 0, 10),
	})

	// Outside the month, must not count
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Type:   models.TransactionReceita,
		Amount: decimal.NewFromInt(500),
		Date:   until,
	})

	// Another user, must not count
	other := suite.createTestUser()
	_ = suite.createTestTransaction(models.Transaction{
		UserID: other.ID,
		Type:   models.TransactionReceita,
		Amount: decimal.NewFromInt(99),
		Date:   from.AddDate(0, 0, 4),
	})

	income, expense, err := models.MonthlyBalance(models.DB, user.ID, from, until)
	require.Nil(t, err)

	assert.True(t, income.Equal(decimal.NewFromInt(3000)), "income is %s", income)
	assert.True(t, expense.Equal(decimal.NewFromFloat(1234.56)), "expense is %s", expense)
}

func (suite *TestSuiteStandard) TestMonthlyBalanceEmpty() {
	user := suite.createTestUser()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	income, expense, err := models.MonthlyBalance(models.DB, user.ID, from, from.AddDate(0, 1, 0))

	require.Nil(suite.T(), err)
	assert.True(suite.T(), income.IsZero())
	assert.True(suite.T(), expense.IsZero())
}
