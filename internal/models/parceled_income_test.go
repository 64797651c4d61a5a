package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

func (suite *TestSuiteStandard) TestParceledIncomeCreateWithInstallments() {
	t := suite.T()
	user := suite.createTestUser()

	income := suite.createTestParceledIncome(models.ParceledIncome{
		UserID:           user.ID,
		Description:      "Venda do notebook",
		Payer:            "João",
		TotalValue:       decimal.NewFromInt(900),
		InstallmentCount: 3,
	})

	assert.Equal(t, models.ObligationPendente, income.Status)

	installments, err := income.Installments(models.DB)
	require.Nil(t, err)
	require.Len(t, installments, 3)

	for n, installment := range installments {
		assert.Equal(t, n+1, installment.Number)
		assert.True(t, installment.Amount.Equal(decimal.NewFromInt(300)))
	}
}

func (suite *TestSuiteStandard) TestRecalculateParceledIncome() {
	t := suite.T()
	user := suite.createTestUser()

	income := suite.createTestParceledIncome(models.ParceledIncome{
		UserID:           user.ID,
		TotalValue:       decimal.NewFromInt(600),
		DueDate:          time.Now().AddDate(0, 1, 0),
		InstallmentCount: 2,
	})

	installments, err := income.Installments(models.DB)
	require.Nil(t, err)

	// Only recebida counts as settled, pago is a debt concept
	require.Nil(t, models.DB.Model(&installments[0]).Update("status", models.InstallmentPago).Error)

	income, err = models.RecalculateParceledIncome(models.DB, income.ID)
	require.Nil(t, err)
	assert.Equal(t, 0, income.SettledCount)

	require.Nil(t, models.DB.Model(&installments[0]).Update("status", models.InstallmentRecebida).Error)
	require.Nil(t, models.DB.Model(&installments[1]).Update("status", models.InstallmentRecebida).Error)

	income, err = models.RecalculateParceledIncome(models.DB, income.ID)
	require.Nil(t, err)
	assert.Equal(t, 2, income.SettledCount)
	assert.True(t, income.RemainingValue.IsZero())
	assert.Equal(t, models.ObligationQuitada, income.Status)
}

func (suite *TestSuiteStandard) TestDeleteParceledIncomeCascades() {
	t := suite.T()
	user := suite.createTestUser()

	income := suite.createTestParceledIncome(models.ParceledIncome{
		UserID:           user.ID,
		TotalValue:       decimal.NewFromInt(100),
		InstallmentCount: 2,
	})

	require.Nil(t, models.DeleteParceledIncome(models.DB, income))

	var count int64
	require.Nil(t, models.DB.Model(&models.IncomeInstallment{}).Where("parceled_income_id = ?", income.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
