package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

func (suite *TestSuiteStandard) TestDeleteUserData() {
	t := suite.T()
	user := suite.createTestUser()

	category := suite.createTestCategory(models.Category{UserID: user.ID})
	_ = suite.createTestExpense(models.Expense{UserID: user.ID, CategoryID: &category.ID})
	_ = suite.createTestDebt(models.Debt{UserID: user.ID, TotalValue: decimal.NewFromInt(100), InstallmentCount: 3})
	_ = suite.createTestGoal(models.Goal{UserID: user.ID})
	vehicle := suite.createTestVehicle(models.Vehicle{UserID: user.ID})
	_ = suite.createTestMaintenance(models.Maintenance{VehicleID: vehicle.ID, UserID: user.ID})

	// Records of another user must survive
	other := suite.createTestUser()
	otherCategory := suite.createTestCategory(models.Category{UserID: other.ID})

	require.Nil(t, models.DeleteUserData(models.DB, user.ID, false))

	counts := map[string]any{
		"categories":        &models.Category{},
		"expenses":          &models.Expense{},
		"debts":             &models.Debt{},
		"goals":             &models.Goal{},
		"vehicles":          &models.Vehicle{},
		"maintenances":      &models.Maintenance{},
		"debt installments": &models.DebtInstallment{},
	}

	for name, model := range counts {
		var count int64
		if name == "debt installments" {
			require.Nil(t, models.DB.Model(model).Count(&count).Error)
		} else {
			require.Nil(t, models.DB.Model(model).Where("user_id = ?", user.ID).Count(&count).Error)
		}
		assert.Equal(t, int64(0), count, "%s were not deleted", name)
	}

	// The user stays when deleteUser is false, the category guard was
	// bypassed and the other user is untouched
	require.Nil(t, models.DB.First(&models.User{}, user.ID).Error)
	require.Nil(t, models.DB.First(&models.Category{}, otherCategory.ID).Error)
}

func (suite *TestSuiteStandard) TestDeleteUserDataWithAccount() {
	t := suite.T()
	user := suite.createTestUser()

	require.Nil(t, models.DeleteUserData(models.DB, user.ID, true))

	err := models.DB.First(&models.User{}, user.ID).Error
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}
