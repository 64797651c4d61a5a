package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestGoalAchievedDerivation() {
	t := suite.T()
	user := suite.createTestUser()

	goal := suite.createTestGoal(models.Goal{
		UserID:      user.ID,
		TargetValue: decimal.NewFromInt(1000),
		SavedValue:  decimal.NewFromInt(400),
	})
	assert.False(t, goal.Achieved)

	goal.SavedValue = decimal.NewFromInt(1000)
	require.Nil(t, models.DB.Save(&goal).Error)
	assert.True(t, goal.Achieved)

	goal.SavedValue = decimal.NewFromInt(999)
	require.Nil(t, models.DB.Save(&goal).Error)
	assert.False(t, goal.Achieved)
}

func (suite *TestSuiteStandard) TestGoalTargetMustBePositive() {
	tests := []struct {
		target decimal.Decimal
		err    error
	}{
		{decimal.NewFromFloat(-10), models.ErrAmountNotPositive},
		{decimal.Zero, models.ErrAmountNotPositive},
		{decimal.NewFromFloat(750), nil},
	}

	for _, tt := range tests {
		g := models.Goal{
			TargetValue: tt.target,
		}

		err := g.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}

func (suite *TestSuiteStandard) TestGoalProgress() {
	tests := []struct {
		name   string
		target float64
		saved  float64
		want   string
	}{
		{"halfway", 1000, 500, "0.5"},
		{"zero", 1000, 0, "0"},
		{"capped at 1", 1000, 1500, "1"},
		{"no target", 0, 100, "0"},
	}

	for _, tt := range tests {
		g := models.Goal{
			TargetValue: decimal.NewFromFloat(tt.target),
			SavedValue:  decimal.NewFromFloat(tt.saved),
		}

		assert.True(suite.T(), g.Progress().Equal(decimal.RequireFromString(tt.want)), "%s: progress is %s, should be %s", tt.name, g.Progress(), tt.want)
	}
}

func (suite *TestSuiteStandard) TestGoalNameUniquePerUser() {
	user := suite.createTestUser()
	_ = suite.createTestGoal(models.Goal{UserID: user.ID, Name: "Reserva"})

	err := models.DB.Create(&models.Goal{
		UserID:      user.ID,
		Name:        "Reserva",
		TargetValue: decimal.NewFromInt(100),
	}).Error
	assert.NotNil(suite.T(), err)

	// Another user may reuse the name
	other := suite.createTestUser()
	_ = suite.createTestGoal(models.Goal{UserID: other.ID, Name: "Reserva"})
}
