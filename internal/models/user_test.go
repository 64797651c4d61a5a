package models_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

func (suite *TestSuiteStandard) TestUserPassword() {
	t := suite.T()

	user := models.User{}
	require.Nil(t, user.SetPassword("hunter22!"))

	assert.NotEqual(t, "hunter22!", user.PasswordHash)
	assert.True(t, user.CheckPassword("hunter22!"))
	assert.False(t, user.CheckPassword("hunter23!"))
	assert.False(t, models.User{}.CheckPassword("hunter22!"))
}

func (suite *TestSuiteStandard) TestUserEmailNormalization() {
	user := models.User{
		Email: " Jane.Doe@Example.com ",
		Name:  " Jane ",
	}
	require.Nil(suite.T(), user.SetPassword("extremely-secret"))
	require.Nil(suite.T(), models.DB.Create(&user).Error)

	assert.Equal(suite.T(), "jane.doe@example.com", user.Email)
	assert.Equal(suite.T(), "Jane", user.Name)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	user := suite.createTestUser()

	duplicate := models.User{Email: user.Email}
	require.Nil(suite.T(), duplicate.SetPassword("extremely-secret"))

	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrEmailNotUnique)
}
