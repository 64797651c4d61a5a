package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

func (suite *TestSuiteStandard) TestImportRuleMatches() {
	tests := []struct {
		pattern     string
		description string
		want        bool
	}{
		{"*uber*", "UBER *TRIP SAO PAULO", true},
		{"*UBER*", "uber trip", true},
		{"ifood*", "IFOOD RESTAURANTE", true},
		{"ifood*", "PAG IFOOD", false},
		{"mercado livre", "Mercado Livre", true},
		{"*", "anything at all", true},
		{"netflix", "NETFLIX.COM", false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.pattern, func(t *testing.T) {
			rule := models.ImportRule{Pattern: tt.pattern}
			assert.Equal(t, tt.want, rule.Matches(tt.description))
		})
	}
}

func (suite *TestSuiteStandard) TestImportRuleNeedsCategory() {
	user := suite.createTestUser()

	rule := models.ImportRule{
		UserID:  user.ID,
		Pattern: "*uber*",
	}

	err := models.DB.Create(&rule).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
