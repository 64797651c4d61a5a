package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

func (suite *TestSuiteStandard) TestClassifyStock() {
	tests := []struct {
		name    string
		current float64
		ideal   float64
		want    models.StockStatus
	}{
		{"empty", 0, 10, models.StockSemEstoque},
		{"negative counts as empty", -1, 10, models.StockSemEstoque},
		{"below 30 percent", 2.9, 10, models.StockBaixo},
		{"exactly 30 percent", 3, 10, models.StockMedio},
		{"between 30 percent and ideal", 7, 10, models.StockMedio},
		{"just below ideal", 9.99, 10, models.StockMedio},
		{"exactly ideal", 10, 10, models.StockAdequado},
		{"above ideal", 15, 10, models.StockAdequado},
		{"no ideal set", 1, 0, models.StockAdequado},
		{"no ideal and empty", 0, 0, models.StockSemEstoque},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			status := models.ClassifyStock(decimal.NewFromFloat(tt.current), decimal.NewFromFloat(tt.ideal))
			assert.Equal(t, tt.want, status)
		})
	}
}

func (suite *TestSuiteStandard) TestMarketItemStockStatus() {
	user := suite.createTestUser()

	item := suite.createTestMarketItem(models.MarketItem{
		UserID:          user.ID,
		Name:            " Arroz ",
		Unit:            "kg",
		CurrentQuantity: decimal.NewFromInt(1),
		IdealQuantity:   decimal.NewFromInt(5),
	})

	assert.Equal(suite.T(), "Arroz", item.Name)
	assert.Equal(suite.T(), models.StockBaixo, item.StockStatus())
}
