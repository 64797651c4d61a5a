package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockStatus classifies how well stocked a market item is.
type StockStatus string

const (
	StockSemEstoque StockStatus = "sem_estoque"
	StockBaixo      StockStatus = "estoque_baixo"
	StockMedio      StockStatus = "estoque_medio"
	StockAdequado   StockStatus = "estoque_adequado"
)

// lowStockFactor is the fraction of the ideal quantity below which an item
// counts as low on stock.
var lowStockFactor = decimal.NewFromFloat(0.3)

// ClassifyStock derives the stock status from the current and ideal
// quantities.
func ClassifyStock(current, ideal decimal.Decimal) StockStatus {
	if current.LessThanOrEqual(decimal.Zero) {
		return StockSemEstoque
	}

	if ideal.IsPositive() {
		if current.LessThan(ideal.Mul(lowStockFactor)) {
			return StockBaixo
		}

		if current.LessThan(ideal) {
			return StockMedio
		}
	}

	return StockAdequado
}

// MarketItem is one entry of the grocery inventory.
type MarketItem struct {
	DefaultModel
	User            User      `json:"-"`
	UserID          uuid.UUID `gorm:"index"`
	Name            string
	Unit            string // e.g. "kg", "un", "L"
	CurrentQuantity decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	IdealQuantity   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	LastPrice       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category        *Category       `json:"-"`
	CategoryID      *uuid.UUID      `gorm:"index"`
}

func (m *MarketItem) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Unit = strings.TrimSpace(m.Unit)

	return nil
}

// StockStatus classifies the item by its quantities.
func (m MarketItem) StockStatus() StockStatus {
	return ClassifyStock(m.CurrentQuantity, m.IdealQuantity)
}
