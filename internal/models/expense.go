package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single payment in the ledger.
type Expense struct {
	DefaultModel
	User        User      `json:"-"`
	UserID      uuid.UUID `gorm:"index"`
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        time.Time
	Status      InstallmentStatus
	Category    *Category  `json:"-"`
	CategoryID  *uuid.UUID `gorm:"index"`
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.Status == "" {
		e.Status = InstallmentPendente
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}
