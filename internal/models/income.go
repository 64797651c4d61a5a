package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is a single receipt in the ledger.
type Income struct {
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

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)

	if i.Status == "" {
		i.Status = InstallmentPendente
	}

	if i.Date.IsZero() {
		i.Date = time.Now().In(time.UTC)
	} else {
		i.Date = i.Date.In(time.UTC)
	}

	return nil
}

func (i *Income) AfterSave(_ *gorm.DB) error {
	if !i.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}
