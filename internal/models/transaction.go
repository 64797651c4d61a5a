package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType marks the direction of a generic ledger entry.
type TransactionType string

const (
	TransactionReceita TransactionType = "receita"
	TransactionDespesa TransactionType = "despesa"
)

var ErrTransactionTypeInvalid = errors.New("the transaction type must be receita or despesa")

// Transaction is a generic ledger entry, used by views that mix incomes
// and expenses (dashboard, statement import).
type Transaction struct {
	DefaultModel
	User        User      `json:"-"`
	UserID      uuid.UUID `gorm:"index"`
	Type        TransactionType
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        time.Time
	Category    *Category  `json:"-"`
	CategoryID  *uuid.UUID `gorm:"index"`
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	switch t.Type {
	case TransactionReceita, TransactionDespesa:
	default:
		return ErrTransactionTypeInvalid
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// MonthlyBalance sums all transactions of a user in a month, incomes
// positive and expenses negative.
func MonthlyBalance(db *gorm.DB, userID uuid.UUID, from, until time.Time) (income, expense decimal.Decimal, err error) {
	sum := func(t TransactionType) (decimal.Decimal, error) {
		var total decimal.NullDecimal
		err := db.Model(&Transaction{}).
			Where("user_id = ? AND type = ? AND date >= ? AND date < ?", userID, t, from, until).
			Select("SUM(amount)").
			Row().
			Scan(&total)
		if err != nil {
			return decimal.Zero, err
		}
		return total.Decimal, nil
	}

	income, err = sum(TransactionReceita)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	expense, err = sum(TransactionDespesa)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return income, expense, nil
}
