package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Debt is an obligation to pay, split into installments.
type Debt struct {
	DefaultModel
	User             User      `json:"-"`
	UserID           uuid.UUID `gorm:"index"`
	Description      string
	Creditor         string
	TotalValue       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SettledValue     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	RemainingValue   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDate          time.Time
	InstallmentCount int
	SettledCount     int
	Status           ObligationStatus
	Category         *Category  `json:"-"`
	CategoryID       *uuid.UUID `gorm:"index"`
}

// DebtInstallment is one scheduled payment of a debt.
type DebtInstallment struct {
	DefaultModel
	Debt   Debt      `json:"-"`
	DebtID uuid.UUID `gorm:"uniqueIndex:debt_installment_number"`
	Number int       `gorm:"uniqueIndex:debt_installment_number"`
	Date   time.Time
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Status InstallmentStatus

	// Set when the installment was materialized into the expense ledger
	Expense   *Expense   `json:"-"`
	ExpenseID *uuid.UUID `gorm:"index"`
}

func (d *Debt) BeforeCreate(tx *gorm.DB) error {
	_ = d.DefaultModel.BeforeCreate(tx)

	if d.InstallmentCount < 1 {
		return ErrInstallmentCountInvalid
	}

	d.derive(time.Now())
	return nil
}

// derive recomputes the fields that depend on other fields. The invariant
// remaining = total - settled holds after every call.
func (d *Debt) derive(today time.Time) {
	d.RemainingValue = d.TotalValue.Sub(d.SettledValue)
	d.Status = DeriveObligationStatus(d.DueDate, d.InstallmentCount, d.SettledCount, today)
}

func (i *DebtInstallment) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	if i.Status == "" {
		i.Status = InstallmentPendente
	}

	return tx.First(&Debt{}, i.DebtID).Error
}

// Installments returns the installments of the debt, ordered by number.
func (d Debt) Installments(db *gorm.DB) ([]DebtInstallment, error) {
	var installments []DebtInstallment
	err := db.Where(&DebtInstallment{DebtID: d.ID}).Order("number ASC").Find(&installments).Error
	return installments, err
}

// CreateDebtWithInstallments creates the debt together with its
// installment batch in a single transaction, so that a failure while
// generating installments rolls back the parent as well.
//
// Installment amounts are the total split by SplitAmount; the scheduled
// date of installment n is the due date shifted by n-1 months.
func CreateDebtWithInstallments(db *gorm.DB, debt *Debt) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(debt).Error; err != nil {
			return err
		}

		amounts := SplitAmount(debt.TotalValue, debt.InstallmentCount)
		for n, amount := range amounts {
			installment := DebtInstallment{
				DebtID: debt.ID,
				Number: n + 1,
				Date:   debt.DueDate.AddDate(0, n, 0),
				Amount: amount,
				Status: InstallmentPendente,
			}

			if err := tx.Create(&installment).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteDebt removes the debt and all of its installments in a single
// transaction. Expenses created from paid installments stay in the ledger.
func DeleteDebt(db *gorm.DB, debt Debt) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&DebtInstallment{DebtID: debt.ID}).Delete(&DebtInstallment{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&debt).Error
	})
}

// RecalculateDebt recomputes the aggregate fields of a debt from its
// installment rows and saves the result. It is idempotent, so replayed or
// duplicate recalculation requests are harmless.
func RecalculateDebt(db *gorm.DB, id uuid.UUID) (Debt, error) {
	var debt Debt
	if err := db.First(&debt, id).Error; err != nil {
		return Debt{}, err
	}

	installments, err := debt.Installments(db)
	if err != nil {
		return Debt{}, err
	}

	settled := decimal.Zero
	count := 0
	for _, installment := range installments {
		if installment.Status == InstallmentPago {
			settled = settled.Add(installment.Amount)
			count++
		}
	}

	debt.SettledValue = settled
	debt.SettledCount = count
	debt.derive(time.Now())

	err = db.Model(&Debt{}).Where("id = ?", debt.ID).
		Updates(map[string]any{
			"settled_value":   debt.SettledValue,
			"settled_count":   debt.SettledCount,
			"remaining_value": debt.RemainingValue,
			"status":          debt.Status,
		}).Error
	if err != nil {
		return Debt{}, err
	}

	return debt, nil
}
