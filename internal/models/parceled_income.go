package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ParceledIncome is an amount to receive, split into installments.
// It mirrors Debt, with the money flowing in the other direction.
type ParceledIncome struct {
	DefaultModel
	User             User      `json:"-"`
	UserID           uuid.UUID `gorm:"index"`
	Description      string
	Payer            string
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

// IncomeInstallment is one scheduled receipt of a parceled income.
type IncomeInstallment struct {
	DefaultModel
	ParceledIncome   ParceledIncome `json:"-"`
	ParceledIncomeID uuid.UUID      `gorm:"uniqueIndex:income_installment_number"`
	Number           int            `gorm:"uniqueIndex:income_installment_number"`
	Date             time.Time
	Amount           decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Status           InstallmentStatus

	// Set when the installment was materialized into the income ledger
	Income   *Income    `json:"-"`
	IncomeID *uuid.UUID `gorm:"index"`
}

func (p *ParceledIncome) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	if p.InstallmentCount < 1 {
		return ErrInstallmentCountInvalid
	}

	p.derive(time.Now())
	return nil
}

func (p *ParceledIncome) derive(today time.Time) {
	p.RemainingValue = p.TotalValue.Sub(p.SettledValue)
	p.Status = DeriveObligationStatus(p.DueDate, p.InstallmentCount, p.SettledCount, today)
}

func (i *IncomeInstallment) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	if i.Status == "" {
		i.Status = InstallmentPendente
	}

	return tx.First(&ParceledIncome{}, i.ParceledIncomeID).Error
}

// Installments returns the installments of the parceled income, ordered by number.
func (p ParceledIncome) Installments(db *gorm.DB) ([]IncomeInstallment, error) {
	var installments []IncomeInstallment
	err := db.Where(&IncomeInstallment{ParceledIncomeID: p.ID}).Order("number ASC").Find(&installments).Error
	return installments, err
}

// CreateParceledIncomeWithInstallments creates the parceled income together
// with its installment batch in a single transaction.
func CreateParceledIncomeWithInstallments(db *gorm.DB, income *ParceledIncome) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(income).Error; err != nil {
			return err
		}

		amounts := SplitAmount(income.TotalValue, income.InstallmentCount)
		for n, amount := range amounts {
			installment := IncomeInstallment{
				ParceledIncomeID: income.ID,
				Number:           n + 1,
				Date:             income.DueDate.AddDate(0, n, 0),
				Amount:           amount,
				Status:           InstallmentPendente,
			}

			if err := tx.Create(&installment).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteParceledIncome removes the parceled income and all of its
// installments in a single transaction. Incomes created from received
// installments stay in the ledger.
func DeleteParceledIncome(db *gorm.DB, income ParceledIncome) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&IncomeInstallment{ParceledIncomeID: income.ID}).Delete(&IncomeInstallment{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&income).Error
	})
}

// RecalculateParceledIncome recomputes the aggregate fields of a parceled
// income from its installment rows and saves the result. Idempotent.
func RecalculateParceledIncome(db *gorm.DB, id uuid.UUID) (ParceledIncome, error) {
	var income ParceledIncome
	if err := db.First(&income, id).Error; err != nil {
		return ParceledIncome{}, err
	}

	installments, err := income.Installments(db)
	if err != nil {
		return ParceledIncome{}, err
	}

	settled := decimal.Zero
	count := 0
	for _, installment := range installments {
		if installment.Status == InstallmentRecebida {
			settled = settled.Add(installment.Amount)
			count++
		}
	}

	income.SettledValue = settled
	income.SettledCount = count
	income.derive(time.Now())

	err = db.Model(&ParceledIncome{}).Where("id = ?", income.ID).
		Updates(map[string]any{
			"settled_value":   income.SettledValue,
			"settled_count":   income.SettledCount,
			"remaining_value": income.RemainingValue,
			"status":          income.Status,
		}).Error
	if err != nil {
		return ParceledIncome{}, err
	}

	return income, nil
}
