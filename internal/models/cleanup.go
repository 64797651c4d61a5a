package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteUserData removes every record that belongs to the user in one
// transaction. When deleteUser is set the account itself goes too.
//
// Children are removed before their parents so that no reference is ever
// dangling, and categories are deleted unscoped to bypass the usage guard.
func DeleteUserData(db *gorm.DB, userID uuid.UUID, deleteUser bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		steps := []func() error{
			func() error {
				return tx.Where("debt_id IN (?)",
					tx.Model(&Debt{}).Select("id").Where("user_id = ?", userID),
				).Delete(&DebtInstallment{}).Error
			},
			func() error {
				return tx.Where("parceled_income_id IN (?)",
					tx.Model(&ParceledIncome{}).Select("id").Where("user_id = ?", userID),
				).Delete(&IncomeInstallment{}).Error
			},
			func() error { return tx.Where("user_id = ?", userID).Delete(&Debt{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&ParceledIncome{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&Income{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&Expense{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&Transaction{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&Goal{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&MarketItem{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&Maintenance{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&Vehicle{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&ImportRule{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&ImportAnalysis{}).Error },
			func() error {
				return tx.Session(&gorm.Session{SkipHooks: true}).
					Where("user_id = ?", userID).Delete(&Category{}).Error
			},
		}

		if deleteUser {
			steps = append(steps, func() error {
				return tx.Where("id = ?", userID).Delete(&User{}).Error
			})
		}

		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}

		return nil
	})
}
