package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target.
type Goal struct {
	DefaultModel
	User        User      `json:"-"`
	UserID      uuid.UUID `gorm:"uniqueIndex:goal_name_user"`
	Name        string    `gorm:"uniqueIndex:goal_name_user"`
	Description string
	TargetValue decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SavedValue  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Deadline    *time.Time
	Achieved    bool
	Category    *Category  `json:"-"`
	CategoryID  *uuid.UUID `gorm:"index"`
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Description = strings.TrimSpace(g.Description)

	g.Achieved = g.SavedValue.GreaterThanOrEqual(g.TargetValue) && g.TargetValue.IsPositive()

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !g.TargetValue.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// Progress is the saved fraction of the target, between 0 and 1.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetValue.IsPositive() {
		return decimal.Zero
	}

	progress := g.SavedValue.Div(g.TargetValue)
	if progress.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}

	return progress
}
