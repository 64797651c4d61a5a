package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ImportRule maps statement descriptions to a category. Rules are checked
// before asking the model, so deterministic matches never depend on AI
// output.
type ImportRule struct {
	DefaultModel
	User       User      `json:"-"`
	UserID     uuid.UUID `gorm:"index"`
	Priority   int
	Pattern    string // glob pattern matched against the description
	Category   Category
	CategoryID uuid.UUID
}

func (r *ImportRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	return tx.First(&Category{}, r.CategoryID).Error
}

// Matches reports whether the rule applies to a statement description.
// Matching is case-insensitive.
func (r ImportRule) Matches(description string) bool {
	return glob.Glob(strings.ToLower(r.Pattern), strings.ToLower(description))
}

// ImportAnalysis is one AI-parsed statement row awaiting user confirmation.
type ImportAnalysis struct {
	DefaultModel
	User        User      `json:"-"`
	UserID      uuid.UUID `gorm:"index"`
	Source      string    // file name or upload label
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        time.Time
	Type        TransactionType
	Category    *Category  `json:"-"`
	CategoryID  *uuid.UUID `gorm:"index"`
	Confirmed   bool
}
