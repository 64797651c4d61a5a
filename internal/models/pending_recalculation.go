package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ObligationKind distinguishes the two obligation tables.
type ObligationKind string

const (
	KindDebt           ObligationKind = "divida"
	KindParceledIncome ObligationKind = "receita_parcelada"
)

// PendingRecalculation marks an obligation whose aggregates need to be
// recomputed. Rows survive restarts, so a recalculation that was requested
// but not processed is picked up again on the next start or sweep.
type PendingRecalculation struct {
	DefaultModel
	Kind     ObligationKind `gorm:"uniqueIndex:pending_recalc_parent"`
	ParentID uuid.UUID      `gorm:"uniqueIndex:pending_recalc_parent"`
}

// MarkPendingRecalculation records the parent as pending. Marking an
// already pending parent is a no-op.
func MarkPendingRecalculation(db *gorm.DB, kind ObligationKind, parentID uuid.UUID) error {
	pending := PendingRecalculation{Kind: kind, ParentID: parentID}
	return db.Where(&PendingRecalculation{Kind: kind, ParentID: parentID}).
		FirstOrCreate(&pending).Error
}

// ClearPendingRecalculation removes the pending mark of a parent.
func ClearPendingRecalculation(db *gorm.DB, kind ObligationKind, parentID uuid.UUID) error {
	return db.Unscoped().
		Where("kind = ? AND parent_id = ?", kind, parentID).
		Delete(&PendingRecalculation{}).Error
}

// PendingRecalculations lists all pending parents.
func PendingRecalculations(db *gorm.DB) ([]PendingRecalculation, error) {
	var pending []PendingRecalculation
	err := db.Find(&pending).Error
	return pending, err
}
