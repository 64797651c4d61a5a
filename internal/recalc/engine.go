package recalc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// Engine performs recalculations. It always reads and writes through
// models.DB so that it follows database reconnects.
type Engine struct {
	bus *Bus
}

func NewEngine(bus *Bus) *Engine {
	return &Engine{bus: bus}
}

// Bus returns the event bus the engine publishes on.
func (e *Engine) Bus() *Bus {
	return e.bus
}

// Request durably marks the parent for recalculation and broadcasts the
// request. It does not recalculate itself.
func (e *Engine) Request(kind models.ObligationKind, parentID uuid.UUID) error {
	err := models.MarkPendingRecalculation(models.DB, kind, parentID)
	if err != nil {
		return err
	}

	e.bus.Publish(RecalcRequested{Kind: kind, ParentID: parentID})
	return nil
}

// Recalculate recomputes the aggregates of one obligation and clears its
// pending mark. Safe to call for parents that are not pending.
func (e *Engine) Recalculate(kind models.ObligationKind, parentID uuid.UUID) error {
	var err error
	switch kind {
	case models.KindDebt:
		_, err = models.RecalculateDebt(models.DB, parentID)
	case models.KindParceledIncome:
		_, err = models.RecalculateParceledIncome(models.DB, parentID)
	default:
		return fmt.Errorf("unknown obligation kind %q", kind)
	}

	if err != nil {
		return err
	}

	return models.ClearPendingRecalculation(models.DB, kind, parentID)
}

// SetDebtInstallmentStatus changes the status of a debt installment and
// triggers the parent recalculation.
//
// The installment update itself is best-effort: if the write fails the
// error is logged and the parent recalculation proceeds anyway, trading
// strict consistency for availability.
func (e *Engine) SetDebtInstallmentStatus(installment *models.DebtInstallment, status models.InstallmentStatus) (models.Debt, error) {
	err := models.DB.Model(installment).Update("status", status).Error
	if err != nil {
		log.Warn().Err(err).
			Str("installment", installment.ID.String()).
			Msg("recalc: updating debt installment status failed, recalculating parent anyway")
	} else {
		installment.Status = status

		// Keep the materialized expense in sync when there is one
		if installment.ExpenseID != nil {
			expenseStatus := models.InstallmentPendente
			if status == models.InstallmentPago {
				expenseStatus = models.InstallmentPago
			}
			err = models.DB.Model(&models.Expense{}).
				Where("id = ?", *installment.ExpenseID).
				Update("status", expenseStatus).Error
			if err != nil {
				log.Warn().Err(err).Msg("recalc: updating linked expense failed")
			}
		}
	}

	if err := e.Request(models.KindDebt, installment.DebtID); err != nil {
		return models.Debt{}, err
	}

	// The view owning the parent recalculates immediately. Recalculation
	// is idempotent, so the asynchronous consumer doing it again is fine.
	debt, err := models.RecalculateDebt(models.DB, installment.DebtID)
	if err != nil {
		return models.Debt{}, err
	}

	if err := models.ClearPendingRecalculation(models.DB, models.KindDebt, installment.DebtID); err != nil {
		return models.Debt{}, err
	}

	e.bus.Publish(InstallmentStatusChanged{
		Kind:          models.KindDebt,
		InstallmentID: installment.ID,
		ParentID:      installment.DebtID,
		Status:        status,
	})

	return debt, nil
}

// SetIncomeInstallmentStatus changes the status of an income installment
// and triggers the parent recalculation. Same semantics as
// SetDebtInstallmentStatus.
func (e *Engine) SetIncomeInstallmentStatus(installment *models.IncomeInstallment, status models.InstallmentStatus) (models.ParceledIncome, error) {
	err := models.DB.Model(installment).Update("status", status).Error
	if err != nil {
		log.Warn().Err(err).
			Str("installment", installment.ID.String()).
			Msg("recalc: updating income installment status failed, recalculating parent anyway")
	} else {
		installment.Status = status

		if installment.IncomeID != nil {
			incomeStatus := models.InstallmentPendente
			if status == models.InstallmentRecebida {
				incomeStatus = models.InstallmentRecebida
			}
			err = models.DB.Model(&models.Income{}).
				Where("id = ?", *installment.IncomeID).
				Update("status", incomeStatus).Error
			if err != nil {
				log.Warn().Err(err).Msg("recalc: updating linked income failed")
			}
		}
	}

	if err := e.Request(models.KindParceledIncome, installment.ParceledIncomeID); err != nil {
		return models.ParceledIncome{}, err
	}

	income, err := models.RecalculateParceledIncome(models.DB, installment.ParceledIncomeID)
	if err != nil {
		return models.ParceledIncome{}, err
	}

	if err := models.ClearPendingRecalculation(models.DB, models.KindParceledIncome, installment.ParceledIncomeID); err != nil {
		return models.ParceledIncome{}, err
	}

	e.bus.Publish(InstallmentStatusChanged{
		Kind:          models.KindParceledIncome,
		InstallmentID: installment.ID,
		ParentID:      installment.ParceledIncomeID,
		Status:        status,
	})

	return income, nil
}

// DrainPending recalculates everything that is marked pending. Called on
// startup to heal requests that were recorded but never processed.
func (e *Engine) DrainPending() error {
	pending, err := models.PendingRecalculations(models.DB)
	if err != nil {
		return err
	}

	for _, p := range pending {
		if err := e.Recalculate(p.Kind, p.ParentID); err != nil {
			log.Error().Err(err).
				Str("kind", string(p.Kind)).
				Str("parent", p.ParentID.String()).
				Msg("recalc: draining pending recalculation failed")
		}
	}

	return nil
}

// Start consumes recalculation requests from the bus until the context is
// cancelled. This serves views that do not own the mutated parent.
func (e *Engine) Start(ctx context.Context) {
	events := e.bus.Subscribe()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}

				request, ok := event.(RecalcRequested)
				if !ok {
					continue
				}

				if err := e.Recalculate(request.Kind, request.ParentID); err != nil {
					log.Error().Err(err).
						Str("kind", string(request.Kind)).
						Str("parent", request.ParentID.String()).
						Msg("recalc: recalculation failed")
				}
			}
		}
	}()
}
