// Package sweeper persists the states that are derived from the passage
// of time: installments and obligations become vencida when their dates
// pass, maintenances become vencida when their next date or mileage is
// reached.
package sweeper

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/recalc"
)

type Sweeper struct {
	engine   *recalc.Engine
	schedule string
	cron     *cron.Cron
}

func New(engine *recalc.Engine, schedule string) *Sweeper {
	return &Sweeper{
		engine:   engine,
		schedule: schedule,
	}
}

// Start schedules the sweep. The first sweep runs at the next scheduled
// time, not immediately; call Sweep directly for an immediate run.
func (s *Sweeper) Start() error {
	s.cron = cron.New()

	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.Sweep(time.Now()); err != nil {
			log.Error().Err(err).Msg("sweeper: sweep failed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler, waiting for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Sweep marks everything overdue as of now and requests recalculation for
// the affected obligations.
func (s *Sweeper) Sweep(now time.Time) error {
	if err := s.sweepDebtInstallments(now); err != nil {
		return err
	}

	if err := s.sweepIncomeInstallments(now); err != nil {
		return err
	}

	return s.sweepMaintenances(now)
}

func (s *Sweeper) sweepDebtInstallments(now time.Time) error {
	var overdue []models.DebtInstallment
	err := models.DB.
		Where("status = ? AND date < ?", models.InstallmentPendente, startOfDay(now)).
		Find(&overdue).Error
	if err != nil {
		return err
	}

	parents := map[string]models.DebtInstallment{}
	for _, installment := range overdue {
		err := models.DB.Model(&installment).Update("status", models.InstallmentVencida).Error
		if err != nil {
			log.Warn().Err(err).Str("installment", installment.ID.String()).
				Msg("sweeper: marking debt installment vencida failed")
			continue
		}
		parents[installment.DebtID.String()] = installment
	}

	for _, installment := range parents {
		if err := s.engine.Request(models.KindDebt, installment.DebtID); err != nil {
			return err
		}
		if err := s.engine.Recalculate(models.KindDebt, installment.DebtID); err != nil {
			return err
		}
	}

	return nil
}

func (s *Sweeper) sweepIncomeInstallments(now time.Time) error {
	var overdue []models.IncomeInstallment
	err := models.DB.
		Where("status = ? AND date < ?", models.InstallmentPendente, startOfDay(now)).
		Find(&overdue).Error
	if err != nil {
		return err
	}

	parents := map[string]models.IncomeInstallment{}
	for _, installment := range overdue {
		err := models.DB.Model(&installment).Update("status", models.InstallmentVencida).Error
		if err != nil {
			log.Warn().Err(err).Str("installment", installment.ID.String()).
				Msg("sweeper: marking income installment vencida failed")
			continue
		}
		parents[installment.ParceledIncomeID.String()] = installment
	}

	for _, installment := range parents {
		if err := s.engine.Request(models.KindParceledIncome, installment.ParceledIncomeID); err != nil {
			return err
		}
		if err := s.engine.Recalculate(models.KindParceledIncome, installment.ParceledIncomeID); err != nil {
			return err
		}
	}

	return nil
}

func (s *Sweeper) sweepMaintenances(now time.Time) error {
	var maintenances []models.Maintenance
	err := models.DB.
		Where("status IN ?", []models.MaintenanceStatus{models.MaintenancePendente, models.MaintenanceAgendada}).
		Find(&maintenances).Error
	if err != nil {
		return err
	}

	for _, maintenance := range maintenances {
		var vehicle models.Vehicle
		if err := models.DB.First(&vehicle, maintenance.VehicleID).Error; err != nil {
			log.Warn().Err(err).Str("maintenance", maintenance.ID.String()).
				Msg("sweeper: loading vehicle failed")
			continue
		}

		if maintenance.Due(vehicle.Mileage, now) {
			err := models.DB.Model(&maintenance).Update("status", models.MaintenanceVencida).Error
			if err != nil {
				log.Warn().Err(err).Str("maintenance", maintenance.ID.String()).
					Msg("sweeper: marking maintenance vencida failed")
			}
		}
	}

	return nil
}

func startOfDay(t time.Time) time.Time {
	t = t.In(time.UTC)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
