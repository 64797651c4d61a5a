package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle is a vehicle whose maintenance is tracked.
type Vehicle struct {
	DefaultModel
	User    User      `json:"-"`
	UserID  uuid.UUID `gorm:"index"`
	Name    string
	Brand   string
	Model   string
	Year    int
	Plate   string
	Mileage int
}

func (v *Vehicle) BeforeSave(_ *gorm.DB) error {
	v.Name = strings.TrimSpace(v.Name)
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))

	return nil
}

// DeleteVehicle removes the vehicle and all of its maintenances in a
// single transaction.
func DeleteVehicle(db *gorm.DB, vehicle Vehicle) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&Maintenance{VehicleID: vehicle.ID}).Delete(&Maintenance{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&vehicle).Error
	})
}

// MaintenanceStatus is the scheduling state of a maintenance item.
type MaintenanceStatus string

const (
	MaintenancePendente  MaintenanceStatus = "pendente"
	MaintenanceAgendada  MaintenanceStatus = "agendada"
	MaintenanceConcluida MaintenanceStatus = "concluida"
	MaintenanceVencida   MaintenanceStatus = "vencida"
)

var ErrMaintenanceIntervalInvalid = errors.New("a maintenance needs an interval in months, in kilometers, or both")

// Maintenance is a recurring maintenance item of a vehicle.
type Maintenance struct {
	DefaultModel
	Vehicle        Vehicle   `json:"-"`
	VehicleID      uuid.UUID `gorm:"index"`
	User           User      `json:"-"`
	UserID         uuid.UUID `gorm:"index"`
	Item           string
	Description    string
	IntervalMonths int
	IntervalKM     int
	LastDate       *time.Time
	LastMileage    int
	NextDate       *time.Time
	NextMileage    int
	Status         MaintenanceStatus
}

func (m *Maintenance) BeforeCreate(tx *gorm.DB) error {
	_ = m.DefaultModel.BeforeCreate(tx)

	return tx.First(&Vehicle{}, m.VehicleID).Error
}

func (m *Maintenance) BeforeSave(_ *gorm.DB) error {
	m.Item = strings.TrimSpace(m.Item)
	m.Description = strings.TrimSpace(m.Description)

	if m.IntervalMonths <= 0 && m.IntervalKM <= 0 {
		return ErrMaintenanceIntervalInvalid
	}

	if m.Status == "" {
		m.Status = MaintenancePendente
	}

	return nil
}

// Complete records the maintenance as done now and schedules the next one
// from the configured intervals.
func (m *Maintenance) Complete(mileage int, now time.Time) {
	now = now.In(time.UTC)
	m.LastDate = &now
	m.LastMileage = mileage

	if m.IntervalMonths > 0 {
		next := now.AddDate(0, m.IntervalMonths, 0)
		m.NextDate = &next
	}

	if m.IntervalKM > 0 {
		m.NextMileage = mileage + m.IntervalKM
	}

	m.Status = MaintenancePendente
}

// Due reports whether the maintenance is overdue by date or mileage.
func (m Maintenance) Due(mileage int, today time.Time) bool {
	if m.NextDate != nil && dateOnly(*m.NextDate).Before(dateOnly(today)) {
		return true
	}

	return m.NextMileage > 0 && mileage >= m.NextMileage
}
