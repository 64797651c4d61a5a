package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

func (suite *TestSuiteStandard) TestVehiclePlateNormalization() {
	user := suite.createTestUser()

	vehicle := suite.createTestVehicle(models.Vehicle{
		UserID: user.ID,
		Plate:  " abc1d23 ",
	})

	assert.Equal(suite.T(), "ABC1D23", vehicle.Plate)
}

func (suite *TestSuiteStandard) TestMaintenanceNeedsInterval() {
	user := suite.createTestUser()
	vehicle := suite.createTestVehicle(models.Vehicle{UserID: user.ID})

	maintenance := models.Maintenance{
		VehicleID: vehicle.ID,
		UserID:    user.ID,
		Item:      "Troca de óleo",
	}

	err := models.DB.Create(&maintenance).Error
	assert.ErrorIs(suite.T(), err, models.ErrMaintenanceIntervalInvalid)
}

func (suite *TestSuiteStandard) TestMaintenanceNeedsVehicle() {
	user := suite.createTestUser()

	maintenance := models.Maintenance{
		UserID:         user.ID,
		Item:           "Troca de óleo",
		IntervalMonths: 6,
	}

	err := models.DB.Create(&maintenance).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestMaintenanceComplete() {
	t := suite.T()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	maintenance := models.Maintenance{
		Item:           "Troca de óleo",
		IntervalMonths: 6,
		IntervalKM:     10000,
		Status:         models.MaintenanceVencida,
	}

	maintenance.Complete(52000, now)

	require.NotNil(t, maintenance.LastDate)
	assert.Equal(t, now, *maintenance.LastDate)
	assert.Equal(t, 52000, maintenance.LastMileage)

	require.NotNil(t, maintenance.NextDate)
	assert.Equal(t, now.AddDate(0, 6, 0), *maintenance.NextDate)
	assert.Equal(t, 62000, maintenance.NextMileage)
	assert.Equal(t, models.MaintenancePendente, maintenance.Status)
}

func (suite *TestSuiteStandard) TestMaintenanceCompleteDateOnlyInterval() {
	maintenance := models.Maintenance{
		Item:           "Revisão",
		IntervalMonths: 12,
	}

	maintenance.Complete(30000, time.Now())

	assert.NotNil(suite.T(), maintenance.NextDate)
	assert.Equal(suite.T(), 0, maintenance.NextMileage)
}

func (suite *TestSuiteStandard) TestMaintenanceDue() {
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name        string
		maintenance models.Maintenance
		mileage     int
		want        bool
	}{
		{"date in the past", models.Maintenance{NextDate: &yesterday}, 0, true},
		{"date today", models.Maintenance{NextDate: &today}, 0, false},
		{"date in the future", models.Maintenance{NextDate: &tomorrow}, 0, false},
		{"mileage reached", models.Maintenance{NextMileage: 50000}, 50000, true},
		{"mileage not reached", models.Maintenance{NextMileage: 50000}, 49999, false},
		{"nothing scheduled", models.Maintenance{}, 100000, false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.maintenance.Due(tt.mileage, today))
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteVehicleCascades() {
	t := suite.T()
	user := suite.createTestUser()
	vehicle := suite.createTestVehicle(models.Vehicle{UserID: user.ID})

	_ = suite.createTestMaintenance(models.Maintenance{VehicleID: vehicle.ID, UserID: user.ID})
	_ = suite.createTestMaintenance(models.Maintenance{VehicleID: vehicle.ID, UserID: user.ID})

	require.Nil(t, models.DeleteVehicle(models.DB, vehicle))

	var count int64
	require.Nil(t, models.DB.Model(&models.Maintenance{}).Where("vehicle_id = ?", vehicle.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
