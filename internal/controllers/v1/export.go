package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/httputil"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// RegisterExportRoutes registers the export route with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

// ExportResponse is a full dump of the user's records, suitable for
// backups or for moving to another instance.
type ExportResponse struct {
	Data  *Export `json:"data"`  // The dump
	Error *string `json:"error"` // The error, if any occurred
}

type Export struct {
	Categories      []models.Category       `json:"categories"`
	Incomes         []models.Income         `json:"incomes"`
	Expenses        []models.Expense        `json:"expenses"`
	Transactions    []models.Transaction    `json:"transactions"`
	Debts           []models.Debt           `json:"debts"`
	ParceledIncomes []models.ParceledIncome `json:"parceledIncomes"`
	Goals           []models.Goal           `json:"goals"`
	MarketItems     []models.MarketItem     `json:"marketItems"`
	Vehicles        []models.Vehicle        `json:"vehicles"`
	Maintenances    []models.Maintenance    `json:"maintenances"`
	ImportRules     []models.ImportRule     `json:"importRules"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Returns all records of the authenticated user in a single document
// @Tags			v1
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	ExportResponse
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	userID := currentUser(c)
	dump := Export{}

	queries := []func() error{
		func() error { return models.DB.Where("user_id = ?", userID).Find(&dump.Categories).Error },
		func() error { return models.DB.Where("user_id = ?", userID).Find(&dump.Incomes).Error },
		func() error { return models.DB.Where("user_id = ?", userID).Find(&dump.Expenses).Error },
		func() error { return models.DB.Where("user_id = ?", userID).Find(&dump.Transactions).Error },
		func() error { return models.DB.Where("user_id = ?", userID).Find(&dump.Debts).Error },
		func() error { return models.DB.Where("user_id = ?", userID).Find(&dump.ParceledIncomes).Error },
		func() error { return models.DB.Where("user_id = ?", userID).Find(&dump.Goals).Error },
		func() error { return models.DB.Where("user_id = ?", userID).Find(&dump.MarketItems).Error },
		func() error { return models.DB.Where("user_id = ?", userID).Find(&dump.Vehicles).Error },
		func() error { return models.DB.Where("user_id = ?", userID).Find(&dump.Maintenances).Error },
		func() error { return models.DB.Where("user_id = ?", userID).Find(&dump.ImportRules).Error },
	}

	for _, query := range queries {
		if err := query(); err != nil {
			s := err.Error()
			c.JSON(status(err), ExportResponse{
				Error: &s,
			})
			return
		}
	}

	c.Header("Content-Disposition", `attachment; filename="zelo-export.json"`)
	c.JSON(http.StatusOK, ExportResponse{Data: &dump})
}
