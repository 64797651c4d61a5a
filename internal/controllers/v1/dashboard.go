package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/httputil"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// RegisterDashboardRoutes registers the dashboard route with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// DashboardQueryFilter selects the month to summarize.
type DashboardQueryFilter struct {
	Month string `form:"month"` // The month in YYYY-MM format. Defaults to the current month.
}

// Dashboard is the monthly summary shown on the landing view.
type Dashboard struct {
	Month          string          `json:"month" example:"2025-01"`
	Income         decimal.Decimal `json:"income" example:"4500.00"`        // Sum of receita transactions in the month
	Expense        decimal.Decimal `json:"expense" example:"3180.55"`       // Sum of despesa transactions in the month
	Balance        decimal.Decimal `json:"balance" example:"1319.45"`       // income - expense
	PendingDebts   int64           `json:"pendingDebts" example:"2"`        // Debts not yet settled
	OverdueDebts   int64           `json:"overdueDebts" example:"1"`        // Debts past their due date
	DebtsRemaining decimal.Decimal `json:"debtsRemaining" example:"3400.00"`// Sum of the remaining value of open debts
	ToReceive      decimal.Decimal `json:"toReceive" example:"400.00"`      // Sum of the remaining value of open parceled incomes
	GoalsAchieved  int64           `json:"goalsAchieved" example:"1"`       // Goals already reached
	GoalsTotal     int64           `json:"goalsTotal" example:"3"`          // All goals of the user
	ItemsToBuy     int64           `json:"itemsToBuy" example:"4"`          // Market items without or low on stock
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`  // The summary
	Error *string    `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the monthly summary for the authenticated user
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		400	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Param			month	query	string	false	"The month in YYYY-MM format. Defaults to the current month."
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	var filter DashboardQueryFilter
	_ = c.Bind(&filter)

	month := filter.Month
	if month == "" {
		month = time.Now().In(time.UTC).Format("2006-01")
	}

	from, err := time.Parse("2006-01", month)
	if err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{
			Error: &s,
		})
		return
	}
	until := from.AddDate(0, 1, 0)

	userID := currentUser(c)

	income, expense, err := models.MonthlyBalance(models.DB, userID, from, until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	data := Dashboard{
		Month:   month,
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}

	// The first failing aggregate aborts the request
	aggregates := []func() error{
		func() error {
			return models.DB.Model(&models.Debt{}).
				Where("user_id = ? AND status = ?", userID, models.ObligationPendente).
				Count(&data.PendingDebts).Error
		},
		func() error {
			return models.DB.Model(&models.Debt{}).
				Where("user_id = ? AND status = ?", userID, models.ObligationVencida).
				Count(&data.OverdueDebts).Error
		},
		func() error {
			var remaining decimal.NullDecimal
			err := models.DB.Model(&models.Debt{}).
				Where("user_id = ? AND status <> ?", userID, models.ObligationQuitada).
				Select("SUM(remaining_value)").
				Row().
				Scan(&remaining)
			data.DebtsRemaining = remaining.Decimal
			return err
		},
		func() error {
			var remaining decimal.NullDecimal
			err := models.DB.Model(&models.ParceledIncome{}).
				Where("user_id = ? AND status <> ?", userID, models.ObligationQuitada).
				Select("SUM(remaining_value)").
				Row().
				Scan(&remaining)
			data.ToReceive = remaining.Decimal
			return err
		},
		func() error {
			return models.DB.Model(&models.Goal{}).
				Where("user_id = ? AND achieved = ?", userID, true).
				Count(&data.GoalsAchieved).Error
		},
		func() error {
			return models.DB.Model(&models.Goal{}).
				Where("user_id = ?", userID).
				Count(&data.GoalsTotal).Error
		},
		func() error {
			var items []models.MarketItem
			err := models.DB.Where("user_id = ?", userID).Find(&items).Error
			if err != nil {
				return err
			}

			for _, item := range items {
				switch item.StockStatus() {
				case models.StockSemEstoque, models.StockBaixo:
					data.ItemsToBuy++
				}
			}
			return nil
		},
	}

	for _, run := range aggregates {
		if err := run(); err != nil {
			s := err.Error()
			c.JSON(status(err), DashboardResponse{
				Error: &s,
			})
			return
		}
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
