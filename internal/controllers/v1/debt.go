package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/httputil"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/sortable"
	"golang.org/x/exp/slices"
)

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func RegisterDebtRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDebtList)
		r.GET("", GetDebts)
		r.POST("", CreateDebt)
	}

	// Debt with ID
	{
		r.OPTIONS("/:id", OptionsDebtDetail)
		r.GET("/:id", GetDebt)
		r.PATCH("/:id", UpdateDebt)
		r.DELETE("/:id", DeleteDebt)
		r.GET("/:id/installments", GetDebtInstallments)
	}
}

// RegisterDebtInstallmentRoutes registers the routes for debt
// installments with the RouterGroup that is passed.
func RegisterDebtInstallmentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", OptionsDebtInstallmentDetail)
	r.PATCH("/:id/pay", PayDebtInstallment)
	r.PATCH("/:id/unpay", UnpayDebtInstallment)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Router			/v1/debts [options]
func OptionsDebtList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [options]
func OptionsDebtDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Debt{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debt-installments/{id} [options]
func OptionsDebtInstallmentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var installment models.DebtInstallment
	err = models.DB.First(&installment, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Create debt
// @Description	Creates a new debt and generates its installments
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		201		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			debt	body		DebtEditable	true	"Debt"
// @Router			/v1/debts [post]
func CreateDebt(c *gin.Context) {
	var editable DebtEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	debt := editable.model(currentUser(c))

	err = models.CreateDebtWithInstallments(models.DB, &debt)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	data := newDebt(c, debt)
	c.JSON(http.StatusCreated, DebtResponse{Data: &data})
}

// @Summary		Get debts
// @Description	Returns a list of debts
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtListResponse
// @Failure		400	{object}	DebtListResponse
// @Failure		500	{object}	DebtListResponse
// @Router			/v1/debts [get]
// @Param			creditor		query	string	false	"Filter by creditor"
// @Param			status			query	string	false	"Filter by status"
// @Param			category		query	string	false	"Filter by category ID"
// @Param			search			query	string	false	"Search for this text in description and creditor"
// @Param			sortBy			query	string	false	"Sort by this field"
// @Param			sortDirection	query	string	false	"Sort direction: asc, desc or none"
// @Param			offset			query	uint	false	"The offset of the first Debt returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Debts to return. Defaults to 50."
func GetDebts(c *gin.Context) {
	var filter DebtQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Where("user_id = ?", currentUser(c)).
		Order("due_date ASC").
		Where(&filterModel, queryFields...)

	if filter.Creditor != "" {
		q = q.Where("creditor LIKE ?", "%"+filter.Creditor+"%")
	} else if slices.Contains(setFields, "Creditor") {
		q = q.Where("creditor = ''")
	}

	if filter.Category != "" {
		q = q.Where("category_id = ?", filter.Category)
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("description LIKE ?", "%"+filter.Search+"%").Or(
				models.DB.Where("creditor LIKE ?", "%"+filter.Search+"%"),
			),
		)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Debts and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var debts []models.Debt
	err := q.Find(&debts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Debt, 0, len(debts))
	for _, debt := range debts {
		data = append(data, newDebt(c, debt))
	}

	data = sortable.Sort(data, filter.SortBy, sortable.ParseDirection(filter.SortDirection))

	c.JSON(http.StatusOK, DebtListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get debt
// @Description	Returns a specific debt
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtResponse
// @Failure		400	{object}	DebtResponse
// @Failure		404	{object}	DebtResponse
// @Failure		500	{object}	DebtResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [get]
func GetDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var debt models.Debt
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&debt, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	data := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &data})
}

// @Summary		Get debt installments
// @Description	Returns the installments of a debt ordered by number
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtInstallmentListResponse
// @Failure		400	{object}	DebtInstallmentListResponse
// @Failure		404	{object}	DebtInstallmentListResponse
// @Failure		500	{object}	DebtInstallmentListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id}/installments [get]
func GetDebtInstallments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtInstallmentListResponse{
			Error: &s,
		})
		return
	}

	var debt models.Debt
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&debt, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtInstallmentListResponse{
			Error: &s,
		})
		return
	}

	installments, err := debt.Installments(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtInstallmentListResponse{
			Error: &s,
		})
		return
	}

	data := make([]DebtInstallment, 0, len(installments))
	for _, installment := range installments {
		data = append(data, newDebtInstallment(c, installment))
	}

	c.JSON(http.StatusOK, DebtInstallmentListResponse{Data: data})
}

// @Summary		Update debt
// @Description	Update an existing debt. Only values to be updated need to be specified. Derived values are recalculated from the installments afterwards.
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			debt	body		DebtEditable	true	"Debt"
// @Router			/v1/debts/{id} [patch]
func UpdateDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var debt models.Debt
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&debt, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DebtEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	// The installment layout is fixed after creation
	updateFields = slices.DeleteFunc(updateFields, func(f any) bool {
		return f == "InstallmentCount"
	})

	var data DebtEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&debt).Select("", updateFields...).Updates(data.model(debt.UserID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	// Re-derive the settled and remaining values since the total may have changed
	debt, err = models.RecalculateDebt(models.DB, debt.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	r := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &r})
}

// @Summary		Delete debt
// @Description	Deletes a debt and all of its installments
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [delete]
func DeleteDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var debt models.Debt
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&debt, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteDebt(models.DB, debt)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Pay installment
// @Description	Marks an installment as paid and recalculates the parent debt
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtInstallmentStatusResponse
// @Failure		400	{object}	DebtInstallmentStatusResponse
// @Failure		404	{object}	DebtInstallmentStatusResponse
// @Failure		500	{object}	DebtInstallmentStatusResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debt-installments/{id}/pay [patch]
func PayDebtInstallment(c *gin.Context) {
	setDebtInstallmentStatus(c, models.InstallmentPago)
}

// @Summary		Unpay installment
// @Description	Marks a paid installment as pending again and recalculates the parent debt
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtInstallmentStatusResponse
// @Failure		400	{object}	DebtInstallmentStatusResponse
// @Failure		404	{object}	DebtInstallmentStatusResponse
// @Failure		500	{object}	DebtInstallmentStatusResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debt-installments/{id}/unpay [patch]
func UnpayDebtInstallment(c *gin.Context) {
	setDebtInstallmentStatus(c, models.InstallmentPendente)
}

func setDebtInstallmentStatus(c *gin.Context, target models.InstallmentStatus) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtInstallmentStatusResponse{
			Error: &s,
		})
		return
	}

	var installment models.DebtInstallment
	err = models.DB.
		Joins("JOIN debts ON debts.id = debt_installments.debt_id").
		Where("debts.user_id = ?", currentUser(c)).
		First(&installment, "debt_installments.id = ?", uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtInstallmentStatusResponse{
			Error: &s,
		})
		return
	}

	debt, err := deps.Engine.SetDebtInstallmentStatus(&installment, target)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtInstallmentStatusResponse{
			Error: &s,
		})
		return
	}

	data := newDebtInstallment(c, installment)
	parent := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtInstallmentStatusResponse{
		Data: &data,
		Debt: &parent,
	})
}
