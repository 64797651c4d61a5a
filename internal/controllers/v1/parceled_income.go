package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/httputil"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/sortable"
	"golang.org/x/exp/slices"
)

// RegisterParceledIncomeRoutes registers the routes for parceled incomes
// with the RouterGroup that is passed.
func RegisterParceledIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsParceledIncomeList)
		r.GET("", GetParceledIncomes)
		r.POST("", CreateParceledIncome)
	}

	// ParceledIncome with ID
	{
		r.OPTIONS("/:id", OptionsParceledIncomeDetail)
		r.GET("/:id", GetParceledIncome)
		r.PATCH("/:id", UpdateParceledIncome)
		r.DELETE("/:id", DeleteParceledIncome)
		r.GET("/:id/installments", GetIncomeInstallments)
	}
}

// RegisterIncomeInstallmentRoutes registers the routes for income
// installments with the RouterGroup that is passed.
func RegisterIncomeInstallmentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", OptionsIncomeInstallmentDetail)
	r.PATCH("/:id/receive", ReceiveIncomeInstallment)
	r.PATCH("/:id/unreceive", UnreceiveIncomeInstallment)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ParceledIncomes
// @Success		204
// @Router			/v1/parceled-incomes [options]
func OptionsParceledIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ParceledIncomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/parceled-incomes/{id} [options]
func OptionsParceledIncomeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.ParceledIncome{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ParceledIncomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income-installments/{id} [options]
func OptionsIncomeInstallmentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var installment models.IncomeInstallment
	err = models.DB.First(&installment, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Create parceled income
// @Description	Creates a new parceled income and generates its installments
// @Tags			ParceledIncomes
// @Accept			json
// @Produce		json
// @Success		201				{object}	ParceledIncomeResponse
// @Failure		400				{object}	ParceledIncomeResponse
// @Failure		500				{object}	ParceledIncomeResponse
// @Param			parceledIncome	body		ParceledIncomeEditable	true	"ParceledIncome"
// @Router			/v1/parceled-incomes [post]
func CreateParceledIncome(c *gin.Context) {
	var editable ParceledIncomeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ParceledIncomeResponse{
			Error: &e,
		})
		return
	}

	income := editable.model(currentUser(c))

	err = models.CreateParceledIncomeWithInstallments(models.DB, &income)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ParceledIncomeResponse{
			Error: &e,
		})
		return
	}

	data := newParceledIncome(c, income)
	c.JSON(http.StatusCreated, ParceledIncomeResponse{Data: &data})
}

// @Summary		Get parceled incomes
// @Description	Returns a list of parceled incomes
// @Tags			ParceledIncomes
// @Produce		json
// @Success		200	{object}	ParceledIncomeListResponse
// @Failure		400	{object}	ParceledIncomeListResponse
// @Failure		500	{object}	ParceledIncomeListResponse
// @Router			/v1/parceled-incomes [get]
// @Param			payer			query	string	false	"Filter by payer"
// @Param			status			query	string	false	"Filter by status"
// @Param			category		query	string	false	"Filter by category ID"
// @Param			search			query	string	false	"Search for this text in description and payer"
// @Param			sortBy			query	string	false	"Sort by this field"
// @Param			sortDirection	query	string	false	"Sort direction: asc, desc or none"
// @Param			offset			query	uint	false	"The offset of the first ParceledIncome returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of ParceledIncomes to return. Defaults to 50."
func GetParceledIncomes(c *gin.Context) {
	var filter ParceledIncomeQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Where("user_id = ?", currentUser(c)).
		Order("due_date ASC").
		Where(&filterModel, queryFields...)

	if filter.Payer != "" {
		q = q.Where("payer LIKE ?", "%"+filter.Payer+"%")
	} else if slices.Contains(setFields, "Payer") {
		q = q.Where("payer = ''")
	}

	if filter.Category != "" {
		q = q.Where("category_id = ?", filter.Category)
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("description LIKE ?", "%"+filter.Search+"%").Or(
				models.DB.Where("payer LIKE ?", "%"+filter.Search+"%"),
			),
		)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 ParceledIncomes and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var incomes []models.ParceledIncome
	err := q.Find(&incomes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParceledIncomeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ParceledIncomeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]ParceledIncome, 0, len(incomes))
	for _, income := range incomes {
		data = append(data, newParceledIncome(c, income))
	}

	data = sortable.Sort(data, filter.SortBy, sortable.ParseDirection(filter.SortDirection))

	c.JSON(http.StatusOK, ParceledIncomeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get parceled income
// @Description	Returns a specific parceled income
// @Tags			ParceledIncomes
// @Produce		json
// @Success		200	{object}	ParceledIncomeResponse
// @Failure		400	{object}	ParceledIncomeResponse
// @Failure		404	{object}	ParceledIncomeResponse
// @Failure		500	{object}	ParceledIncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/parceled-incomes/{id} [get]
func GetParceledIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParceledIncomeResponse{
			Error: &s,
		})
		return
	}

	var income models.ParceledIncome
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&income, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParceledIncomeResponse{
			Error: &s,
		})
		return
	}

	data := newParceledIncome(c, income)
	c.JSON(http.StatusOK, ParceledIncomeResponse{Data: &data})
}

// @Summary		Get income installments
// @Description	Returns the installments of a parceled income ordered by number
// @Tags			ParceledIncomes
// @Produce		json
// @Success		200	{object}	IncomeInstallmentListResponse
// @Failure		400	{object}	IncomeInstallmentListResponse
// @Failure		404	{object}	IncomeInstallmentListResponse
// @Failure		500	{object}	IncomeInstallmentListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/parceled-incomes/{id}/installments [get]
func GetIncomeInstallments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeInstallmentListResponse{
			Error: &s,
		})
		return
	}

	var income models.ParceledIncome
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&income, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeInstallmentListResponse{
			Error: &s,
		})
		return
	}

	installments, err := income.Installments(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeInstallmentListResponse{
			Error: &s,
		})
		return
	}

	data := make([]IncomeInstallment, 0, len(installments))
	for _, installment := range installments {
		data = append(data, newIncomeInstallment(c, installment))
	}

	c.JSON(http.StatusOK, IncomeInstallmentListResponse{Data: data})
}

// @Summary		Update parceled income
// @Description	Update an existing parceled income. Only values to be updated need to be specified. Derived values are recalculated from the installments afterwards.
// @Tags			ParceledIncomes
// @Accept			json
// @Produce		json
// @Success		200				{object}	ParceledIncomeResponse
// @Failure		400				{object}	ParceledIncomeResponse
// @Failure		404				{object}	ParceledIncomeResponse
// @Failure		500				{object}	ParceledIncomeResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			parceledIncome	body		ParceledIncomeEditable	true	"ParceledIncome"
// @Router			/v1/parceled-incomes/{id} [patch]
func UpdateParceledIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParceledIncomeResponse{
			Error: &s,
		})
		return
	}

	var income models.ParceledIncome
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&income, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParceledIncomeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ParceledIncomeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParceledIncomeResponse{
			Error: &s,
		})
		return
	}

	// The installment layout is fixed after creation
	updateFields = slices.DeleteFunc(updateFields, func(f any) bool {
		return f == "InstallmentCount"
	})

	var data ParceledIncomeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParceledIncomeResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&income).Select("", updateFields...).Updates(data.model(income.UserID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParceledIncomeResponse{
			Error: &s,
		})
		return
	}

	// Re-derive the settled and remaining values since the total may have changed
	income, err = models.RecalculateParceledIncome(models.DB, income.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParceledIncomeResponse{
			Error: &s,
		})
		return
	}

	r := newParceledIncome(c, income)
	c.JSON(http.StatusOK, ParceledIncomeResponse{Data: &r})
}

// @Summary		Delete parceled income
// @Description	Deletes a parceled income and all of its installments
// @Tags			ParceledIncomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/parceled-incomes/{id} [delete]
func DeleteParceledIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var income models.ParceledIncome
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&income, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteParceledIncome(models.DB, income)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Receive installment
// @Description	Marks an installment as received and recalculates the parent parceled income
// @Tags			ParceledIncomes
// @Produce		json
// @Success		200	{object}	IncomeInstallmentStatusResponse
// @Failure		400	{object}	IncomeInstallmentStatusResponse
// @Failure		404	{object}	IncomeInstallmentStatusResponse
// @Failure		500	{object}	IncomeInstallmentStatusResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income-installments/{id}/receive [patch]
func ReceiveIncomeInstallment(c *gin.Context) {
	setIncomeInstallmentStatus(c, models.InstallmentRecebida)
}

// @Summary		Unreceive installment
// @Description	Marks a received installment as pending again and recalculates the parent parceled income
// @Tags			ParceledIncomes
// @Produce		json
// @Success		200	{object}	IncomeInstallmentStatusResponse
// @Failure		400	{object}	IncomeInstallmentStatusResponse
// @Failure		404	{object}	IncomeInstallmentStatusResponse
// @Failure		500	{object}	IncomeInstallmentStatusResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income-installments/{id}/unreceive [patch]
func UnreceiveIncomeInstallment(c *gin.Context) {
	setIncomeInstallmentStatus(c, models.InstallmentPendente)
}

func setIncomeInstallmentStatus(c *gin.Context, target models.InstallmentStatus) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeInstallmentStatusResponse{
			Error: &s,
		})
		return
	}

	var installment models.IncomeInstallment
	err = models.DB.
		Joins("JOIN parceled_incomes ON parceled_incomes.id = income_installments.parceled_income_id").
		Where("parceled_incomes.user_id = ?", currentUser(c)).
		First(&installment, "income_installments.id = ?", uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeInstallmentStatusResponse{
			Error: &s,
		})
		return
	}

	income, err := deps.Engine.SetIncomeInstallmentStatus(&installment, target)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeInstallmentStatusResponse{
			Error: &s,
		})
		return
	}

	data := newIncomeInstallment(c, installment)
	parent := newParceledIncome(c, income)
	c.JSON(http.StatusOK, IncomeInstallmentStatusResponse{
		Data:           &data,
		ParceledIncome: &parent,
	})
}
