package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/httputil"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/importer"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// RegisterImportRoutes registers the statement import routes with
// the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.POST("/analyze", AnalyzeStatement)
	r.GET("/analyses", GetImportAnalyses)
	r.POST("/confirm", ConfirmImportAnalyses)

	rules := r.Group("/rules")
	{
		rules.OPTIONS("", OptionsImportRuleList)
		rules.GET("", GetImportRules)
		rules.POST("", CreateImportRule)
		rules.OPTIONS("/:id", OptionsImportRuleDetail)
		rules.PATCH("/:id", UpdateImportRule)
		rules.DELETE("/:id", DeleteImportRule)
	}
}

// @Summary		Analyze statement
// @Description	Parses an uploaded bank statement into analysis rows. User rules take precedence over the model's category suggestions.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportAnalysisListResponse
// @Failure		400		{object}	ImportAnalysisListResponse
// @Failure		500		{object}	ImportAnalysisListResponse
// @Param			file	formData	file	true	"Statement file"
// @Router			/v1/import/analyze [post]
func AnalyzeStatement(c *gin.Context) {
	if deps.Parser == nil {
		s := errParserNotSet.Error()
		c.JSON(http.StatusBadRequest, ImportAnalysisListResponse{
			Error: &s,
		})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		s := errNoFilePost.Error()
		c.JSON(http.StatusBadRequest, ImportAnalysisListResponse{
			Error: &s,
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportAnalysisListResponse{
			Error: &s,
		})
		return
	}
	defer file.Close()

	document, err := io.ReadAll(file)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, ImportAnalysisListResponse{
			Error: &s,
		})
		return
	}

	userID := currentUser(c)

	// The user's categories are passed to the parser so that its
	// suggestions map onto existing names
	var categories []models.Category
	err = models.DB.Where("user_id = ?", userID).Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportAnalysisListResponse{
			Error: &s,
		})
		return
	}

	names := make([]string, 0, len(categories))
	byName := make(map[string]models.Category, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
		byName[category.Name] = category
	}

	parsed, err := deps.Parser.Parse(c.Request.Context(), document, header.Header.Get("Content-Type"), names)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, ImportAnalysisListResponse{
			Error: &s,
		})
		return
	}

	var rules []models.ImportRule
	err = models.DB.Where("user_id = ?", userID).Order("priority DESC").Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportAnalysisListResponse{
			Error: &s,
		})
		return
	}

	data := make([]ImportAnalysis, 0, len(parsed))
	for _, row := range parsed {
		analysis := models.ImportAnalysis{
			UserID:      userID,
			Source:      header.Filename,
			Description: row.Description,
			Amount:      row.Amount,
			Date:        row.Date,
			Type:        row.Type,
		}

		// Rules win over the model's suggestion
		if rule, ok := importer.ApplyRules(rules, row.Description); ok {
			id := rule.CategoryID
			analysis.CategoryID = &id
		} else if category, ok := byName[row.CategoryName]; ok {
			id := category.ID
			analysis.CategoryID = &id
		}

		err = models.DB.Create(&analysis).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ImportAnalysisListResponse{
				Error: &s,
			})
			return
		}

		data = append(data, newImportAnalysis(analysis))
	}

	c.JSON(http.StatusCreated, ImportAnalysisListResponse{Data: data})
}

// @Summary		Get analyses
// @Description	Returns the unconfirmed analysis rows of the authenticated user
// @Tags			Import
// @Produce		json
// @Success		200	{object}	ImportAnalysisListResponse
// @Failure		500	{object}	ImportAnalysisListResponse
// @Router			/v1/import/analyses [get]
func GetImportAnalyses(c *gin.Context) {
	var analyses []models.ImportAnalysis
	err := models.DB.
		Where("user_id = ? AND confirmed = ?", currentUser(c), false).
		Order("date ASC").
		Find(&analyses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportAnalysisListResponse{
			Error: &s,
		})
		return
	}

	data := make([]ImportAnalysis, 0, len(analyses))
	for _, analysis := range analyses {
		data = append(data, newImportAnalysis(analysis))
	}

	c.JSON(http.StatusOK, ImportAnalysisListResponse{Data: data})
}

// @Summary		Confirm analyses
// @Description	Turns the selected analysis rows into transactions and marks them confirmed
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		201				{object}	ImportConfirmResponse
// @Failure		400				{object}	ImportConfirmResponse
// @Failure		404				{object}	ImportConfirmResponse
// @Failure		500				{object}	ImportConfirmResponse
// @Param			confirmation	body		ImportConfirmRequest	true	"Rows to confirm"
// @Router			/v1/import/confirm [post]
func ConfirmImportAnalyses(c *gin.Context) {
	var request ImportConfirmRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportConfirmResponse{
			Error: &s,
		})
		return
	}

	if len(request.Rows) == 0 {
		s := errNothingToApply.Error()
		c.JSON(http.StatusBadRequest, ImportConfirmResponse{
			Error: &s,
		})
		return
	}

	userID := currentUser(c)
	r := ImportConfirmResponse{}

	for _, row := range request.Rows {
		var analysis models.ImportAnalysis
		err = models.DB.
			Where("user_id = ? AND confirmed = ?", userID, false).
			First(&analysis, row.ID).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ImportConfirmResponse{
				Error: &s,
			})
			return
		}

		categoryID := analysis.CategoryID
		if row.CategoryID != nil {
			categoryID = row.CategoryID
		}

		transaction := models.Transaction{
			UserID:      userID,
			Type:        analysis.Type,
			Description: analysis.Description,
			Amount:      analysis.Amount,
			Date:        analysis.Date,
			CategoryID:  categoryID,
		}

		err = models.DB.Create(&transaction).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ImportConfirmResponse{
				Error: &s,
			})
			return
		}

		err = models.DB.Model(&analysis).Update("confirmed", true).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ImportConfirmResponse{
				Error: &s,
			})
			return
		}

		r.Data = append(r.Data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusCreated, r)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/rules [options]
func OptionsImportRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/import/rules/{id} [options]
func OptionsImportRuleDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.ImportRule{})
}

// @Summary		Get rules
// @Description	Returns the import rules of the authenticated user ordered by priority
// @Tags			Import
// @Produce		json
// @Success		200	{object}	ImportRuleListResponse
// @Failure		500	{object}	ImportRuleListResponse
// @Router			/v1/import/rules [get]
func GetImportRules(c *gin.Context) {
	var rules []models.ImportRule
	err := models.DB.
		Where("user_id = ?", currentUser(c)).
		Order("priority DESC").
		Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportRuleListResponse{
			Error: &s,
		})
		return
	}

	data := make([]ImportRule, 0, len(rules))
	for _, rule := range rules {
		data = append(data, newImportRule(c, rule))
	}

	c.JSON(http.StatusOK, ImportRuleListResponse{Data: data})
}

// @Summary		Create rule
// @Description	Creates a new import rule
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		201		{object}	ImportRuleResponse
// @Failure		400		{object}	ImportRuleResponse
// @Failure		500		{object}	ImportRuleResponse
// @Param			rule	body		ImportRuleEditable	true	"Rule"
// @Router			/v1/import/rules [post]
func CreateImportRule(c *gin.Context) {
	var editable ImportRuleEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportRuleResponse{
			Error: &e,
		})
		return
	}

	rule := editable.model(currentUser(c))

	err = models.DB.Create(&rule).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportRuleResponse{
			Error: &e,
		})
		return
	}

	data := newImportRule(c, rule)
	c.JSON(http.StatusCreated, ImportRuleResponse{Data: &data})
}

// @Summary		Update rule
// @Description	Update an existing import rule. Only values to be updated need to be specified.
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		200		{object}	ImportRuleResponse
// @Failure		400		{object}	ImportRuleResponse
// @Failure		404		{object}	ImportRuleResponse
// @Failure		500		{object}	ImportRuleResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		ImportRuleEditable	true	"Rule"
// @Router			/v1/import/rules/{id} [patch]
func UpdateImportRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.ImportRule
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportRuleResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ImportRuleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportRuleResponse{
			Error: &s,
		})
		return
	}

	var data ImportRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportRuleResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(data.model(rule.UserID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportRuleResponse{
			Error: &s,
		})
		return
	}

	r := newImportRule(c, rule)
	c.JSON(http.StatusOK, ImportRuleResponse{Data: &r})
}

// @Summary		Delete rule
// @Description	Deletes an import rule
// @Tags			Import
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/import/rules/{id} [delete]
func DeleteImportRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var rule models.ImportRule
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&rule, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
