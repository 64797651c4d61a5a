package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/httputil"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/sortable"
	"golang.org/x/exp/slices"
)

// RegisterMarketItemRoutes registers the routes for market items with
// the RouterGroup that is passed.
func RegisterMarketItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMarketItemList)
		r.GET("", GetMarketItems)
		r.POST("", CreateMarketItems)
	}

	// MarketItem with ID
	{
		r.OPTIONS("/:id", OptionsMarketItemDetail)
		r.GET("/:id", GetMarketItem)
		r.PATCH("/:id", UpdateMarketItem)
		r.DELETE("/:id", DeleteMarketItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MarketItems
// @Success		204
// @Router			/v1/market-items [options]
func OptionsMarketItemList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MarketItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/market-items/{id} [options]
func OptionsMarketItemDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.MarketItem{})
}

// @Summary		Create market items
// @Description	Creates new market items
// @Tags			MarketItems
// @Accept			json
// @Produce		json
// @Success		201			{object}	MarketItemCreateResponse
// @Failure		400			{object}	MarketItemCreateResponse
// @Failure		500			{object}	MarketItemCreateResponse
// @Param			marketItems	body		[]MarketItemEditable	true	"MarketItems"
// @Router			/v1/market-items [post]
func CreateMarketItems(c *gin.Context) {
	var editables []MarketItemEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MarketItemCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	s := http.StatusCreated
	r := MarketItemCreateResponse{}

	for _, editable := range editables {
		item := editable.model(currentUser(c))

		err = models.DB.Create(&item).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newMarketItem(c, item)
		r.Data = append(r.Data, MarketItemResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Get market items
// @Description	Returns a list of market items
// @Tags			MarketItems
// @Produce		json
// @Success		200	{object}	MarketItemListResponse
// @Failure		400	{object}	MarketItemListResponse
// @Failure		500	{object}	MarketItemListResponse
// @Router			/v1/market-items [get]
// @Param			name			query	string	false	"Filter by name"
// @Param			stockStatus		query	string	false	"Filter by derived stock status"
// @Param			category		query	string	false	"Filter by category ID"
// @Param			search			query	string	false	"Search for this text in the name"
// @Param			sortBy			query	string	false	"Sort by this field"
// @Param			sortDirection	query	string	false	"Sort direction: asc, desc or none"
// @Param			offset			query	uint	false	"The offset of the first MarketItem returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of MarketItems to return. Defaults to 50."
func GetMarketItems(c *gin.Context) {
	var filter MarketItemQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Where("user_id = ?", currentUser(c)).
		Order("name ASC")

	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Category != "" {
		q = q.Where("category_id = ?", filter.Category)
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 MarketItems and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var items []models.MarketItem
	err := q.Find(&items).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MarketItemListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MarketItemListResponse{
			Error: &e,
		})
		return
	}

	data := make([]MarketItem, 0, len(items))
	for _, item := range items {
		r := newMarketItem(c, item)

		// The stock status only exists on the derived representation,
		// so it is filtered here instead of in the query
		if filter.StockStatus != "" && string(r.StockStatus) != filter.StockStatus {
			continue
		}

		data = append(data, r)
	}

	data = sortable.Sort(data, filter.SortBy, sortable.ParseDirection(filter.SortDirection))

	c.JSON(http.StatusOK, MarketItemListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get market item
// @Description	Returns a specific market item
// @Tags			MarketItems
// @Produce		json
// @Success		200	{object}	MarketItemResponse
// @Failure		400	{object}	MarketItemResponse
// @Failure		404	{object}	MarketItemResponse
// @Failure		500	{object}	MarketItemResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/market-items/{id} [get]
func GetMarketItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MarketItemResponse{
			Error: &s,
		})
		return
	}

	var item models.MarketItem
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&item, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MarketItemResponse{
			Error: &s,
		})
		return
	}

	data := newMarketItem(c, item)
	c.JSON(http.StatusOK, MarketItemResponse{Data: &data})
}

// @Summary		Update market item
// @Description	Update an existing market item. Only values to be updated need to be specified.
// @Tags			MarketItems
// @Accept			json
// @Produce		json
// @Success		200			{object}	MarketItemResponse
// @Failure		400			{object}	MarketItemResponse
// @Failure		404			{object}	MarketItemResponse
// @Failure		500			{object}	MarketItemResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			marketItem	body		MarketItemEditable	true	"MarketItem"
// @Router			/v1/market-items/{id} [patch]
func UpdateMarketItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MarketItemResponse{
			Error: &s,
		})
		return
	}

	var item models.MarketItem
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&item, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MarketItemResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MarketItemEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MarketItemResponse{
			Error: &s,
		})
		return
	}

	var data MarketItemEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MarketItemResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&item).Select("", updateFields...).Updates(data.model(item.UserID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MarketItemResponse{
			Error: &s,
		})
		return
	}

	r := newMarketItem(c, item)
	c.JSON(http.StatusOK, MarketItemResponse{Data: &r})
}

// @Summary		Delete market item
// @Description	Deletes a market item
// @Tags			MarketItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/market-items/{id} [delete]
func DeleteMarketItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var item models.MarketItem
	err = models.DB.Where("user_id = ?", currentUser(c)).First(&item, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&item).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
