package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// MarketItemEditable represents all user configurable parameters
type MarketItemEditable struct {
	Name            string          `json:"name" example:"Arroz" default:""`
	Unit            string          `json:"unit" example:"kg" default:""`     // Unit of measurement, e.g. kg, un, L
	CurrentQuantity decimal.Decimal `json:"currentQuantity" example:"2"`      // Quantity in stock
	IdealQuantity   decimal.Decimal `json:"idealQuantity" example:"5"`        // Quantity to keep in stock
	LastPrice       decimal.Decimal `json:"lastPrice" example:"28.90"`        // Price paid on the last purchase
	CategoryID      *uuid.UUID      `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
}

func (editable MarketItemEditable) model(userID uuid.UUID) models.MarketItem {
	return models.MarketItem{
		UserID:          userID,
		Name:            editable.Name,
		Unit:            editable.Unit,
		CurrentQuantity: editable.CurrentQuantity,
		IdealQuantity:   editable.IdealQuantity,
		LastPrice:       editable.LastPrice,
		CategoryID:      editable.CategoryID,
	}
}

type MarketItemLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/market-items/6c32c985-8b92-4a4c-9b9e-e7ac12bbf57f"` // The market item itself
}

type MarketItem struct {
	models.DefaultModel
	MarketItemEditable

	// Derived from the quantities
	StockStatus models.StockStatus `json:"stockStatus" example:"estoque_baixo"` // sem_estoque, estoque_baixo, estoque_medio or estoque_adequado

	Links MarketItemLinks `json:"links"`
}

func newMarketItem(c *gin.Context, model models.MarketItem) MarketItem {
	url := requestURL(c)

	return MarketItem{
		DefaultModel: model.DefaultModel,
		MarketItemEditable: MarketItemEditable{
			Name:            model.Name,
			Unit:            model.Unit,
			CurrentQuantity: model.CurrentQuantity,
			IdealQuantity:   model.IdealQuantity,
			LastPrice:       model.LastPrice,
			CategoryID:      model.CategoryID,
		},
		StockStatus: model.StockStatus(),
		Links: MarketItemLinks{
			Self: fmt.Sprintf("%s/v1/market-items/%s", url, model.ID),
		},
	}
}

type MarketItemListResponse struct {
	Data       []MarketItem `json:"data"`                                                          // List of MarketItems
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type MarketItemCreateResponse struct {
	Data  []MarketItemResponse `json:"data"`                                                          // List of the created MarketItems or their respective error
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *MarketItemCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, MarketItemResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MarketItemResponse struct {
	Data  *MarketItem `json:"data"`                                                          // Data for the MarketItem
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MarketItemQueryFilter struct {
	Name          string `form:"name" filterField:"false"`          // By name
	StockStatus   string `form:"stockStatus" filterField:"false"`   // By derived stock status
	Category      string `form:"category" filterField:"false"`      // By category ID
	Search        string `form:"search" filterField:"false"`        // By string in name
	SortBy        string `form:"sortBy" filterField:"false"`        // Sort by this field
	SortDirection string `form:"sortDirection" filterField:"false"` // asc, desc or none
	Offset        uint   `form:"offset" filterField:"false"`        // The offset of the first MarketItem returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`         // Maximum number of MarketItems to return. Defaults to 50.
}
