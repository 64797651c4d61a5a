package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name        string              `json:"name" example:"Alimentação" default:""`          // Name of the category
	Type        models.CategoryType `json:"type" example:"despesa" default:""`              // Area the category belongs to
	Color       string              `json:"color" example:"#f97316" default:""`             // Display color
	Icon        models.CategoryIcon `json:"icon" example:"utensils" default:"tag"`          // Icon identifier, falls back to the default icon
	Description string              `json:"description" example:"Restaurantes" default:""`  // Notes about the category
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID:      userID,
		Name:        editable.Name,
		Type:        editable.Type,
		Color:       editable.Color,
		Icon:        editable.Icon,
		Description: editable.Description,
	}
}

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category itself
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := requestURL(c)

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:        model.Name,
			Type:        model.Type,
			Color:       model.Color,
			Icon:        model.Icon,
			Description: model.Description,
		},
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name          string `form:"name" filterField:"false"`          // By name
	Type          string `form:"type"`                              // By type
	Description   string `form:"description" filterField:"false"`   // By description
	Search        string `form:"search" filterField:"false"`        // By string in name or description
	SortBy        string `form:"sortBy" filterField:"false"`        // Sort by this field
	SortDirection string `form:"sortDirection" filterField:"false"` // asc, desc or none
	Offset        uint   `form:"offset" filterField:"false"`        // The offset of the first Category returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`         // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		Type: models.CategoryType(f.Type),
	}
}
