package v1_test

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/vchoerlle/zelofinanceiro-sub001/internal/controllers/v1"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/test"
)

func (suite *TestSuiteStandard) createTestCategory(editable v1.CategoryEditable) v1.Category {
	if editable.Type == "" {
		editable.Type = models.CategoryDespesa
	}

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", []v1.CategoryEditable{editable}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestCreateCategories() {
	t := suite.T()

	recorder := test.Request(t, http.MethodPost, "/v1/categories", []v1.CategoryEditable{
		{Name: "Alimentação", Type: models.CategoryDespesa, Icon: models.IconFood},
		{Name: "Broken", Type: "not-a-type"},
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(t, &recorder, &response)
	require.Len(t, response.Data, 2)

	assert.NotNil(t, response.Data[0].Data)
	assert.Nil(t, response.Data[0].Error)

	require.NotNil(t, response.Data[1].Error)
	assert.Equal(t, models.ErrCategoryTypeInvalid.Error(), *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	t := suite.T()

	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Mercado", Type: models.CategoryMercado})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Lazer", Type: models.CategoryDespesa})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Saúde", Type: models.CategoryDespesa})

	recorder := test.Request(t, http.MethodGet, "/v1/categories", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Len(t, response.Data, 3)
	assert.Equal(t, int64(3), response.Pagination.Total)

	recorder = test.Request(t, http.MethodGet, "/v1/categories?type=despesa", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	test.DecodeResponse(t, &recorder, &response)
	assert.Len(t, response.Data, 2)
}

func (suite *TestSuiteStandard) TestGetCategoriesSorted() {
	t := suite.T()

	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Lazer"})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Água"})

	recorder := test.Request(t, http.MethodGet, "/v1/categories?sortBy=name&sortDirection=desc", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(t, &recorder, &response)
	require.Len(t, response.Data, 2)
	assert.Equal(t, "Lazer", response.Data[0].Name)
	assert.Equal(t, "Água", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestGetCategory() {
	t := suite.T()
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Transporte"})

	recorder := test.Request(t, http.MethodGet, category.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, "Transporte", response.Data.Name)
}

func (suite *TestSuiteStandard) TestGetCategoryNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories/4e743e94-6a4b-44d6-aba5-d77c87103ff7", nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesScopedToUser() {
	t := suite.T()
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Transporte"})

	_, otherHeaders := test.CreateUser(t)

	recorder := test.Request(t, http.MethodGet, category.Links.Self, nil, otherHeaders)
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)

	recorder = test.Request(t, http.MethodGet, "/v1/categories", nil, otherHeaders)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Empty(t, response.Data)
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	t := suite.T()
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Transporte", Color: "#eab308"})

	recorder := test.Request(t, http.MethodPatch, category.Links.Self, map[string]any{
		"color": "#000000",
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, "#000000", response.Data.Color)
	assert.Equal(t, "Transporte", response.Data.Name, "fields not in the request body must stay unchanged")
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	t := suite.T()
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Transporte"})

	recorder := test.Request(t, http.MethodDelete, category.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	recorder = test.Request(t, http.MethodGet, category.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategoryInUse() {
	t := suite.T()
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Alimentação"})

	for i := range 3 {
		recorder := test.Request(t, http.MethodPost, "/v1/expenses", []v1.ExpenseEditable{
			{Description: fmt.Sprintf("Mercado %d", i), Amount: decimal.NewFromInt(50), CategoryID: &category.ID},
		}, suite.headers)
		test.AssertHTTPStatus(t, &recorder, http.StatusCreated)
	}

	recorder := test.Request(t, http.MethodDelete, category.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusConflict)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(t, &recorder, &response)
	assert.Contains(t, response.Error, "3 despesas")

	// The category must still be there
	recorder = test.Request(t, http.MethodGet, category.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)
}
