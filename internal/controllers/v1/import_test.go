package v1_test

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/vchoerlle/zelofinanceiro-sub001/internal/controllers/v1"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/test"
)

func (suite *TestSuiteStandard) createTestImportRule(editable v1.ImportRuleEditable) v1.ImportRule {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import/rules", editable, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ImportRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestImportRules() {
	t := suite.T()

	transport := suite.createTestCategory(v1.CategoryEditable{Name: "Transporte"})
	food := suite.createTestCategory(v1.CategoryEditable{Name: "Alimentação"})

	_ = suite.createTestImportRule(v1.ImportRuleEditable{Priority: 1, Pattern: "*uber*", CategoryID: transport.ID})
	rule := suite.createTestImportRule(v1.ImportRuleEditable{Priority: 10, Pattern: "ifood*", CategoryID: food.ID})

	// Rules are returned highest priority first
	recorder := test.Request(t, http.MethodGet, "/v1/import/rules", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ImportRuleListResponse
	test.DecodeResponse(t, &recorder, &response)
	require.Len(t, response.Data, 2)
	assert.Equal(t, "ifood*", response.Data[0].Pattern)

	recorder = test.Request(t, http.MethodPatch, rule.Links.Self, map[string]any{
		"priority": 0,
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	recorder = test.Request(t, http.MethodGet, "/v1/import/rules", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	test.DecodeResponse(t, &recorder, &response)
	require.Len(t, response.Data, 2)
	assert.Equal(t, "*uber*", response.Data[0].Pattern)

	recorder = test.Request(t, http.MethodDelete, rule.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	recorder = test.Request(t, http.MethodGet, "/v1/import/rules", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	test.DecodeResponse(t, &recorder, &response)
	assert.Len(t, response.Data, 1)
}

func (suite *TestSuiteStandard) TestImportRuleWithoutCategory() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import/rules", v1.ImportRuleEditable{
		Priority: 1,
		Pattern:  "*uber*",
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAnalyzeStatementWithoutParser() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import/analyze", nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestConfirmImportAnalyses() {
	t := suite.T()

	transport := suite.createTestCategory(v1.CategoryEditable{Name: "Transporte"})
	food := suite.createTestCategory(v1.CategoryEditable{Name: "Alimentação"})

	rows := []models.ImportAnalysis{
		{
			UserID:      suite.user.ID,
			Source:      "extrato-janeiro.pdf",
			Description: "UBER *TRIP",
			Amount:      decimal.NewFromFloat(24.90),
			Date:        time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
			Type:        models.TransactionDespesa,
			CategoryID:  &transport.ID,
		},
		{
			UserID:      suite.user.ID,
			Source:      "extrato-janeiro.pdf",
			Description: "IFOOD *RESTAURANTE",
			Amount:      decimal.NewFromFloat(58.50),
			Date:        time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
			Type:        models.TransactionDespesa,
		},
	}
	for i := range rows {
		require.Nil(t, models.DB.Create(&rows[i]).Error)
	}

	recorder := test.Request(t, http.MethodPost, "/v1/import/confirm", v1.ImportConfirmRequest{
		Rows: []v1.ImportConfirmRow{
			{ID: rows[0].ID},
			{ID: rows[1].ID, CategoryID: &food.ID},
		},
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusCreated)

	var response v1.ImportConfirmResponse
	test.DecodeResponse(t, &recorder, &response)
	require.Len(t, response.Data, 2)

	assert.Equal(t, "UBER *TRIP", response.Data[0].Description)
	require.NotNil(t, response.Data[0].CategoryID)
	assert.Equal(t, transport.ID, *response.Data[0].CategoryID)

	// The per row override wins over the analysis
	require.NotNil(t, response.Data[1].CategoryID)
	assert.Equal(t, food.ID, *response.Data[1].CategoryID)

	// Confirmed rows no longer show up
	recorder = test.Request(t, http.MethodGet, "/v1/import/analyses", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var analyses v1.ImportAnalysisListResponse
	test.DecodeResponse(t, &recorder, &analyses)
	assert.Empty(t, analyses.Data)

	// Confirming the same row again fails
	recorder = test.Request(t, http.MethodPost, "/v1/import/confirm", v1.ImportConfirmRequest{
		Rows: []v1.ImportConfirmRow{{ID: rows[0].ID}},
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestConfirmImportAnalysesEmpty() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import/confirm", v1.ImportConfirmRequest{}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetImportAnalyses() {
	t := suite.T()

	analysis := models.ImportAnalysis{
		UserID:      suite.user.ID,
		Source:      "extrato.pdf",
		Description: "NETFLIX.COM",
		Amount:      decimal.NewFromFloat(39.90),
		Date:        time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Type:        models.TransactionDespesa,
	}
	require.Nil(t, models.DB.Create(&analysis).Error)

	recorder := test.Request(t, http.MethodGet, "/v1/import/analyses", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ImportAnalysisListResponse
	test.DecodeResponse(t, &recorder, &response)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "NETFLIX.COM", response.Data[0].Description)
	assert.False(t, response.Data[0].Confirmed)

	// Another user sees nothing
	_, otherHeaders := test.CreateUser(t)
	recorder = test.Request(t, http.MethodGet, "/v1/import/analyses", nil, otherHeaders)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	test.DecodeResponse(t, &recorder, &response)
	assert.Empty(t, response.Data)
}
