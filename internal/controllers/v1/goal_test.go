package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/vchoerlle/zelofinanceiro-sub001/internal/controllers/v1"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/test"
)

func (suite *TestSuiteStandard) createTestGoal(editable v1.GoalEditable) v1.Goal {
	if editable.TargetValue.IsZero() {
		editable.TargetValue = decimal.NewFromInt(1000)
	}

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/goals", []v1.GoalEditable{editable}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.GoalCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestCreateGoal() {
	t := suite.T()

	goal := suite.createTestGoal(v1.GoalEditable{
		Name:        "Viagem de férias",
		TargetValue: decimal.NewFromInt(5000),
		SavedValue:  decimal.NewFromInt(1250),
	})

	assert.False(t, goal.Achieved)
	assert.True(t, goal.Progress.Equal(decimal.NewFromFloat(0.25)), "progress is %s", goal.Progress)
}

func (suite *TestSuiteStandard) TestCreateGoalInvalidTarget() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/goals", []v1.GoalEditable{
		{Name: "Sem meta", TargetValue: decimal.NewFromInt(-10)},
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateGoalDerivesAchieved() {
	t := suite.T()

	goal := suite.createTestGoal(v1.GoalEditable{
		Name:        "Reserva de emergência",
		TargetValue: decimal.NewFromInt(1000),
		SavedValue:  decimal.NewFromInt(400),
	})
	require.False(t, goal.Achieved)

	recorder := test.Request(t, http.MethodPatch, goal.Links.Self, map[string]any{
		"savedValue": "1000",
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.True(t, response.Data.Achieved)
	assert.True(t, response.Data.Progress.Equal(decimal.NewFromInt(1)))

	// Lowering the saved value reopens the goal
	recorder = test.Request(t, http.MethodPatch, goal.Links.Self, map[string]any{
		"savedValue": "999",
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.False(t, response.Data.Achieved)
}

func (suite *TestSuiteStandard) TestGetGoalsFilters() {
	t := suite.T()

	_ = suite.createTestGoal(v1.GoalEditable{Name: "Viagem", TargetValue: decimal.NewFromInt(100), SavedValue: decimal.NewFromInt(100)})
	_ = suite.createTestGoal(v1.GoalEditable{Name: "Carro novo", Description: "Trocar o carro"})

	tests := []struct {
		query string
		count int
	}{
		{"", 2},
		{"?achieved=true", 1},
		{"?achieved=false", 1},
		{"?search=trocar", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(t, http.MethodGet, "/v1/goals"+tt.query, nil, suite.headers)
		test.AssertHTTPStatus(t, &recorder, http.StatusOK)

		var response v1.GoalListResponse
		test.DecodeResponse(t, &recorder, &response)
		assert.Len(t, response.Data, tt.count, "wrong number of goals for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestDeleteGoal() {
	t := suite.T()
	goal := suite.createTestGoal(v1.GoalEditable{Name: "Viagem"})

	recorder := test.Request(t, http.MethodDelete, goal.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	recorder = test.Request(t, http.MethodGet, goal.Links.Self, nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}
