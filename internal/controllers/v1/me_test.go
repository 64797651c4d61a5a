package v1_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/vchoerlle/zelofinanceiro-sub001/internal/controllers/v1"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/test"
)

func (suite *TestSuiteStandard) TestGetMe() {
	t := suite.T()

	recorder := test.Request(t, http.MethodGet, "/v1/me", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.MeResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, suite.user.Email, response.Data.Email)
	assert.False(t, response.Data.SetupCompleted)
}

func (suite *TestSuiteStandard) TestUpdateMe() {
	t := suite.T()

	recorder := test.Request(t, http.MethodPatch, "/v1/me", map[string]any{
		"name": "Maria da Silva",
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	recorder = test.Request(t, http.MethodPatch, "/v1/me", map[string]any{
		"phone": "+55 11 91234-5678",
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	recorder = test.Request(t, http.MethodGet, "/v1/me", nil, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.MeResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, "Maria da Silva", response.Data.Name, "fields not in the request body must stay unchanged")
	assert.Equal(t, "+55 11 91234-5678", response.Data.Phone)
}

func (suite *TestSuiteStandard) TestChangePassword() {
	t := suite.T()

	recorder := test.Request(t, http.MethodPost, "/v1/me/password", v1.ChangePasswordRequest{
		CurrentPassword: "morecoffee!",
		NewPassword:     "even more coffee!",
	}, suite.headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	recorder = test.Request(t, http.MethodPost, "/v1/auth/login", v1.LoginRequest{
		Email:    suite.user.Email,
		Password: "even more coffee!",
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestChangePasswordWrongCurrent() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/me/password", v1.ChangePasswordRequest{
		CurrentPassword: "not my password",
		NewPassword:     "even more coffee!",
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestChangePasswordTooShort() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/me/password", v1.ChangePasswordRequest{
		CurrentPassword: "morecoffee!",
		NewPassword:     "short",
	}, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUploadAvatarWithoutUploader() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/me/avatar", nil, suite.headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
