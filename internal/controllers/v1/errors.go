package v1

import (
	"errors"
	"net/http"

	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrCategoryInUse) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")

// Auth errors
var (
	errCredentialsInvalid   = errors.New("email or password is incorrect")
	errPasswordTooShort     = errors.New("the password must have at least 8 characters")
	errResetTokenInvalid    = errors.New("the password reset token is invalid or expired")
	errEmailRequired        = errors.New("the email parameter must be set")
	errAvatarFileRequired   = errors.New("you must send a file to this endpoint")
	errUploaderNotSet       = errors.New("file uploads are not configured on this server")
	errCurrentPasswordWrong = errors.New("the current password is incorrect")
)

// Import errors
var (
	errNoFilePost     = errors.New("you must send a file to this endpoint")
	errParserNotSet   = errors.New("statement imports are not configured on this server")
	errNothingToApply = errors.New("no analysis rows were selected")
)

// Installment errors
var errInstallmentStatusInvalid = errors.New("the specified installment status is invalid")
