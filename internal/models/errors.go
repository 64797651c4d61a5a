package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Errors for specific resources. The database layer maps constraint
// violations to these so that API responses stay readable.
var (
	ErrEmailNotUnique             = errors.New("this email address is already registered")
	ErrCategoryNameNotUnique      = errors.New("the category name must be unique for its type")
	ErrInstallmentNumberNotUnique = errors.New("the installment number must be unique for the obligation")
	ErrCategoryInUse              = errors.New("the category cannot be deleted because it is still in use")
	ErrInstallmentCountInvalid    = errors.New("the number of installments must be at least 1")
	ErrAmountNotPositive          = errors.New("the amount must be larger than zero")
)
