package contacterrors

import (
	"net/http"

	"github.com/hoangson03112/VietXanh/internal/pkg/apperror"
)

var (
	ErrContactNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contact message not found",
		http.StatusNotFound,
	)

	ErrInvalidContactID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid contact message id",
		http.StatusBadRequest,
	)

	ErrEmptyOrder = apperror.New(
		apperror.CodeInvalidInput,
		"Cannot place an order with an empty cart",
		http.StatusBadRequest,
	)

	ErrInvalidOrderLine = apperror.New(
		apperror.CodeInvalidInput,
		"Order contains an invalid line item",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of NEW, READ, RESOLVED",
		http.StatusBadRequest,
	)

	ErrSubmitFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to save contact message",
		http.StatusInternalServerError,
	)
)
