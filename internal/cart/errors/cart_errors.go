package carterrors

import (
	"net/http"

	"github.com/hoangson03112/VietXanh/internal/pkg/apperror"
)

var (
	ErrInvalidQty = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be at least 1",
		http.StatusBadRequest,
	)

	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in cart",
		http.StatusNotFound,
	)

	// Storage failures are recoverable from the client's point of view: the
	// action failed, the cart did not, retry is fine.
	ErrStorageUnavailable = apperror.New(
		apperror.CodeInternalError,
		"Cart storage is temporarily unavailable, please try again",
		http.StatusInternalServerError,
	)
)
