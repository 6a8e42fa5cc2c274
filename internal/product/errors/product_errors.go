package producterrors

import (
	"net/http"

	"github.com/hoangson03112/VietXanh/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product id",
		http.StatusBadRequest,
	)

	ErrInvalidPrice = apperror.New(
		apperror.CodeInvalidInput,
		"Price must be a non-negative number",
		http.StatusBadRequest,
	)

	ErrImageUploadFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to upload product image",
		http.StatusInternalServerError,
	)

	ErrFeatureInactive = apperror.New(
		apperror.CodeInvalidInput,
		"Cannot feature an inactive product",
		http.StatusBadRequest,
	)

	ErrFeaturedLimit = apperror.New(
		apperror.CodeInvalidInput,
		"Maximum 4 featured products allowed",
		http.StatusBadRequest,
	)
)
