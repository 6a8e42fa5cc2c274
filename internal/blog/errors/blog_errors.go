package blogerrors

import (
	"net/http"

	"github.com/hoangson03112/VietXanh/internal/pkg/apperror"
)

var (
	ErrBlogNotFound = apperror.New(
		apperror.CodeNotFound,
		"Blog post not found",
		http.StatusNotFound,
	)

	ErrInvalidBlogID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid blog id",
		http.StatusBadRequest,
	)

	ErrImageUploadFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to upload blog image",
		http.StatusInternalServerError,
	)
)
