package transport

import (
	"errors"
	"net/http"

	"saral-shop/internal/domain"
	"saral-shop/internal/middleware"
	"saral-shop/internal/repository"

	"go.uber.org/zap"
)

// respondServiceError maps a service-layer error onto an HTTP status:
// validation failures are client errors, missing keys are 404, unique
// constraint conflicts are 409, and anything else is a datastore or
// collaborator failure logged with its operation context before
// surfacing as a 500. Dependency failures are never retried here.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, operation string, err error, fields ...zap.Field) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		middleware.RespondWithError(w, http.StatusBadRequest, validationErr.Error())

	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrCartItemNotFound),
		errors.Is(err, repository.ErrCategoryNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrReviewProductMissing):
		middleware.RespondWithError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, repository.ErrProductAlreadyExists),
		errors.Is(err, repository.ErrCategoryAlreadyExists),
		errors.Is(err, repository.ErrOccasionAlreadyExists),
		errors.Is(err, repository.ErrUserAlreadyExists):
		middleware.RespondWithError(w, http.StatusConflict, err.Error())

	default:
		logger.Error("Operation failed",
			append(fields, zap.String("operation", operation), zap.Error(err))...,
		)
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
