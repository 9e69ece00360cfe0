package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/drinklog/internal/error_values"
	"github.com/limbo/drinklog/pkg/httputil"
)

var badRequestErrors = []error{
	errorvalues.ErrValidation,
	errorvalues.ErrInvalidRange,
	errorvalues.ErrInvalidYear,
	errorvalues.ErrInvalidWeek,
	errorvalues.ErrInvalidMonth,
	errorvalues.ErrUnknownMode,
	errorvalues.ErrRecordDateNotAllowed,
}

var notFoundErrors = []error{
	errorvalues.ErrRecordNotFound,
	errorvalues.ErrGoalNotFound,
	errorvalues.ErrUserNotFound,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeServiceError maps a service error to a response. Details are only exposed for client errors.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case isAny(err, badRequestErrors):
		logger.Error(op+" error: bad request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case isAny(err, notFoundErrors):
		logger.Error(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "not found", err)
	case errors.Is(err, errorvalues.ErrUserExists):
		logger.Error(op + " error: conflict")
		httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		logger.Error(op + " error: wrong credentials")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}
