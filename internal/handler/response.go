package handler

// RESPONSE HELPERS:
// These functions standardise how we send JSON responses and errors.
//
// CONSISTENT ERROR FORMAT:
// Every error response from the API has the same shape:
//
//	{"error": "conflict", "message": "email already registered"}
//
// Internal errors additionally carry a "detail" field with the underlying
// error text. This API serves an internal/administrative surface where that
// operability beats opacity — but the detail is the wrapped error message
// only, never a stack trace and never the signing secret.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dishdelight/backend/internal/apperror"
)

// ErrorResponse is the standard error format returned by all API endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`            // Machine-readable error type (e.g. "conflict")
	Message string `json:"message"`          // Human-readable description
	Detail  string `json:"detail,omitempty"` // Underlying error text (internal errors only)
}

// writeJSON sends a JSON response with the given status code.
//
// HEADER ORDER MATTERS:
// Headers and the status code must be set BEFORE writing the body. Once
// Encode calls w.Write, the headers are sent and any later changes are
// silently ignored.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent — all we can do is log it.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to the appropriate HTTP status code and sends it.
//
// This is the single place where apperror sentinels meet HTTP. The service
// layer returns apperror.ErrConflict, ErrValidation, etc.; errors.Is walks
// the wrapped chain and picks the status here. The service itself never
// knows a status code exists.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError

	// errors.As walks the chain and fills appErr if it finds an *AppError.
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest // 400
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrInvalidCredentials):
			status = http.StatusUnauthorized // 401
			errorType = "invalid_credentials"
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized // 401
			errorType = "unauthorized"
		case errors.Is(err, apperror.ErrForbidden):
			status = http.StatusForbidden // 403
			errorType = "forbidden"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound // 404
			errorType = "not_found"
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict // 409
			errorType = "conflict"
		}

		resp := ErrorResponse{
			Error:   errorType,
			Message: appErr.Message,
		}
		if status == http.StatusInternalServerError {
			// The wrapped cause, for operators. No SQL text ends up here —
			// the repository wraps driver errors with plain prefixes.
			if cause := errors.Unwrap(appErr.Err); cause != nil {
				resp.Detail = cause.Error()
			}
		}
		writeJSON(w, status, resp)
		return
	}

	// Unknown error — a generic 500 with the error text as detail.
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
		Detail:  err.Error(),
	})
}
