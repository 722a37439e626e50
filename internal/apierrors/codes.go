package apierrors

import "net/http"

// Error codes used across the portal. The taxonomy mirrors how failures are
// surfaced: unauthenticated always redirects on pages, validation failures
// never reach the backend, and mutation rejections carry the backend message.
const (
	CodeUnauthenticated  = "core:unauthenticated"
	CodeValidationFailed = "core:validation_failed"
	CodeNotFound         = "core:not_found"
	CodeInternalError    = "core:internal_error"

	CodeRateLimited = "core:rate_limited"

	CodeBackendUnavailable = "backend:unavailable"
	CodeMutationRejected   = "backend:mutation_rejected"
)

var coreErrors = []ErrorCode{
	{Code: CodeUnauthenticated, Message: "Admin authentication required", HTTPStatus: http.StatusUnauthorized},
	{Code: CodeValidationFailed, Message: "Request validation failed", HTTPStatus: http.StatusBadRequest},
	{Code: CodeNotFound, Message: "Resource not found", HTTPStatus: http.StatusNotFound},
	{Code: CodeInternalError, Message: "Internal server error", HTTPStatus: http.StatusInternalServerError},
	{Code: CodeRateLimited, Message: "Too many requests", HTTPStatus: http.StatusTooManyRequests},

	{Code: CodeBackendUnavailable, Message: "Backend service unavailable", HTTPStatus: http.StatusBadGateway},
	{Code: CodeMutationRejected, Message: "Backend rejected the request", HTTPStatus: http.StatusUnprocessableEntity},
}

func init() {
	for _, e := range coreErrors {
		Registry.Register(e)
	}
}
