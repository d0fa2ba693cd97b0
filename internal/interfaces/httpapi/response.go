package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	"github.com/riskibarqy/lol-stats/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "lol-stats"
)

// envelope follows the Google JSON style guide: exactly one of data or
// error is set.
type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain       string `json:"domain"`
	Reason       string `json:"reason"`
	Message      string `json:"message"`
	Location     string `json:"location,omitempty"`
	LocationType string `json:"locationType,omitempty"`
}

// errorClass is the public face of one family of failures. A fixed message
// replaces err.Error() for classes whose detail must stay server side.
type errorClass struct {
	HTTPStatus int
	Reason     string
	Status     string
	Message    string
}

var (
	classInvalid     = errorClass{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT", ""}
	classUnavailable = errorClass{http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE", "match store is temporarily unavailable"}
	classInternal    = errorClass{http.StatusInternalServerError, "internalError", "INTERNAL", "internal server error"}
	classCancelled   = errorClass{statusClientClosedRequest, "cancelled", "CANCELLED", "request was cancelled"}
	classDeadline    = errorClass{http.StatusGatewayTimeout, "deadlineExceeded", "DEADLINE_EXCEEDED", "request deadline exceeded"}
)

// statusClientClosedRequest is the non-standard 499 paired with CANCELLED.
const statusClientClosedRequest = 499

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, envelope{APIVersion: googleAPIVersion, Data: data})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	class := mapError(ctx, err)
	msg := class.Message
	if msg == "" {
		msg = err.Error()
	}
	item := errorItem{Domain: errorDomain, Reason: class.Reason, Message: msg}

	var verr *matchstats.ValidationError
	if class == classInvalid && errors.As(err, &verr) {
		item.Location, item.LocationType = verr.Field, "parameter"
	}
	writeErrorBody(ctx, w, class, msg, item)
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeErrorBody(ctx, w, classInternal, classInternal.Message,
		errorItem{Domain: errorDomain, Reason: classInternal.Reason, Message: classInternal.Message})
}

func writeErrorBody(ctx context.Context, w http.ResponseWriter, class errorClass, msg string, item errorItem) {
	writeJSON(ctx, w, class.HTTPStatus, envelope{
		APIVersion: googleAPIVersion,
		Error: &errorBody{
			Code:    class.HTTPStatus,
			Message: msg,
			Status:  class.Status,
			Errors:  []errorItem{item},
		},
	})
}

func wrapInvalid(err error) error {
	return fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
}

func mapError(ctx context.Context, err error) errorClass {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, matchstats.ErrValidation):
		return classInvalid
	case errors.Is(err, context.Canceled):
		return classCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return classDeadline
	case errors.Is(err, usecase.ErrDependencyUnavailable), matchstats.IsStoreUnavailable(err):
		return classUnavailable
	default:
		return classInternal
	}
}
