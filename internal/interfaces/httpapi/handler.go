package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	"github.com/riskibarqy/lol-stats/internal/platform/logging"
	"github.com/riskibarqy/lol-stats/internal/usecase"
)

type Handler struct {
	entityService       *usecase.EntityService
	correlationService  *usecase.CorrelationService
	headToHeadService   *usecase.HeadToHeadService
	matchHistoryService *usecase.MatchHistoryService
	catalogService      *usecase.CatalogService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	entityService *usecase.EntityService,
	correlationService *usecase.CorrelationService,
	headToHeadService *usecase.HeadToHeadService,
	matchHistoryService *usecase.MatchHistoryService,
	catalogService *usecase.CatalogService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("query"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		entityService:       entityService,
		correlationService:  correlationService,
		headToHeadService:   headToHeadService,
		matchHistoryService: matchHistoryService,
		catalogService:      catalogService,
		logger:              logger,
		validator:           v,
	}
}

// validateRequest reports the first failed rule as "<query param> <rule>".
func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	err := h.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		return wrapInvalid(&matchstats.ValidationError{Field: fe.Field(), Reason: "failed " + rule})
	}
	return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
}

// logFailure logs client errors and cancellations at warn and everything
// else at error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if errors.Is(err, usecase.ErrInvalidInput) || matchstats.IsContextError(err) {
		h.logger.WarnContext(ctx, msg, args...)
		return
	}
	h.logger.ErrorContext(ctx, msg, args...)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Healthz")
	defer span.End()

	if err := h.catalogService.Ping(ctx); err != nil {
		h.logFailure(ctx, "health check failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
