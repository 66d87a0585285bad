package handler

import (
	"errors"
	"net/http"
	"net/url"

	"turnos-web/internal/delivery/dto"
	"turnos-web/internal/delivery/http/middleware"
	"turnos-web/internal/usecase"
	"turnos-web/pkg/response"
	"turnos-web/pkg/validator"

	"github.com/spf13/cast"
)

type ComponentHandler struct {
	componentUsecase usecase.ComponentUsecase
	validator        *validator.CustomValidator
}

func NewComponentHandler(componentUsecase usecase.ComponentUsecase, validator *validator.CustomValidator) *ComponentHandler {
	return &ComponentHandler{
		componentUsecase: componentUsecase,
		validator:        validator,
	}
}

func (h *ComponentHandler) RenderHeader(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r.URL.Query())
	req := dto.RenderHeaderRequest{
		Menu:   q.String("menu"),
		Scroll: q.Float64("scroll"),
		Hidden: q.Bool("hidden"),
		Active: q.String("active"),
	}
	if len(q.errors) > 0 {
		response.ValidationError(w, q.errors)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	body, err := h.componentUsecase.RenderHeader(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to render header")
		return
	}

	response.HTML(w, http.StatusOK, body)
}

func (h *ComponentHandler) RenderSpinner(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r.URL.Query())
	req := dto.RenderSpinnerRequest{
		Variant:          q.String("variant"),
		Message:          q.String("message"),
		Mode:             q.String("mode"),
		ShowProgress:     q.Bool("showProgress"),
		Progress:         q.Int("progress"),
		FullScreen:       q.Bool("fullScreen"),
		Background:       q.String("background"),
		TextColor:        q.String("textColor"),
		SpinnerColor:     q.String("spinnerColor"),
		SpinnerBaseColor: q.String("spinnerBaseColor"),
	}
	if req.Variant == "" {
		req.Variant = usecase.SpinnerVariantDark
	}
	if len(q.errors) > 0 {
		response.ValidationError(w, q.errors)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clientID, _ := middleware.GetClientIDFromContext(r.Context())

	body, err := h.componentUsecase.RenderSpinner(r.Context(), clientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownSpinnerVariant):
			response.BadRequest(w, "Unknown spinner variant")
		default:
			response.InternalServerError(w, "Failed to render spinner")
		}
		return
	}

	response.HTML(w, http.StatusOK, body)
}

// queryReader converts query parameters and records the ones that fail to
// parse, keyed by parameter name.
type queryReader struct {
	values url.Values
	errors map[string]string
}

func newQueryReader(values url.Values) *queryReader {
	return &queryReader{values: values, errors: make(map[string]string)}
}

func (q *queryReader) String(key string) string {
	return q.values.Get(key)
}

func (q *queryReader) Bool(key string) bool {
	raw := q.values.Get(key)
	if raw == "" {
		return false
	}
	v, err := cast.ToBoolE(raw)
	if err != nil {
		q.errors[key] = key + " debe ser un booleano"
	}
	return v
}

func (q *queryReader) Int(key string) int {
	raw := q.values.Get(key)
	if raw == "" {
		return 0
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		q.errors[key] = key + " debe ser un número entero"
	}
	return v
}

func (q *queryReader) Float64(key string) float64 {
	raw := q.values.Get(key)
	if raw == "" {
		return 0
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		q.errors[key] = key + " debe ser un número"
	}
	return v
}
