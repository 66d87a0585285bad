package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"turnos-web/internal/delivery/dto"
	"turnos-web/internal/usecase"
	"turnos-web/pkg/response"
	"turnos-web/pkg/validator"
)

type AppointmentHandler struct {
	appointmentCardUsecase usecase.AppointmentCardUsecase
	validator              *validator.CustomValidator
}

func NewAppointmentHandler(appointmentCardUsecase usecase.AppointmentCardUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentCardUsecase: appointmentCardUsecase,
		validator:              validator,
	}
}

func (h *AppointmentHandler) RenderCard(w http.ResponseWriter, r *http.Request) {
	var req dto.RenderAppointmentCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	body, err := h.appointmentCardUsecase.RenderCard(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAppointmentDate):
			response.ValidationError(w, map[string]string{
				"date": "date debe ser una fecha válida (AAAA-MM-DD o RFC 3339)",
			})
		default:
			response.InternalServerError(w, "Failed to render appointment card")
		}
		return
	}

	response.HTML(w, http.StatusOK, body)
}
