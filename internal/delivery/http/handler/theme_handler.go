package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"turnos-web/internal/delivery/dto"
	"turnos-web/internal/delivery/http/middleware"
	"turnos-web/internal/domain/entity"
	"turnos-web/internal/usecase"
	"turnos-web/pkg/response"
	"turnos-web/pkg/validator"
)

type ThemeHandler struct {
	themePreferenceUsecase usecase.ThemePreferenceUsecase
	validator              *validator.CustomValidator
}

func NewThemeHandler(themePreferenceUsecase usecase.ThemePreferenceUsecase, validator *validator.CustomValidator) *ThemeHandler {
	return &ThemeHandler{
		themePreferenceUsecase: themePreferenceUsecase,
		validator:              validator,
	}
}

func (h *ThemeHandler) GetTokens(w http.ResponseWriter, r *http.Request) {
	tokens := h.themePreferenceUsecase.GetTokens(r.Context())
	response.Success(w, http.StatusOK, "Theme tokens retrieved successfully", tokens)
}

func (h *ThemeHandler) GetPreference(w http.ResponseWriter, r *http.Request) {
	clientID, _ := middleware.GetClientIDFromContext(r.Context())

	preference, err := h.themePreferenceUsecase.GetPreference(r.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrClientIDRequired):
			response.BadRequest(w, "Client id is required")
		default:
			response.InternalServerError(w, "Failed to get theme preference")
		}
		return
	}

	response.Success(w, http.StatusOK, "Theme preference retrieved successfully", preference)
}

func (h *ThemeHandler) UpdatePreference(w http.ResponseWriter, r *http.Request) {
	clientID, _ := middleware.GetClientIDFromContext(r.Context())

	var req dto.UpdateThemePreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	preference, err := h.themePreferenceUsecase.UpdatePreference(r.Context(), clientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrClientIDRequired):
			response.BadRequest(w, "Client id is required")
		case errors.Is(err, entity.ErrInvalidThemeMode):
			response.BadRequest(w, "Invalid theme mode")
		default:
			response.InternalServerError(w, "Failed to update theme preference")
		}
		return
	}

	response.Success(w, http.StatusOK, "Theme preference updated successfully", preference)
}
