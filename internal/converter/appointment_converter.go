package converter

import (
	"fmt"
	"strings"

	"turnos-web/internal/delivery/dto"
	"turnos-web/internal/domain/entity"
	"turnos-web/pkg/validator"
)

// RequestToAppointment converts a validated card request into an Appointment
func RequestToAppointment(req *dto.RenderAppointmentCardRequest) (*entity.Appointment, error) {
	if req == nil {
		return nil, nil
	}

	date, err := validator.ParseISODate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("appointment date %q: %w", req.Date, err)
	}

	return &entity.Appointment{
		PatientName: strings.TrimSpace(req.PatientName),
		Specialty:   strings.TrimSpace(req.Specialty),
		Doctor:      strings.TrimSpace(req.Doctor),
		Date:        date,
		Time:        req.Time,
		Room:        strings.TrimSpace(req.Room),
		Status:      entity.AppointmentStatus(req.Status).Normalize(),
	}, nil
}

// ThemePreferenceToResponse converts a stored preference. A nil preference
// yields the default mode.
func ThemePreferenceToResponse(preference *entity.ThemePreference) *dto.ThemePreferenceResponse {
	if preference == nil {
		return &dto.ThemePreferenceResponse{Mode: string(entity.DefaultThemeMode)}
	}

	updatedAt := preference.UpdatedAt
	return &dto.ThemePreferenceResponse{
		Mode:      string(preference.Mode),
		UpdatedAt: &updatedAt,
	}
}
