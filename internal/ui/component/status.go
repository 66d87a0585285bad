package component

import (
	"turnos-web/internal/domain/entity"
	"turnos-web/internal/ui/theme"
)

// StatusBadge is the label and color an appointment status renders with
type StatusBadge struct {
	Status entity.AppointmentStatus
	Label  string
	Token  theme.ColorToken
	Color  string
}

// BadgeFor maps a status onto its badge. Statuses outside
// confirmado/pendiente/completado fall back to the confirmado badge.
func BadgeFor(status entity.AppointmentStatus) StatusBadge {
	status = status.Normalize()
	colors := theme.Default().Colors

	badge := StatusBadge{
		Status: entity.AppointmentStatusConfirmed,
		Label:  StatusLabel(status),
		Token:  StatusColor(status),
	}
	if status.IsKnown() {
		badge.Status = status
	}
	badge.Color = colors.Value(badge.Token)
	return badge
}

func StatusColor(status entity.AppointmentStatus) theme.ColorToken {
	switch status.Normalize() {
	case entity.AppointmentStatusPending:
		return theme.ColorAccentRed
	case entity.AppointmentStatusCompleted:
		return theme.ColorSuccess
	default:
		return theme.ColorAccent
	}
}

func StatusLabel(status entity.AppointmentStatus) string {
	switch status.Normalize() {
	case entity.AppointmentStatusPending:
		return "Pendiente"
	case entity.AppointmentStatusCompleted:
		return "Completado"
	default:
		return "Confirmado"
	}
}
