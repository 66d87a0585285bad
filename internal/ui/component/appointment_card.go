package component

import (
	"html/template"
	"io"

	"turnos-web/internal/domain/entity"
	"turnos-web/internal/ui/locale"
	"turnos-web/internal/ui/theme"
)

// CardAction is a button on the appointment card. Actions carry no server
// behaviour; the SPA binds them through data-action.
type CardAction struct {
	Action string
	Label  string
}

var cardActions = []CardAction{
	{Action: "confirm", Label: "Confirmar asistencia"},
	{Action: "reschedule", Label: "Reprogramar"},
	{Action: "cancel", Label: "Cancelar"},
}

type appointmentCardView struct {
	PatientName string
	Specialty   string
	Doctor      string
	Date        string
	Time        string
	Room        string
	Badge       StatusBadge
	CardStyle   template.CSS
	BadgeStyle  template.CSS
	Actions     []CardAction
}

// RenderAppointmentCard writes the card markup for a single appointment
func RenderAppointmentCard(w io.Writer, a entity.Appointment) error {
	tokens := theme.Default()
	badge := BadgeFor(a.Status)

	view := appointmentCardView{
		PatientName: a.PatientName,
		Specialty:   a.Specialty,
		Doctor:      a.Doctor,
		Date:        locale.LongDate(a.Date),
		Time:        a.Time,
		Room:        a.Room,
		Badge:       badge,
		CardStyle: style(
			"background: "+tokens.Colors.Surface,
			"border-left: 4px solid "+badge.Color,
			"border-radius: "+tokens.Radii.MD,
			"box-shadow: "+tokens.Shadows.MD,
			"padding: "+tokens.Spacing.LG,
			"font-family: "+tokens.Typography.FontFamily,
		),
		BadgeStyle: style(
			"background: "+badge.Color,
			"color: "+tokens.Colors.White,
			"border-radius: "+tokens.Radii.Full,
			"padding: "+tokens.Spacing.XS+" "+tokens.Spacing.SM,
			"font-size: "+tokens.Typography.Sizes.SM,
		),
		Actions: cardActions,
	}

	return render(w, "appointment_card", view)
}
