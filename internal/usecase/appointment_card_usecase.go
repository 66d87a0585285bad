package usecase

import (
	"bytes"
	"context"
	"errors"

	"turnos-web/internal/converter"
	"turnos-web/internal/delivery/dto"
	"turnos-web/internal/ui/component"
	"turnos-web/pkg/validator"

	"github.com/sirupsen/logrus"
)

var ErrInvalidAppointmentDate = errors.New("invalid appointment date")

type AppointmentCardUsecase interface {
	RenderCard(ctx context.Context, req *dto.RenderAppointmentCardRequest) ([]byte, error)
}

type appointmentCardUsecase struct {
	log *logrus.Logger
}

func NewAppointmentCardUsecase(log *logrus.Logger) AppointmentCardUsecase {
	return &appointmentCardUsecase{log: log}
}

// RenderCard renders the card for a validated request. Unknown statuses are
// not an error: they render with the confirmado badge.
func (u *appointmentCardUsecase) RenderCard(ctx context.Context, req *dto.RenderAppointmentCardRequest) ([]byte, error) {
	appointment, err := converter.RequestToAppointment(req)
	if err != nil {
		if errors.Is(err, validator.ErrInvalidDate) {
			return nil, ErrInvalidAppointmentDate
		}
		return nil, err
	}

	if !appointment.Status.IsKnown() && appointment.Status != "" {
		u.log.Debugf("Unrecognised appointment status %q rendered as confirmado", appointment.Status)
	}

	var buf bytes.Buffer
	if err := component.RenderAppointmentCard(&buf, *appointment); err != nil {
		u.log.Errorf("Failed to render appointment card: %+v", err)
		return nil, err
	}

	return buf.Bytes(), nil
}
