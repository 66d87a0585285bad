package entity

import (
	"strings"
	"time"
)

// AppointmentStatus represents the status of an appointment ("turno")
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmado"
	AppointmentStatusPending   AppointmentStatus = "pendiente"
	AppointmentStatusCompleted AppointmentStatus = "completado"
)

var statusAliases = map[string]AppointmentStatus{
	"confirmado": AppointmentStatusConfirmed,
	"confirmed":  AppointmentStatusConfirmed,
	"pendiente":  AppointmentStatusPending,
	"pending":    AppointmentStatusPending,
	"completado": AppointmentStatusCompleted,
	"completed":  AppointmentStatusCompleted,
}

// Normalize maps Spanish or English spellings onto the known statuses.
// Values outside the set are returned unchanged.
func (s AppointmentStatus) Normalize() AppointmentStatus {
	if known, ok := statusAliases[strings.ToLower(strings.TrimSpace(string(s)))]; ok {
		return known
	}
	return s
}

// IsKnown reports whether the status is one of confirmado, pendiente or completado
func (s AppointmentStatus) IsKnown() bool {
	_, ok := statusAliases[strings.ToLower(strings.TrimSpace(string(s)))]
	return ok
}

// Appointment is the read-only record rendered by the appointment card.
// It is produced by an external data source; this service never stores it.
type Appointment struct {
	PatientName string            `json:"patientName"`
	Specialty   string            `json:"specialty"`
	Doctor      string            `json:"doctor"`
	Date        time.Time         `json:"date"`
	Time        string            `json:"time"`
	Room        string            `json:"room"`
	Status      AppointmentStatus `json:"status"`
}
