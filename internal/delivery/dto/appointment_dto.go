package dto

// Request DTOs

// RenderAppointmentCardRequest carries the appointment record produced by an
// external data source. Every field except status is required.
type RenderAppointmentCardRequest struct {
	PatientName string `json:"patientName" validate:"required,max=120"`
	Specialty   string `json:"specialty" validate:"required,max=120"`
	Doctor      string `json:"doctor" validate:"required,max=120"`
	Date        string `json:"date" validate:"required,isodate"`
	Time        string `json:"time" validate:"required,max=20"`
	Room        string `json:"room" validate:"required,max=60"`
	Status      string `json:"status" validate:"omitempty,max=40"`
}
