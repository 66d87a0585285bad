package dto

import "time"

// Request DTOs

type UpdateThemePreferenceRequest struct {
	Mode string `json:"mode" validate:"required,oneof=light dark"`
}

// Response DTOs

type ThemePreferenceResponse struct {
	Mode      string     `json:"mode"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
