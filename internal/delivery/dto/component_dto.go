package dto

// Request DTOs, bound from query parameters

type RenderHeaderRequest struct {
	Menu   string  `json:"menu" validate:"omitempty,oneof=open closed"`
	Scroll float64 `json:"scroll" validate:"gte=0"`
	Hidden bool    `json:"hidden"`
	Active string  `json:"active" validate:"omitempty,max=200"`
}

type RenderSpinnerRequest struct {
	Variant          string `json:"variant" validate:"required,oneof=dark unified"`
	Message          string `json:"message" validate:"omitempty,max=120"`
	Mode             string `json:"mode" validate:"omitempty,oneof=light dark"`
	ShowProgress     bool   `json:"showProgress"`
	Progress         int    `json:"progress" validate:"gte=0"`
	FullScreen       bool   `json:"fullScreen"`
	Background       string `json:"background" validate:"omitempty,iscolor"`
	TextColor        string `json:"textColor" validate:"omitempty,iscolor"`
	SpinnerColor     string `json:"spinnerColor" validate:"omitempty,iscolor"`
	SpinnerBaseColor string `json:"spinnerBaseColor" validate:"omitempty,iscolor"`
}
