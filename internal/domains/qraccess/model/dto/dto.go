package dto

type GenerateTokenRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
	StaffID    string `json:"staff_id"    validate:"required,uuid"`
}

type GenerateTokenResponse struct {
	Token     string `json:"token"`
	AccessURL string `json:"access_url"`
	QRImage   string `json:"qr_image"`
	ExpiresAt string `json:"expires_at"`
}

type ValidateTokenRequest struct {
	Token string `json:"token" validate:"required,uuid"`
}

type ValidateTokenResponse struct {
	SessionToken string `json:"session_token"`
	ExpiresIn    int64  `json:"expires_in"`
	StaffID      string `json:"staff_id"`
	BusinessID   string `json:"business_id"`
}
