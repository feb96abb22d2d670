package models

// Response is the envelope every successful reply is written in. Fields are
// kept in alphabetical order, which existing clients rely on.
type Response struct {
	AccessToken  string      `json:"access_token"`
	Data         interface{} `json:"data,omitempty"`
	Message      string      `json:"message"`
	RefreshToken string      `json:"refresh_token"`
	StatusCode   int         `json:"status_code"`
}

// HealthCheckResponse is returned by the health endpoint
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
