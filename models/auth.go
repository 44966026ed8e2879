package models

// AuthResponse is returned by both /auth/register and /auth/login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
