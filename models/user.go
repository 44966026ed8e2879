package models

type User struct {
	ID      uint64 `json:"id"`
	Email   string `json:"email"`
	Credits int    `json:"credits"`
	Plan    string `json:"plan,omitempty"`
}
