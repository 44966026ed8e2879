package models

type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
	SessionID   string `json:"session_id,omitempty"`
}

// VerifyPaymentResponse converts a checkout session into a credit grant.
// Success false means the payment did not complete; Credits is only
// meaningful on success.
type VerifyPaymentResponse struct {
	Success bool   `json:"success"`
	Credits int    `json:"credits"`
	Message string `json:"message,omitempty"`
}
