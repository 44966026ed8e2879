package gateway

import (
	"context"

	"github.com/octabyte/smartsaas-go/models"
)

type checkoutRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

func (c *Client) GetPlans(ctx context.Context) (*models.PlansResponse, error) {
	var out models.PlansResponse
	if err := c.get(ctx, "/plans", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCheckout(ctx context.Context, planID string) (*models.CheckoutResponse, error) {
	body := checkoutRequest{PlanID: planID}
	if err := c.validateRequest(body); err != nil {
		return nil, err
	}

	var out models.CheckoutResponse
	if err := c.post(ctx, "/create-checkout", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyPayment consumes a checkout session exactly once. A second
// verification of the same session reports success false.
func (c *Client) VerifyPayment(ctx context.Context, sessionID string) (*models.VerifyPaymentResponse, error) {
	var out models.VerifyPaymentResponse
	_, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("session_id", sessionID).
		SetResult(&out).
		Post("/verify-payment")
	if err != nil {
		return nil, err
	}
	return &out, nil
}
