package gateway

import (
	"context"

	"github.com/octabyte/smartsaas-go/models"
)

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Client) Register(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := credentialsRequest{Email: email, Password: password}
	if err := c.validateRequest(body); err != nil {
		return nil, err
	}

	var out models.AuthResponse
	if err := c.post(ctx, "/auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := credentialsRequest{Email: email, Password: password}
	if err := c.validateRequest(body); err != nil {
		return nil, err
	}

	var out models.AuthResponse
	if err := c.post(ctx, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/user-info", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
