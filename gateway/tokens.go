package gateway

import (
	"context"
	"strconv"

	"github.com/octabyte/smartsaas-go/models"
)

type referRequest struct {
	ReferredEmail string `json:"referred_email" validate:"required,email"`
}

func (c *Client) GetBalance(ctx context.Context) (*models.TokenBalance, error) {
	var out models.TokenBalance
	if err := c.get(ctx, "/tokens/balance", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ClaimDailyReward(ctx context.Context) (*models.DailyRewardResponse, error) {
	var out models.DailyRewardResponse
	if err := c.post(ctx, "/tokens/daily-reward", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetReferralData(ctx context.Context) (*models.ReferralData, error) {
	var out models.ReferralData
	if err := c.get(ctx, "/tokens/referral", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReferUser(ctx context.Context, email string) (*models.ReferResponse, error) {
	body := referRequest{ReferredEmail: email}
	if err := c.validateRequest(body); err != nil {
		return nil, err
	}

	var out models.ReferResponse
	if err := c.post(ctx, "/tokens/refer", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetLeaderboard(ctx context.Context) (*models.LeaderboardResponse, error) {
	var out models.LeaderboardResponse
	if err := c.get(ctx, "/tokens/leaderboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExchangeForCredits trades SaaS tokens for AI credits. The amount
// travels as a query parameter, matching the wire contract.
func (c *Client) ExchangeForCredits(ctx context.Context, amount int64) (*models.ExchangeResponse, error) {
	var out models.ExchangeResponse
	_, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("amount", strconv.FormatInt(amount, 10)).
		SetResult(&out).
		Post("/tokens/exchange")
	if err != nil {
		return nil, err
	}
	return &out, nil
}
