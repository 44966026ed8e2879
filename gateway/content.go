package gateway

import (
	"context"

	"github.com/octabyte/smartsaas-go/models"
)

type generateTextRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type generateImageRequest struct {
	Prompt  string `json:"prompt" validate:"required"`
	Size    string `json:"size" validate:"required"`
	Quality string `json:"quality" validate:"required"`
}

type generateMarketingRequest struct {
	BusinessType   string `json:"business_type" validate:"required"`
	TargetAudience string `json:"target_audience" validate:"required"`
	Platform       string `json:"platform" validate:"required"`
}

type generateCalendarRequest struct {
	BusinessType string `json:"business_type" validate:"required"`
	DurationDays int    `json:"duration_days" validate:"required,min=1"`
}

func (c *Client) GenerateText(ctx context.Context, prompt string) (*models.GenerateTextResponse, error) {
	body := generateTextRequest{Prompt: prompt}
	if err := c.validateRequest(body); err != nil {
		return nil, err
	}

	var out models.GenerateTextResponse
	if err := c.post(ctx, "/generate", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateImage(ctx context.Context, prompt, size, quality string) (*models.GenerateImageResponse, error) {
	body := generateImageRequest{Prompt: prompt, Size: size, Quality: quality}
	if err := c.validateRequest(body); err != nil {
		return nil, err
	}

	var out models.GenerateImageResponse
	if err := c.post(ctx, "/generate-image", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateMarketingContent(ctx context.Context, businessType, targetAudience, platform string) (*models.GenerateMarketingResponse, error) {
	body := generateMarketingRequest{
		BusinessType:   businessType,
		TargetAudience: targetAudience,
		Platform:       platform,
	}
	if err := c.validateRequest(body); err != nil {
		return nil, err
	}

	var out models.GenerateMarketingResponse
	if err := c.post(ctx, "/generate-marketing-content", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateCalendar(ctx context.Context, businessType string, durationDays int) (*models.GenerateCalendarResponse, error) {
	body := generateCalendarRequest{BusinessType: businessType, DurationDays: durationDays}
	if err := c.validateRequest(body); err != nil {
		return nil, err
	}

	var out models.GenerateCalendarResponse
	if err := c.post(ctx, "/generate-calendar", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
