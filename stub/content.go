package stub

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octabyte/smartsaas-go/enums"
	"github.com/octabyte/smartsaas-go/models"
)

type textPayload struct {
	Prompt string `json:"prompt" validate:"required"`
}

type imagePayload struct {
	Prompt  string `json:"prompt" validate:"required"`
	Size    string `json:"size" validate:"required"`
	Quality string `json:"quality" validate:"required"`
}

type marketingPayload struct {
	BusinessType   string `json:"business_type" validate:"required"`
	TargetAudience string `json:"target_audience" validate:"required"`
	Platform       string `json:"platform" validate:"required"`
}

type calendarPayload struct {
	BusinessType string `json:"business_type" validate:"required"`
	DurationDays int    `json:"duration_days" validate:"required,min=1,max=90"`
}

// chargeCredits debits the generation cost, translating an empty
// balance into the backend's 403.
func (s *Server) chargeCredits(c echo.Context, cost int) (int, error) {
	left, err := s.state.spendCredits(currentUser(c).Email, cost)
	if err != nil {
		if errors.Is(err, errInsufficientFunds) {
			return 0, echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("Insufficient credits (%d required)", cost))
		}
		return 0, err
	}
	return left, nil
}

func (s *Server) handleGenerateText(c echo.Context) error {
	var req textPayload
	if err := s.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Prompt is required"})
	}

	left, err := s.chargeCredits(c, enums.CostGenerateText)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.GenerateTextResponse{
		Result:      fmt.Sprintf("Generated marketing copy for: %s", req.Prompt),
		CreditsLeft: left,
	})
}

func (s *Server) handleGenerateImage(c echo.Context) error {
	var req imagePayload
	if err := s.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Prompt, size and quality are required"})
	}

	left, err := s.chargeCredits(c, enums.CostGenerateImage)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.GenerateImageResponse{
		ImageURL:    fmt.Sprintf("https://images.smartsaas.app/%s.png", uuid.NewString()),
		Prompt:      req.Prompt,
		CreditsLeft: left,
	})
}

func (s *Server) handleGenerateMarketing(c echo.Context) error {
	var req marketingPayload
	if err := s.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Business type, audience and platform are required"})
	}

	left, err := s.chargeCredits(c, enums.CostGenerateMarketing)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.GenerateMarketingResponse{
		Content: models.MarketingContent{
			Text:    fmt.Sprintf("%s campaign for %s", req.BusinessType, req.TargetAudience),
			Image:   fmt.Sprintf("https://images.smartsaas.app/%s.png", uuid.NewString()),
			Caption: fmt.Sprintf("Posted on %s", req.Platform),
		},
		CreditsLeft: left,
	})
}

func (s *Server) handleGenerateCalendar(c echo.Context) error {
	var req calendarPayload
	if err := s.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Business type and duration are required"})
	}

	left, err := s.chargeCredits(c, enums.CostGenerateCalendar)
	if err != nil {
		return err
	}

	entries := make([]models.CalendarEntry, req.DurationDays)
	for i := range entries {
		entries[i] = models.CalendarEntry{
			Day:   i + 1,
			Topic: fmt.Sprintf("%s content day %d", req.BusinessType, i+1),
			Idea:  "Post idea placeholder",
		}
	}

	return c.JSON(http.StatusOK, models.GenerateCalendarResponse{
		Calendar:    entries,
		CreditsLeft: left,
	})
}
