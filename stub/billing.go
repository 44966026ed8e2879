package stub

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/octabyte/smartsaas-go/enums"
	"github.com/octabyte/smartsaas-go/models"
)

var stubPlans = map[string]models.Plan{
	enums.PlanStarter: {
		PriceID:  "price_starter_monthly",
		Name:     "Starter",
		Price:    9.99,
		Credits:  100,
		Features: []string{"100 credits/month", "Basic AI generation", "Email support"},
	},
	enums.PlanPro: {
		PriceID:  "price_pro_monthly",
		Name:     "Pro",
		Price:    29.99,
		Credits:  500,
		Features: []string{"500 credits/month", "Advanced AI generation", "AI images", "Content planner", "Priority support"},
	},
	enums.PlanPremium: {
		PriceID:  "price_premium_monthly",
		Name:     "Premium",
		Price:    79.99,
		Credits:  2000,
		Features: []string{"2000 credits/month", "All features", "Premium AI", "Full automation", "24/7 support"},
	},
}

type checkoutPayload struct {
	PlanID string `json:"plan_id" validate:"required"`
}

func (s *Server) handlePlans(c echo.Context) error {
	return c.JSON(http.StatusOK, models.PlansResponse{Plans: stubPlans})
}

func (s *Server) handleCreateCheckout(c echo.Context) error {
	var req checkoutPayload
	if err := s.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Plan id is required"})
	}

	if _, ok := stubPlans[req.PlanID]; !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid plan"})
	}

	sessionID := s.state.createCheckout(currentUser(c).Email, req.PlanID)
	return c.JSON(http.StatusOK, models.CheckoutResponse{
		CheckoutURL: "https://checkout.smartsaas.app/pay/" + sessionID,
		SessionID:   sessionID,
	})
}

// handleVerifyPayment consumes the checkout session exactly once: the
// first verification grants the plan's credits, any repeat reports
// success false.
func (s *Server) handleVerifyPayment(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "session_id is required"})
	}

	user := currentUser(c)
	planID, ok := s.state.consumeCheckout(sessionID, user.Email)
	if !ok {
		return c.JSON(http.StatusOK, models.VerifyPaymentResponse{
			Success: false,
			Message: "Payment not completed",
		})
	}

	plan := stubPlans[planID]
	credits, err := s.state.grantPlan(user.Email, planID, plan.Credits)
	if err != nil {
		return err
	}

	log.Infof("payment verified for %s, plan %s", user.Email, planID)
	return c.JSON(http.StatusOK, models.VerifyPaymentResponse{
		Success: true,
		Credits: credits,
	})
}
