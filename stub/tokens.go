package stub

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/octabyte/smartsaas-go/enums"
	"github.com/octabyte/smartsaas-go/models"
)

type referPayload struct {
	ReferredEmail string `json:"referred_email" validate:"required,email"`
}

func (s *Server) handleTokenBalance(c echo.Context) error {
	balance, err := s.state.tokenBalance(currentUser(c).Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, balance)
}

func (s *Server) handleDailyReward(c echo.Context) error {
	balance, err := s.state.addTokens(currentUser(c).Email, enums.RewardDailyLogin, enums.ActionDailyLogin)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.DailyRewardResponse{
		Success:    true,
		Reward:     enums.RewardDailyLogin,
		NewBalance: balance,
		Message:    fmt.Sprintf("You earned %d SaaS tokens!", enums.RewardDailyLogin),
	})
}

func (s *Server) handleReferralData(c echo.Context) error {
	data, err := s.state.referralData(currentUser(c).Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

func (s *Server) handleRefer(c echo.Context) error {
	var req referPayload
	if err := s.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Referred email is required"})
	}

	balance, err := s.state.refer(currentUser(c).Email, req.ReferredEmail)
	if err != nil {
		if errors.Is(err, errAlreadyReferred) {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "User already referred"})
		}
		return err
	}

	return c.JSON(http.StatusOK, models.ReferResponse{
		Success:        true,
		Message:        fmt.Sprintf("Referral successful! You earned %d tokens.", enums.RewardReferralSignup),
		ReferrerReward: enums.RewardReferralSignup,
		NewBalance:     balance,
	})
}

func (s *Server) handleLeaderboard(c echo.Context) error {
	return c.JSON(http.StatusOK, models.LeaderboardResponse{
		Leaderboard: s.state.leaderboard(10),
		Description: "Top 10 users by tokens earned",
	})
}

func (s *Server) handleExchange(c echo.Context) error {
	amount, err := strconv.ParseInt(c.QueryParam("amount"), 10, 64)
	if err != nil || amount < enums.ExchangeMinimum {
		return c.JSON(http.StatusBadRequest,
			echo.Map{"detail": fmt.Sprintf("Minimum %d tokens required", enums.ExchangeMinimum)})
	}

	email := currentUser(c).Email
	credits := int(amount / enums.ExchangeRate)

	tokenBalance, err := s.state.spendTokens(email, amount,
		fmt.Sprintf("%s_for_%d_credits", enums.ActionExchange, credits))
	if err != nil {
		if errors.Is(err, errInsufficientFunds) {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Insufficient tokens"})
		}
		return err
	}

	creditBalance, err := s.state.addCredits(email, credits)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.ExchangeResponse{
		Success:          true,
		TokensSpent:      amount,
		CreditsReceived:  credits,
		NewTokenBalance:  tokenBalance,
		NewCreditBalance: creditBalance,
	})
}

// handleRewardsCatalog lists every way to earn tokens.
func (s *Server) handleRewardsCatalog(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"daily_actions": echo.Map{
			"daily_login":      echo.Map{"reward": enums.RewardDailyLogin, "description": "Daily login"},
			"first_generation": echo.Map{"reward": enums.RewardFirstGeneration, "description": "First generation of the day"},
			"share_content":    echo.Map{"reward": enums.RewardShareContent, "description": "Share generated content"},
		},
		"achievements": echo.Map{
			"complete_profile": echo.Map{"reward": enums.RewardCompleteProfile, "description": "Complete your profile"},
			"weekly_active":    echo.Map{"reward": enums.RewardWeeklyActive, "description": "Active 7 days in a row"},
			"content_viral":    echo.Map{"reward": enums.RewardContentViral, "description": "Content shared 100+ times"},
		},
		"referral": echo.Map{
			"referral_signup":         echo.Map{"reward": enums.RewardReferralSignup, "description": "Refer a new user"},
			"referral_first_purchase": echo.Map{"reward": enums.RewardReferralFirstPurchase, "description": "Referred user's first purchase"},
		},
		"exchange_rate": fmt.Sprintf("%d tokens = 1 AI credit", enums.ExchangeRate),
	})
}
