// Package stub is an in-memory backend implementing the SmartSaaS wire
// contract. It exists for local development and for integration-testing
// the gateway client without the production API; generation results,
// checkout URLs, and chain data are fabricated.
package stub

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/net/context"
)

type Config struct {
	JWTSecret string
}

type Server struct {
	echo     *echo.Echo
	state    *state
	secret   string
	validate *validator.Validate
}

func New(cfg Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = detailErrorHandler

	s := &Server{
		echo:     e,
		state:    newState(),
		secret:   cfg.JWTSecret,
		validate: validator.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	e := s.echo

	e.POST("/auth/register", s.handleRegister)
	e.POST("/auth/login", s.handleLogin)
	e.GET("/plans", s.handlePlans)
	e.GET("/tokens/leaderboard", s.handleLeaderboard)
	e.GET("/tokens/rewards", s.handleRewardsCatalog)
	e.GET("/web3/network-info", s.handleNetworkInfo)

	auth := e.Group("", s.requireAuth)
	auth.GET("/user-info", s.handleUserInfo)
	auth.POST("/generate", s.handleGenerateText)
	auth.POST("/generate-image", s.handleGenerateImage)
	auth.POST("/generate-marketing-content", s.handleGenerateMarketing)
	auth.POST("/generate-calendar", s.handleGenerateCalendar)
	auth.GET("/tokens/balance", s.handleTokenBalance)
	auth.POST("/tokens/daily-reward", s.handleDailyReward)
	auth.GET("/tokens/referral", s.handleReferralData)
	auth.POST("/tokens/refer", s.handleRefer)
	auth.POST("/tokens/exchange", s.handleExchange)
	auth.POST("/web3/connect-wallet", s.handleConnectWallet)
	auth.POST("/web3/sync-tokens", s.handleSyncTokens)
	auth.GET("/web3/wallet/:address", s.handleWalletBalance)
	auth.POST("/create-checkout", s.handleCreateCheckout)
	auth.POST("/verify-payment", s.handleVerifyPayment)
}

// Handler exposes the router for in-process test servers.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// bindAndValidate decodes the payload and rejects it before any state
// change when a required field is missing.
func (s *Server) bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return s.validate.Struct(req)
}

// detailErrorHandler keeps every error on the wire in the backend's
// {"detail": ...} shape, including echo's own 404/405 responses.
func detailErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := "Internal server error"
	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			detail = msg
		}
	}
	_ = c.JSON(code, echo.Map{"detail": detail})
}
