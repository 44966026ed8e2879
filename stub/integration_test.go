package stub

import (
	"context"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/octabyte/smartsaas-go/enums"
	"github.com/octabyte/smartsaas-go/gateway"
	"github.com/octabyte/smartsaas-go/session"
	"github.com/octabyte/smartsaas-go/storage"
	"github.com/octabyte/smartsaas-go/utils"
)

// silentNotifier drops notifications; the flow tests assert on state,
// not on toasts.
type silentNotifier struct{}

func (silentNotifier) Success(string) {}
func (silentNotifier) Error(string)   {}

// IntegrationTestSuite drives the real gateway client and session
// store against the stub backend over a local listener.
type IntegrationTestSuite struct {
	suite.Suite
	ctx       context.Context
	server    *httptest.Server
	store     *storage.MemoryStore
	client    *gateway.Client
	sess      *session.Store
	redirects int32
}

func (s *IntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.redirects = 0

	s.server = httptest.NewServer(New(Config{JWTSecret: "integration-secret"}).Handler())
	s.T().Cleanup(s.server.Close)

	s.store = storage.NewMemoryStore()
	s.client = gateway.New(gateway.Config{
		BaseURL:  s.server.URL,
		Store:    s.store,
		Redirect: func(string) { atomic.AddInt32(&s.redirects, 1) },
	})
	s.sess = session.New(session.Config{
		API:      s.client,
		Tokens:   s.store,
		Notifier: silentNotifier{},
	})
}

func (s *IntegrationTestSuite) register(email string) {
	result := s.sess.Register(s.ctx, email, "pw123")
	s.Require().True(result.Success, "register failed: %s", result.Error)
}

func (s *IntegrationTestSuite) TestFullAccountFlow() {
	s.register("flow@example.com")
	s.Equal(session.StatusAuthenticated, s.sess.Status())
	s.Equal(enums.CreditsOnSignup, s.sess.User().Credits)

	// The issued token embeds a user snapshot a client can peek at.
	token, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	preview, err := utils.UserFromJWT(token)
	s.Require().NoError(err)
	s.Equal("flow@example.com", preview.Email)

	// Text generation costs one credit; the UI mirrors credits_left.
	text, err := s.client.GenerateText(s.ctx, "spring campaign slogan")
	s.Require().NoError(err)
	s.NotEmpty(text.Result)
	s.Equal(9, text.CreditsLeft)
	s.sess.UpdateCredits(text.CreditsLeft)
	s.Equal(9, s.sess.User().Credits)

	// Welcome bonus puts a fresh account straight at the Active tier.
	balance, err := s.client.GetBalance(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(100), balance.Balance)
	s.Equal(enums.LevelActive, balance.Level.Level)

	// Daily reward: the client refetches the balance instead of
	// guessing the increment.
	reward, err := s.client.ClaimDailyReward(s.ctx)
	s.Require().NoError(err)
	s.True(reward.Success)
	s.Equal(int64(enums.RewardDailyLogin), reward.Reward)

	balance, err = s.client.GetBalance(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(110), balance.Balance)

	// Exchange 50 tokens for one credit.
	exchange, err := s.client.ExchangeForCredits(s.ctx, 50)
	s.Require().NoError(err)
	s.True(exchange.Success)
	s.Equal(1, exchange.CreditsReceived)
	s.Equal(int64(60), exchange.NewTokenBalance)
	s.Equal(10, exchange.NewCreditBalance)
	s.sess.UpdateCredits(exchange.NewCreditBalance)

	// Referral pays the signup reward.
	referral, err := s.client.GetReferralData(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(referral.ReferralCode)

	refer, err := s.client.ReferUser(s.ctx, "friend@example.com")
	s.Require().NoError(err)
	s.True(refer.Success)
	s.Equal(int64(enums.RewardReferralSignup), refer.ReferrerReward)
	s.Equal(int64(160), refer.NewBalance)

	board, err := s.client.GetLeaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().NotEmpty(board.Leaderboard)
	s.Equal("flow@example.com", board.Leaderboard[0].Email)

	s.Equal(int32(0), atomic.LoadInt32(&s.redirects))
}

func (s *IntegrationTestSuite) TestWalletFlow() {
	s.register("wallet@example.com")
	address := "0xabababababababababababababababababababab"

	info, err := s.client.GetNetworkInfo(s.ctx)
	s.Require().NoError(err)
	s.True(info.Connected)
	s.Equal(int64(80001), info.ChainID)

	connect, err := s.client.ConnectWallet(s.ctx, address, "0xsigned")
	s.Require().NoError(err)
	s.True(connect.Success)
	s.Equal(int64(enums.RewardWalletConnect), connect.Reward)

	// Linking twice is a business failure with the server's message.
	_, err = s.client.ConnectWallet(s.ctx, address, "0xsigned")
	s.Require().Error(err)
	s.Equal("Wallet already linked", gateway.ErrorMessage(err, "fallback"))

	// Dependent calls run strictly after the link resolves.
	sync, err := s.client.SyncTokens(s.ctx)
	s.Require().NoError(err)
	s.True(sync.Success)
	s.Equal(int64(150), sync.SyncedTokens) // welcome 100 + wallet 50

	wallet, err := s.client.GetWalletBalance(s.ctx, address)
	s.Require().NoError(err)
	s.True(wallet.Success)
	s.Equal(int64(150), wallet.SaasBalance)
}

func (s *IntegrationTestSuite) TestCheckoutFlow() {
	s.register("billing@example.com")

	plans, err := s.client.GetPlans(s.ctx)
	s.Require().NoError(err)
	s.Len(plans.Plans, 3)
	s.Contains(plans.Plans, enums.PlanPro)

	checkout, err := s.client.CreateCheckout(s.ctx, enums.PlanPro)
	s.Require().NoError(err)
	s.NotEmpty(checkout.CheckoutURL)
	s.NotEmpty(checkout.SessionID)

	verified, err := s.client.VerifyPayment(s.ctx, checkout.SessionID)
	s.Require().NoError(err)
	s.True(verified.Success)
	s.Equal(enums.CreditsOnSignup+500, verified.Credits)

	user, err := s.client.GetCurrentUser(s.ctx)
	s.Require().NoError(err)
	s.Equal(enums.PlanPro, user.Plan)

	// A checkout session converts exactly once.
	repeat, err := s.client.VerifyPayment(s.ctx, checkout.SessionID)
	s.Require().NoError(err)
	s.False(repeat.Success)
	s.Equal(enums.CreditsOnSignup+500, user.Credits)
}

func (s *IntegrationTestSuite) TestUnknownCheckoutSessionFails() {
	s.register("nopay@example.com")

	verified, err := s.client.VerifyPayment(s.ctx, "cs_123")
	s.Require().NoError(err)
	s.False(verified.Success)

	// No credits granted, nobody redirected.
	user, err := s.client.GetCurrentUser(s.ctx)
	s.Require().NoError(err)
	s.Equal(enums.CreditsOnSignup, user.Credits)
	s.Equal(int32(0), atomic.LoadInt32(&s.redirects))
}

func (s *IntegrationTestSuite) TestLoginLogoutLifecycle() {
	s.register("life@example.com")
	s.sess.Logout(s.ctx)

	s.Equal(session.StatusAnonymous, s.sess.Status())
	_, err := s.store.Load(s.ctx)
	s.ErrorIs(err, storage.ErrNoToken)

	// Anonymous authenticated-only calls fail without redirecting:
	// there is no token left to clear.
	_, err = s.client.GetCurrentUser(s.ctx)
	s.Require().Error(err)
	s.True(gateway.IsAuthError(err))
	s.Equal(int32(0), atomic.LoadInt32(&s.redirects))

	result := s.sess.Login(s.ctx, "life@example.com", "wrong")
	s.False(result.Success)
	s.Equal("Invalid email or password", result.Error)
	s.Equal(session.StatusAnonymous, s.sess.Status())

	result = s.sess.Login(s.ctx, "life@example.com", "pw123")
	s.Require().True(result.Success)
	s.Equal(session.StatusAuthenticated, s.sess.Status())
	s.Equal(enums.CreditsOnSignup, s.sess.User().Credits)
}

func (s *IntegrationTestSuite) TestStartWithForgedTokenEndsAnonymous() {
	s.Require().NoError(s.store.Save(s.ctx, "forged.token.value"))

	s.sess.Start(s.ctx)

	s.Equal(session.StatusAnonymous, s.sess.Status())
	_, err := s.store.Load(s.ctx)
	s.ErrorIs(err, storage.ErrNoToken)
	// The 401 found a persisted token, so the redirect fired once.
	s.Equal(int32(1), atomic.LoadInt32(&s.redirects))
}

func (s *IntegrationTestSuite) TestInsufficientCreditsIsForbidden() {
	s.register("broke@example.com")

	// Ten credits cover exactly one calendar generation.
	_, err := s.client.GenerateCalendar(s.ctx, "bakery", 7)
	s.Require().NoError(err)

	_, err = s.client.GenerateCalendar(s.ctx, "bakery", 7)
	s.Require().Error(err)
	s.False(gateway.IsAuthError(err))
	s.Equal("Insufficient credits (10 required)", gateway.ErrorMessage(err, "fallback"))
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
