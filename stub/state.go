package stub

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/octabyte/smartsaas-go/enums"
	"github.com/octabyte/smartsaas-go/models"
)

var (
	errEmailTaken        = errors.New("email already registered")
	errBadCredentials    = errors.New("invalid email or password")
	errUnknownUser       = errors.New("unknown user")
	errInsufficientFunds = errors.New("insufficient tokens")
	errAlreadyReferred   = errors.New("user already referred")
	errWalletLinked      = errors.New("wallet already linked")
	errNoWallet          = errors.New("no wallet linked")
)

type account struct {
	user         models.User
	password     string
	balance      int64
	totalEarned  int64
	history      []models.TokenTransaction
	referralCode string
	referred     []models.ReferredUser
	wallet       string
	walletSaas   int64
}

type checkout struct {
	planID string
	email  string
}

// state is the stub's in-memory database. All access goes through its
// methods under the mutex.
type state struct {
	mu        sync.Mutex
	users     map[string]*account
	checkouts map[string]checkout
	nextID    uint64
}

func newState() *state {
	return &state{
		users:     make(map[string]*account),
		checkouts: make(map[string]checkout),
		nextID:    1,
	}
}

func (s *state) createUser(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := s.users[key]; exists {
		return models.User{}, errEmailTaken
	}

	acct := &account{
		user: models.User{
			ID:      s.nextID,
			Email:   key,
			Credits: enums.CreditsOnSignup,
			Plan:    enums.PlanFree,
		},
		password:     password,
		referralCode: newReferralCode(),
	}
	s.nextID++
	s.users[key] = acct
	s.addTokensLocked(acct, enums.RewardWelcomeBonus, enums.ActionWelcomeBonus)

	return acct.user, nil
}

func (s *state) authenticate(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.users[strings.ToLower(email)]
	if !ok || acct.password != password {
		return models.User{}, errBadCredentials
	}
	return acct.user, nil
}

// snapshot returns the current user record, the authority on credits.
func (s *state) snapshot(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.users[strings.ToLower(email)]
	if !ok {
		return models.User{}, errUnknownUser
	}
	return acct.user, nil
}

func (s *state) spendCredits(email string, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.users[strings.ToLower(email)]
	if !ok {
		return 0, errUnknownUser
	}
	if acct.user.Credits < amount {
		return acct.user.Credits, errInsufficientFunds
	}
	acct.user.Credits -= amount
	return acct.user.Credits, nil
}

func (s *state) addCredits(email string, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.users[strings.ToLower(email)]
	if !ok {
		return 0, errUnknownUser
	}
	acct.user.Credits += amount
	return acct.user.Credits, nil
}

// grantPlan applies a verified purchase: the plan's credit allotment
// plus the plan label itself.
func (s *state) grantPlan(email, planID string, credits int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.users[strings.ToLower(email)]
	if !ok {
		return 0, errUnknownUser
	}
	acct.user.Credits += credits
	acct.user.Plan = planID
	return acct.user.Credits, nil
}

func (s *state) addTokens(email string, amount int64, action string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.users[strings.ToLower(email)]
	if !ok {
		return 0, errUnknownUser
	}
	s.addTokensLocked(acct, amount, action)
	return acct.balance, nil
}

func (s *state) addTokensLocked(acct *account, amount int64, action string) {
	acct.balance += amount
	acct.totalEarned += amount
	acct.history = append(acct.history, models.TokenTransaction{
		Date:   time.Now().UTC().Format(time.RFC3339),
		Action: action,
		Amount: amount,
		Type:   enums.TransactionEarned,
	})
}

func (s *state) spendTokens(email string, amount int64, action string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.users[strings.ToLower(email)]
	if !ok {
		return 0, errUnknownUser
	}
	if acct.balance < amount {
		return acct.balance, errInsufficientFunds
	}
	acct.balance -= amount
	acct.history = append(acct.history, models.TokenTransaction{
		Date:   time.Now().UTC().Format(time.RFC3339),
		Action: action,
		Amount: amount,
		Type:   enums.TransactionSpent,
	})
	return acct.balance, nil
}

func (s *state) tokenBalance(email string) (models.TokenBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.users[strings.ToLower(email)]
	if !ok {
		return models.TokenBalance{}, errUnknownUser
	}

	history := acct.history
	if len(history) > 10 {
		history = history[len(history)-10:]
	}

	return models.TokenBalance{
		Balance:     acct.balance,
		TotalEarned: acct.totalEarned,
		Level:       calculateLevel(acct.totalEarned),
		History:     history,
	}, nil
}

func (s *state) referralData(email string) (models.ReferralData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.users[strings.ToLower(email)]
	if !ok {
		return models.ReferralData{}, errUnknownUser
	}

	return models.ReferralData{
		ReferralCode:   acct.referralCode,
		TotalReferrals: len(acct.referred),
		ReferredUsers:  acct.referred,
		ReferralLink:   "https://smartsaas.app/signup?ref=" + acct.referralCode,
		Rewards: models.ReferralRewards{
			PerSignup:   enums.RewardReferralSignup,
			PerPurchase: enums.RewardReferralFirstPurchase,
		},
	}, nil
}

func (s *state) refer(referrer, referred string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.users[strings.ToLower(referrer)]
	if !ok {
		return 0, errUnknownUser
	}

	referred = strings.ToLower(referred)
	if referred == strings.ToLower(referrer) {
		return 0, errAlreadyReferred
	}
	for _, r := range acct.referred {
		if r.Email == referred {
			return 0, errAlreadyReferred
		}
	}

	acct.referred = append(acct.referred, models.ReferredUser{
		Email: referred,
		Date:  time.Now().UTC().Format(time.RFC3339),
	})
	s.addTokensLocked(acct, enums.RewardReferralSignup, enums.ActionReferralSignup)

	if referredAcct, ok := s.users[referred]; ok {
		s.addTokensLocked(referredAcct, enums.RewardReferralWelcome, enums.ActionWelcomeReferral)
	}

	return acct.balance, nil
}

func (s *state) leaderboard(limit int) []models.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.LeaderboardEntry, 0, len(s.users))
	for _, acct := range s.users {
		entries = append(entries, models.LeaderboardEntry{
			Email:       acct.user.Email,
			TotalEarned: acct.totalEarned,
			Level:       calculateLevel(acct.totalEarned).Level,
		})
	}
	sortLeaderboard(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func (s *state) linkWallet(email, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	address = strings.ToLower(address)
	for _, acct := range s.users {
		if acct.wallet == address {
			return errWalletLinked
		}
	}

	acct, ok := s.users[strings.ToLower(email)]
	if !ok {
		return errUnknownUser
	}
	if acct.wallet != "" {
		return errWalletLinked
	}
	acct.wallet = address
	s.addTokensLocked(acct, enums.RewardWalletConnect, enums.ActionWalletConnect)
	return nil
}

// syncWallet mirrors the off-chain balance onto the linked wallet and
// reports how many tokens moved.
func (s *state) syncWallet(email string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.users[strings.ToLower(email)]
	if !ok {
		return 0, errUnknownUser
	}
	if acct.wallet == "" {
		return 0, errNoWallet
	}
	synced := acct.balance - acct.walletSaas
	if synced < 0 {
		synced = 0
	}
	acct.walletSaas = acct.balance
	return synced, nil
}

func (s *state) walletBalance(address string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	address = strings.ToLower(address)
	for _, acct := range s.users {
		if acct.wallet == address {
			return acct.walletSaas, true
		}
	}
	return 0, false
}

func (s *state) createCheckout(email, planID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := "cs_" + uuid.NewString()
	s.checkouts[sessionID] = checkout{planID: planID, email: strings.ToLower(email)}
	return sessionID
}

// consumeCheckout resolves a checkout session exactly once. The second
// call for the same session reports false.
func (s *state) consumeCheckout(sessionID, email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	co, ok := s.checkouts[sessionID]
	if !ok || co.email != strings.ToLower(email) {
		return "", false
	}
	delete(s.checkouts, sessionID)
	return co.planID, true
}

func newReferralCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
