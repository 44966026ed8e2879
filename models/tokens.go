package models

// RewardLevel is derived server-side from the total amount of SaaS
// tokens a user has earned.
type RewardLevel struct {
	Level           string  `json:"level"`
	Badge           string  `json:"badge"`
	Progress        float64 `json:"progress"`
	CurrentTokens   int64   `json:"current_tokens"`
	NextLevelTokens *int64  `json:"next_level_tokens,omitempty"`
}

type TokenTransaction struct {
	Date   string `json:"date"`
	Action string `json:"action"`
	Amount int64  `json:"amount"`
	Type   string `json:"type"`
}

// TokenBalance is returned by /tokens/balance. History carries the ten
// most recent transactions.
type TokenBalance struct {
	Balance     int64              `json:"balance"`
	TotalEarned int64              `json:"total_earned"`
	Level       RewardLevel        `json:"level"`
	History     []TokenTransaction `json:"history,omitempty"`
}

type DailyRewardResponse struct {
	Success    bool   `json:"success"`
	Reward     int64  `json:"reward"`
	NewBalance int64  `json:"new_balance"`
	Message    string `json:"message,omitempty"`
}

type ReferredUser struct {
	Email string `json:"email"`
	Date  string `json:"date"`
}

type ReferralRewards struct {
	PerSignup   int64 `json:"per_signup"`
	PerPurchase int64 `json:"per_purchase"`
}

type ReferralData struct {
	ReferralCode   string          `json:"referral_code"`
	TotalReferrals int             `json:"total_referrals"`
	ReferredUsers  []ReferredUser  `json:"referred_users"`
	ReferralLink   string          `json:"referral_link"`
	Rewards        ReferralRewards `json:"rewards"`
}

type ReferResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message,omitempty"`
	ReferrerReward int64  `json:"referrer_reward"`
	NewBalance     int64  `json:"new_balance"`
}

type LeaderboardEntry struct {
	Email       string `json:"email"`
	TotalEarned int64  `json:"total_earned"`
	Level       string `json:"level,omitempty"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Description string             `json:"description,omitempty"`
}

// ExchangeResponse is returned by /tokens/exchange. The rate is fixed at
// fifty tokens per credit.
type ExchangeResponse struct {
	Success          bool  `json:"success"`
	TokensSpent      int64 `json:"tokens_spent"`
	CreditsReceived  int   `json:"credits_received"`
	NewTokenBalance  int64 `json:"new_token_balance"`
	NewCreditBalance int   `json:"new_credit_balance"`
}
