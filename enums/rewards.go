package enums

// Token amounts awarded per action.
const (
	RewardWelcomeBonus          = 100
	RewardDailyLogin            = 10
	RewardFirstGeneration       = 25
	RewardShareContent          = 15
	RewardCompleteProfile       = 50
	RewardReferralSignup        = 100
	RewardReferralWelcome       = 50
	RewardReferralFirstPurchase = 200
	RewardWeeklyActive          = 30
	RewardContentViral          = 75
	RewardFeedbackProvided      = 20
	RewardWalletConnect         = 50
)

const (
	ActionWelcomeBonus    = "welcome_bonus"
	ActionDailyLogin      = "daily_login"
	ActionReferralSignup  = "referral_signup"
	ActionWelcomeReferral = "welcome_referral"
	ActionWalletConnect   = "wallet_connect"
	ActionExchange        = "exchange"
)

// Exchange rate between SaaS tokens and AI credits.
const (
	ExchangeRate    = 50
	ExchangeMinimum = 50
)

const (
	TransactionEarned = "earned"
	TransactionSpent  = "spent"
)
