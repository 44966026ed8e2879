package enums

const (
	PlanFree    = "free"
	PlanStarter = "starter"
	PlanPro     = "pro"
	PlanPremium = "premium"
)
