package enums

// Credit cost per generation endpoint.
const (
	CostGenerateText      = 1
	CostGenerateImage     = 3
	CostGenerateMarketing = 5
	CostGenerateCalendar  = 10
)

const CreditsOnSignup = 10
