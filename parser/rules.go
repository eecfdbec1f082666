package parser

import "regexp"

// Rules holds the compiled pattern tables and keyword vocabularies the
// extractors run against. A Rules value is built once and never mutated;
// extractors treat it as read-only configuration.
type Rules struct {
	CompanyPatterns       []*regexp.Regexp
	SignatoryPatterns     []*regexp.Regexp
	AccountNumberPatterns []*regexp.Regexp
	EmailPattern          *regexp.Regexp
	PhonePattern          *regexp.Regexp
	MoneyPatterns         []*regexp.Regexp
	CurrencyPattern       *regexp.Regexp
	PaymentTermsPatterns  []*regexp.Regexp
	PaymentMethodsPattern *regexp.Regexp
	BillingCyclePattern   *regexp.Regexp
	PerformancePatterns   []*regexp.Regexp
	PenaltyPatterns       []*regexp.Regexp

	RecurringKeywords   []string
	OneTimeKeywords     []string
	AutoRenewalKeywords []string
}

// DefaultRules returns the calibrated pattern battery. The heuristics are
// deliberately crude (first legal-entity match is the party, largest amount
// is the total) and the scoring weights assume exactly this behavior, so
// changing a pattern here changes what downstream scores mean.
func DefaultRules() *Rules {
	return &Rules{
		CompanyPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s]+(?:Inc\.|LLC|Corp\.|Corporation|Ltd\.|Limited))`),
			regexp.MustCompile(`(?i)"([^"]+(?:Inc\.|LLC|Corp\.|Corporation|Ltd\.|Limited))"`),
		},
		SignatoryPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)signed by:?\s*([A-Z][a-zA-Z\s]+)`),
			regexp.MustCompile(`(?i)signature:?\s*([A-Z][a-zA-Z\s]+)`),
			regexp.MustCompile(`(?i)authorized by:?\s*([A-Z][a-zA-Z\s]+)`),
		},
		AccountNumberPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)account\s*(?:number|#):?\s*([A-Z0-9\-]+)`),
			regexp.MustCompile(`(?i)customer\s*(?:id|number):?\s*([A-Z0-9\-]+)`),
			regexp.MustCompile(`(?i)reference\s*(?:number|#):?\s*([A-Z0-9\-]+)`),
		},
		EmailPattern: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		PhonePattern: regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})\b`),
		MoneyPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\$\s*([0-9,]+\.?[0-9]*)`),
			regexp.MustCompile(`(?i)([0-9,]+\.?[0-9]*)\s*(?:dollars?|usd)`),
			regexp.MustCompile(`(?i)total:?\s*\$?\s*([0-9,]+\.?[0-9]*)`),
			regexp.MustCompile(`(?i)amount:?\s*\$?\s*([0-9,]+\.?[0-9]*)`),
		},
		CurrencyPattern: regexp.MustCompile(`(?i)\b(USD|EUR|GBP|CAD|AUD)\b`),
		// Priority order matters: "net N" beats an explicit "payment terms:"
		// clause, which beats "due within N days".
		PaymentTermsPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)net\s*(\d+)`),
			regexp.MustCompile(`(?i)payment\s*terms?:?\s*([^.\n]+)`),
			regexp.MustCompile(`(?i)due\s*(?:in|within):?\s*(\d+\s*days?)`),
		},
		PaymentMethodsPattern: regexp.MustCompile(`(?i)(?:payment\s*(?:by|via|through):?\s*)?(?:check|cheque|wire\s*transfer|ach|credit\s*card|bank\s*transfer)`),
		BillingCyclePattern:   regexp.MustCompile(`(?i)\b(monthly|quarterly|annually|yearly|weekly)\b`),
		PerformancePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(\d+%?\s*uptime)`),
			regexp.MustCompile(`(?i)(\d+\s*(?:hours?|minutes?|seconds?)\s*response\s*time)`),
			regexp.MustCompile(`(?i)(availability:?\s*\d+%?)`),
		},
		PenaltyPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(penalty:?\s*[^.\n]+)`),
			regexp.MustCompile(`(?i)(liquidated\s*damages:?\s*[^.\n]+)`),
			regexp.MustCompile(`(?i)(service\s*credits?:?\s*[^.\n]+)`),
		},

		RecurringKeywords:   []string{"monthly", "quarterly", "annually", "subscription", "recurring"},
		OneTimeKeywords:     []string{"one-time", "lump sum", "upfront", "single payment"},
		AutoRenewalKeywords: []string{"auto-renew", "automatically renew", "auto renewal"},
	}
}
