package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ReddyVikranth/Contract-Intelligence-Parser/model"
)

const (
	maxSignatories  = 5
	defaultCurrency = "USD"
)

// extractPartyInfo finds the contracting party and its signatories. The
// first legal-entity match in text order becomes both name and legal entity;
// no further disambiguation is attempted.
func (p *Parser) extractPartyInfo(text string) *model.PartyInfo {
	info := &model.PartyInfo{
		Signatories: []string{},
		Roles:       []string{},
	}

	var companies []string
	for _, re := range p.rules.CompanyPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			companies = append(companies, m[1])
		}
	}
	if len(companies) > 0 {
		name := companies[0]
		entity := companies[0]
		info.Name = &name
		info.LegalEntity = &entity
	}

	var signatories []string
	for _, re := range p.rules.SignatoryPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			signatories = append(signatories, m[1])
		}
	}
	info.Signatories = dedupe(signatories, maxSignatories)

	return info
}

// extractAccountInfo collects account identifiers and contact details.
func (p *Parser) extractAccountInfo(text string) *model.AccountInfo {
	info := &model.AccountInfo{
		AccountNumbers: []string{},
	}

	var numbers []string
	for _, re := range p.rules.AccountNumberPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			numbers = append(numbers, m[1])
		}
	}
	info.AccountNumbers = dedupe(numbers, 0)

	if email := p.rules.EmailPattern.FindString(text); email != "" {
		info.ContactInfo.Email = email
	}
	if m := p.rules.PhonePattern.FindStringSubmatch(text); m != nil {
		info.ContactInfo.Phone = fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3])
	}

	return info
}

// extractFinancialDetails collects every monetary amount in the text. The
// largest amount is assumed to be the contract total; a known source of
// false positives, kept because the scoring is calibrated against it.
func (p *Parser) extractFinancialDetails(text string) *model.FinancialDetails {
	details := &model.FinancialDetails{
		LineItems:      []map[string]any{},
		Currency:       defaultCurrency,
		TaxInfo:        map[string]any{},
		AdditionalFees: []map[string]any{},
	}

	var amounts []float64
	for _, re := range p.rules.MoneyPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
			if err != nil {
				continue
			}
			amounts = append(amounts, amount)
		}
	}
	if len(amounts) > 0 {
		total := amounts[0]
		for _, a := range amounts[1:] {
			if a > total {
				total = a
			}
		}
		details.TotalValue = &total
	}

	if m := p.rules.CurrencyPattern.FindStringSubmatch(text); m != nil {
		details.Currency = strings.ToUpper(m[1])
	}

	return details
}

// extractPaymentStructure finds payment terms and methods. Terms patterns
// are evaluated in fixed priority order; the first pattern type that matches
// anywhere in the text wins.
func (p *Parser) extractPaymentStructure(text string) *model.PaymentStructure {
	structure := &model.PaymentStructure{
		DueDates:       []string{},
		PaymentMethods: []string{},
		BankingDetails: map[string]string{},
	}

	for _, re := range p.rules.PaymentTermsPatterns {
		if m := re.FindString(text); m != "" {
			terms := m
			structure.PaymentTerms = &terms
			break
		}
	}

	methods := p.rules.PaymentMethodsPattern.FindAllString(text, -1)
	structure.PaymentMethods = dedupe(methods, 0)

	return structure
}

// extractRevenueClassification classifies the revenue model from keyword
// presence and finds the billing cycle and auto-renewal flag.
func (p *Parser) extractRevenueClassification(text string) *model.RevenueClassification {
	rc := &model.RevenueClassification{}

	lower := strings.ToLower(text)
	hasRecurring := containsAny(lower, p.rules.RecurringKeywords)
	hasOneTime := containsAny(lower, p.rules.OneTimeKeywords)

	switch {
	case hasRecurring && hasOneTime:
		rc.PaymentType = strPtr("both")
	case hasRecurring:
		rc.PaymentType = strPtr("recurring")
	case hasOneTime:
		rc.PaymentType = strPtr("one-time")
	}

	if m := p.rules.BillingCyclePattern.FindStringSubmatch(text); m != nil {
		cycle := strings.ToLower(m[1])
		rc.BillingCycle = &cycle
	}

	rc.AutoRenewal = containsAny(lower, p.rules.AutoRenewalKeywords)

	return rc
}

// extractSLAInfo collects performance metrics and penalty clauses. Penalty
// clauses capture the remainder of the sentence up to the next period.
func (p *Parser) extractSLAInfo(text string) *model.ServiceLevelAgreement {
	sla := &model.ServiceLevelAgreement{
		PerformanceMetrics: []string{},
		PenaltyClauses:     []string{},
	}

	for _, re := range p.rules.PerformancePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			sla.PerformanceMetrics = append(sla.PerformanceMetrics, m[1])
		}
	}

	for _, re := range p.rules.PenaltyPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			sla.PenaltyClauses = append(sla.PenaltyClauses, m[1])
		}
	}

	return sla
}

// dedupe removes duplicates preserving first-seen order. A limit of 0 means
// unlimited.
func dedupe(values []string, limit int) []string {
	seen := make(map[string]struct{}, len(values))
	out := []string{}
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func strPtr(s string) *string {
	return &s
}
