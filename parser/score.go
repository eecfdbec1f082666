package parser

import (
	"github.com/ReddyVikranth/Contract-Intelligence-Parser/model"
)

// Score computes per-section completeness points over the extracted data.
// Each check contributes its full weight iff the field is present; there is
// no partial credit. The overall score is the exact sum of the five section
// scores, so it can never disagree with its components. Nil sections count
// as all-empty.
func Score(data *model.ExtractedData) *model.ConfidenceScores {
	scores := &model.ConfidenceScores{}
	if data == nil {
		return scores
	}

	// Financial completeness, 30 points max
	if fin := data.FinancialDetails; fin != nil {
		if fin.TotalValue != nil && *fin.TotalValue != 0 {
			scores.FinancialCompleteness += 15
		}
		if fin.Currency != "" {
			scores.FinancialCompleteness += 5
		}
		if len(fin.LineItems) > 0 {
			scores.FinancialCompleteness += 10
		}
	}

	// Party identification, 25 points max
	if party := data.PartyIdentification; party != nil {
		if party.Name != nil && *party.Name != "" {
			scores.PartyIdentification += 10
		}
		if party.LegalEntity != nil && *party.LegalEntity != "" {
			scores.PartyIdentification += 8
		}
		if len(party.Signatories) > 0 {
			scores.PartyIdentification += 7
		}
	}

	// Payment terms clarity, 20 points max
	if payment := data.PaymentStructure; payment != nil {
		if payment.PaymentTerms != nil && *payment.PaymentTerms != "" {
			scores.PaymentTermsClarity += 10
		}
		if len(payment.PaymentMethods) > 0 {
			scores.PaymentTermsClarity += 5
		}
		if len(payment.DueDates) > 0 {
			scores.PaymentTermsClarity += 5
		}
	}

	// SLA definition, 15 points max
	if sla := data.ServiceLevelAgreements; sla != nil {
		if len(sla.PerformanceMetrics) > 0 {
			scores.SLADefinition += 8
		}
		if len(sla.PenaltyClauses) > 0 {
			scores.SLADefinition += 4
		}
		if sla.SupportTerms != nil && *sla.SupportTerms != "" {
			scores.SLADefinition += 3
		}
	}

	// Contact information, 10 points max
	if account := data.AccountInformation; account != nil {
		if account.ContactInfo.Email != "" {
			scores.ContactInformation += 5
		}
		if account.ContactInfo.Phone != "" {
			scores.ContactInformation += 3
		}
		if len(account.AccountNumbers) > 0 {
			scores.ContactInformation += 2
		}
	}

	scores.OverallScore = scores.FinancialCompleteness +
		scores.PartyIdentification +
		scores.PaymentTermsClarity +
		scores.SLADefinition +
		scores.ContactInformation

	return scores
}
