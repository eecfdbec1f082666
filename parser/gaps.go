package parser

import (
	"github.com/ReddyVikranth/Contract-Intelligence-Parser/model"
)

// Fixed recommendation strings. The rules fire independently, always in
// this order.
const (
	recRequestDocs  = "Request additional contract documentation to fill missing fields"
	recManualReview = "Consider manual review due to significant missing information"
	recVerifyValue  = "Verify contract value with client before processing payments"
)

// manualReviewThreshold is the missing-field count above which a manual
// review is recommended.
const manualReviewThreshold = 5

// AnalyzeGaps evaluates a fixed ordered checklist against the extracted
// sections and derives follow-up recommendations. Nil sections count as
// all-empty.
func AnalyzeGaps(data *model.ExtractedData) *model.GapAnalysis {
	gaps := &model.GapAnalysis{
		MissingFields:      []string{},
		IncompleteSections: []string{},
		Recommendations:    []string{},
	}
	if data == nil {
		data = model.EmptyExtractedData()
	}

	fin := data.FinancialDetails
	hasTotal := fin != nil && fin.TotalValue != nil && *fin.TotalValue != 0
	if !hasTotal {
		gaps.MissingFields = append(gaps.MissingFields, "Total contract value")
	}
	if fin == nil || len(fin.LineItems) == 0 {
		gaps.MissingFields = append(gaps.MissingFields, "Detailed line items")
	}
	if fin == nil || len(fin.TaxInfo) == 0 {
		gaps.IncompleteSections = append(gaps.IncompleteSections, "Tax information")
	}

	party := data.PartyIdentification
	if party == nil || party.Name == nil || *party.Name == "" {
		gaps.MissingFields = append(gaps.MissingFields, "Party names")
	}
	if party == nil || len(party.Signatories) == 0 {
		gaps.MissingFields = append(gaps.MissingFields, "Authorized signatories")
	}

	payment := data.PaymentStructure
	if payment == nil || payment.PaymentTerms == nil || *payment.PaymentTerms == "" {
		gaps.MissingFields = append(gaps.MissingFields, "Payment terms")
	}
	if payment == nil || len(payment.PaymentMethods) == 0 {
		gaps.MissingFields = append(gaps.MissingFields, "Payment methods")
	}

	sla := data.ServiceLevelAgreements
	if sla == nil || len(sla.PerformanceMetrics) == 0 {
		gaps.MissingFields = append(gaps.MissingFields, "Performance metrics")
	}

	account := data.AccountInformation
	if account == nil || account.ContactInfo.Empty() {
		gaps.MissingFields = append(gaps.MissingFields, "Contact information")
	}

	if len(gaps.MissingFields) > 0 {
		gaps.Recommendations = append(gaps.Recommendations, recRequestDocs)
	}
	if len(gaps.MissingFields) > manualReviewThreshold {
		gaps.Recommendations = append(gaps.Recommendations, recManualReview)
	}
	if !hasTotal {
		gaps.Recommendations = append(gaps.Recommendations, recVerifyValue)
	}

	return gaps
}
