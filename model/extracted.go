package model

// PartyInfo identifies the contracting party and its signatories.
type PartyInfo struct {
	Name                *string  `json:"name"`
	LegalEntity         *string  `json:"legal_entity"`
	RegistrationDetails *string  `json:"registration_details"`
	Signatories         []string `json:"signatories"`
	Roles               []string `json:"roles"`
}

// ContactInfo holds the contact details found in a contract. A missing
// channel is the empty string.
type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Empty reports whether no contact channel was found.
func (c ContactInfo) Empty() bool {
	return c.Email == "" && c.Phone == ""
}

// AccountInfo holds billing and account identifiers.
type AccountInfo struct {
	BillingDetails *string     `json:"billing_details"`
	AccountNumbers []string    `json:"account_numbers"`
	ContactInfo    ContactInfo `json:"contact_info"`
}

// FinancialDetails holds the monetary facts of a contract. Currency is ""
// only in the fully-empty structure; extraction defaults it to USD.
type FinancialDetails struct {
	LineItems      []map[string]any `json:"line_items"`
	TotalValue     *float64         `json:"total_value"`
	Currency       string           `json:"currency"`
	TaxInfo        map[string]any   `json:"tax_info"`
	AdditionalFees []map[string]any `json:"additional_fees"`
}

// PaymentStructure describes how and when the contract is paid.
type PaymentStructure struct {
	PaymentTerms   *string           `json:"payment_terms"`
	DueDates       []string          `json:"due_dates"`
	PaymentMethods []string          `json:"payment_methods"`
	BankingDetails map[string]string `json:"banking_details"`
}

// RevenueClassification classifies the revenue model of a contract.
// PaymentType is one of "recurring", "one-time" or "both" when classified.
type RevenueClassification struct {
	PaymentType  *string `json:"payment_type"`
	BillingCycle *string `json:"billing_cycle"`
	RenewalTerms *string `json:"renewal_terms"`
	AutoRenewal  bool    `json:"auto_renewal"`
}

// ServiceLevelAgreement holds the SLA commitments found in a contract.
type ServiceLevelAgreement struct {
	PerformanceMetrics []string `json:"performance_metrics"`
	PenaltyClauses     []string `json:"penalty_clauses"`
	SupportTerms       *string  `json:"support_terms"`
	MaintenanceTerms   *string  `json:"maintenance_terms"`
}

// ExtractedData aggregates the six extracted sections of a contract.
type ExtractedData struct {
	PartyIdentification    *PartyInfo             `json:"party_identification"`
	AccountInformation     *AccountInfo           `json:"account_information"`
	FinancialDetails       *FinancialDetails      `json:"financial_details"`
	PaymentStructure       *PaymentStructure      `json:"payment_structure"`
	RevenueClassification  *RevenueClassification `json:"revenue_classification"`
	ServiceLevelAgreements *ServiceLevelAgreement `json:"service_level_agreements"`
}

// EmptyExtractedData returns the fully-empty structure: every section
// present, every collection allocated, every scalar absent.
func EmptyExtractedData() *ExtractedData {
	return &ExtractedData{
		PartyIdentification: &PartyInfo{
			Signatories: []string{},
			Roles:       []string{},
		},
		AccountInformation: &AccountInfo{
			AccountNumbers: []string{},
		},
		FinancialDetails: &FinancialDetails{
			LineItems:      []map[string]any{},
			TaxInfo:        map[string]any{},
			AdditionalFees: []map[string]any{},
		},
		PaymentStructure: &PaymentStructure{
			DueDates:       []string{},
			PaymentMethods: []string{},
			BankingDetails: map[string]string{},
		},
		RevenueClassification: &RevenueClassification{},
		ServiceLevelAgreements: &ServiceLevelAgreement{
			PerformanceMetrics: []string{},
			PenaltyClauses:     []string{},
		},
	}
}

// ConfidenceScores holds per-section completeness points. OverallScore is
// always the exact sum of the five section scores.
type ConfidenceScores struct {
	FinancialCompleteness float64 `json:"financial_completeness"`
	PartyIdentification   float64 `json:"party_identification"`
	PaymentTermsClarity   float64 `json:"payment_terms_clarity"`
	SLADefinition         float64 `json:"sla_definition"`
	ContactInformation    float64 `json:"contact_information"`
	OverallScore          float64 `json:"overall_score"`
}

// GapAnalysis reports what a contract is missing and what to do about it.
type GapAnalysis struct {
	MissingFields      []string `json:"missing_fields"`
	IncompleteSections []string `json:"incomplete_sections"`
	Recommendations    []string `json:"recommendations"`
}
