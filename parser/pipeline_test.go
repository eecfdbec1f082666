package parser

import (
	"strings"
	"testing"
)

// sampleContract mirrors a realistic service agreement with every section
// the extractors know how to find.
const sampleContract = `
SERVICE AGREEMENT

ABC Corporation Inc. ("Provider") agrees to deliver managed services.

Total contract value: $50,000 USD
Payment terms: Net 30 days
Contact: john.doe@abccorp.com   Phone: (555) 123-4567
Account Number: ACC-12345

The Provider guarantees 99.9% uptime.
Monthly billing cycle applies for the duration of the term.

Signed by: John Smith`

func TestParseEndToEnd(t *testing.T) {
	p := New()
	data := p.Parse(sampleContract)

	fin := data.FinancialDetails
	if fin.TotalValue == nil || *fin.TotalValue != 50000.0 {
		t.Errorf("total value = %v, want 50000", fin.TotalValue)
	}
	if fin.Currency != "USD" {
		t.Errorf("currency = %q, want USD", fin.Currency)
	}

	account := data.AccountInformation
	if account.ContactInfo.Phone != "(555) 123-4567" {
		t.Errorf("phone = %q, want (555) 123-4567", account.ContactInfo.Phone)
	}
	if account.ContactInfo.Email != "john.doe@abccorp.com" {
		t.Errorf("email = %q", account.ContactInfo.Email)
	}
	if !contains(account.AccountNumbers, "ACC-12345") {
		t.Errorf("account numbers %v missing ACC-12345", account.AccountNumbers)
	}

	rc := data.RevenueClassification
	if rc.BillingCycle == nil || *rc.BillingCycle != "monthly" {
		t.Errorf("billing cycle = %v, want monthly", rc.BillingCycle)
	}
	if rc.PaymentType == nil || *rc.PaymentType != "recurring" {
		t.Errorf("payment type = %v, want recurring", rc.PaymentType)
	}

	party := data.PartyIdentification
	if party.Name == nil || !strings.Contains(*party.Name, "ABC Corporation") {
		t.Errorf("party name = %v, want an ABC Corporation match", party.Name)
	}
	if !containsMatch(party.Signatories, "John Smith") {
		t.Errorf("signatories %v missing John Smith", party.Signatories)
	}

	payment := data.PaymentStructure
	if payment.PaymentTerms == nil || !strings.EqualFold(*payment.PaymentTerms, "Net 30") {
		t.Errorf("payment terms = %v, want Net 30", payment.PaymentTerms)
	}

	sla := data.ServiceLevelAgreements
	if len(sla.PerformanceMetrics) == 0 {
		t.Error("expected at least one performance metric")
	} else if !strings.Contains(sla.PerformanceMetrics[0], "uptime") {
		t.Errorf("metric = %q, want an uptime match", sla.PerformanceMetrics[0])
	}
}

func TestPipelineEndToEndScoring(t *testing.T) {
	p := New()
	data := p.Parse(sampleContract)

	scores := Score(data)
	gaps := AnalyzeGaps(data)

	// total + currency, full party, terms only, metrics only, full contact
	if scores.FinancialCompleteness != 20 {
		t.Errorf("financial = %f, want 20", scores.FinancialCompleteness)
	}
	if scores.PartyIdentification != 25 {
		t.Errorf("party = %f, want 25", scores.PartyIdentification)
	}
	if scores.PaymentTermsClarity != 10 {
		t.Errorf("payment = %f, want 10", scores.PaymentTermsClarity)
	}
	if scores.SLADefinition != 8 {
		t.Errorf("sla = %f, want 8", scores.SLADefinition)
	}
	if scores.ContactInformation != 10 {
		t.Errorf("contact = %f, want 10", scores.ContactInformation)
	}
	if scores.OverallScore != 73 {
		t.Errorf("overall = %f, want 73", scores.OverallScore)
	}

	// Extractors never produce line items, so that field and payment
	// methods are the expected gaps for this document
	wantMissing := []string{"Detailed line items", "Payment methods"}
	if len(gaps.MissingFields) != len(wantMissing) {
		t.Fatalf("missing fields = %v, want %v", gaps.MissingFields, wantMissing)
	}
	for i, want := range wantMissing {
		if gaps.MissingFields[i] != want {
			t.Errorf("missing field %d = %q, want %q", i, gaps.MissingFields[i], want)
		}
	}
	if len(gaps.IncompleteSections) != 1 || gaps.IncompleteSections[0] != "Tax information" {
		t.Errorf("incomplete sections = %v", gaps.IncompleteSections)
	}
	if len(gaps.Recommendations) != 1 || gaps.Recommendations[0] != recRequestDocs {
		t.Errorf("recommendations = %v", gaps.Recommendations)
	}

	// No field that contributed points may be reported missing
	for _, missing := range gaps.MissingFields {
		switch missing {
		case "Total contract value", "Party names", "Payment terms", "Performance metrics", "Contact information":
			t.Errorf("field %q scored points but was reported missing", missing)
		}
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// containsMatch reports whether any entry contains want as a substring;
// signatory captures may include trailing words from greedy matching.
func containsMatch(values []string, want string) bool {
	for _, v := range values {
		if strings.Contains(v, want) {
			return true
		}
	}
	return false
}
