package parser

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/ReddyVikranth/Contract-Intelligence-Parser/model"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize collapses every run of whitespace (including newlines and tabs
// from PDF extraction artifacts) into a single space and trims the ends.
// It never fails; empty input yields empty output.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// Parser derives structured contract data from normalized text using a
// fixed battery of pattern rules. It carries no state beyond its rules and
// is safe for concurrent use.
type Parser struct {
	rules *Rules
}

// New returns a Parser using the default calibrated rules.
func New() *Parser {
	return &Parser{rules: DefaultRules()}
}

// NewWithRules returns a Parser with a custom rule table. Scoring weights
// are calibrated against DefaultRules; swap heuristics with care.
func NewWithRules(rules *Rules) *Parser {
	return &Parser{rules: rules}
}

// Parse normalizes text and runs every extractor against it. Extraction is
// fail-soft: if any extractor panics, the fully-empty structure is returned
// instead of propagating the fault. Empty text is valid input and yields the
// fully-empty structure as well.
func (p *Parser) Parse(text string) (data *model.ExtractedData) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("contract extraction failed, returning empty data", "panic", r)
			data = model.EmptyExtractedData()
		}
	}()

	normalized := Normalize(text)
	if normalized == "" {
		return model.EmptyExtractedData()
	}

	return &model.ExtractedData{
		PartyIdentification:    p.extractPartyInfo(normalized),
		AccountInformation:     p.extractAccountInfo(normalized),
		FinancialDetails:       p.extractFinancialDetails(normalized),
		PaymentStructure:       p.extractPaymentStructure(normalized),
		RevenueClassification:  p.extractRevenueClassification(normalized),
		ServiceLevelAgreements: p.extractSLAInfo(normalized),
	}
}
