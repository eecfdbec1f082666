package parser

import (
	"reflect"
	"testing"

	"github.com/ReddyVikranth/Contract-Intelligence-Parser/model"
)

func TestAnalyzeGapsEmptyData(t *testing.T) {
	gaps := AnalyzeGaps(model.EmptyExtractedData())

	wantMissing := []string{
		"Total contract value",
		"Detailed line items",
		"Party names",
		"Authorized signatories",
		"Payment terms",
		"Payment methods",
		"Performance metrics",
		"Contact information",
	}
	if !reflect.DeepEqual(gaps.MissingFields, wantMissing) {
		t.Errorf("missing fields = %v, want %v", gaps.MissingFields, wantMissing)
	}

	if !reflect.DeepEqual(gaps.IncompleteSections, []string{"Tax information"}) {
		t.Errorf("incomplete sections = %v", gaps.IncompleteSections)
	}

	// 8 missing fields: all three recommendation rules fire, in rule order
	wantRecs := []string{recRequestDocs, recManualReview, recVerifyValue}
	if !reflect.DeepEqual(gaps.Recommendations, wantRecs) {
		t.Errorf("recommendations = %v, want %v", gaps.Recommendations, wantRecs)
	}
}

func TestAnalyzeGapsNilData(t *testing.T) {
	gaps := AnalyzeGaps(nil)
	if len(gaps.MissingFields) != 8 {
		t.Errorf("expected 8 missing fields for nil data, got %v", gaps.MissingFields)
	}

	gaps = AnalyzeGaps(&model.ExtractedData{})
	if len(gaps.MissingFields) != 8 {
		t.Errorf("expected 8 missing fields for nil sections, got %v", gaps.MissingFields)
	}
}

func TestAnalyzeGapsCompleteData(t *testing.T) {
	gaps := AnalyzeGaps(fullExtractedData())

	if len(gaps.MissingFields) != 0 {
		t.Errorf("expected no missing fields, got %v", gaps.MissingFields)
	}
	if len(gaps.IncompleteSections) != 0 {
		t.Errorf("expected no incomplete sections, got %v", gaps.IncompleteSections)
	}
	if len(gaps.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %v", gaps.Recommendations)
	}
}

func TestAnalyzeGapsRecommendationRules(t *testing.T) {
	// Few missing fields, total value present: only the generic rule fires
	data := fullExtractedData()
	data.PaymentStructure.PaymentMethods = []string{}
	gaps := AnalyzeGaps(data)

	if !reflect.DeepEqual(gaps.MissingFields, []string{"Payment methods"}) {
		t.Fatalf("missing fields = %v", gaps.MissingFields)
	}
	if !reflect.DeepEqual(gaps.Recommendations, []string{recRequestDocs}) {
		t.Errorf("recommendations = %v", gaps.Recommendations)
	}

	// Total value absent but little else missing: generic rule plus the
	// payment verification rule
	data = fullExtractedData()
	data.FinancialDetails.TotalValue = nil
	gaps = AnalyzeGaps(data)

	wantRecs := []string{recRequestDocs, recVerifyValue}
	if !reflect.DeepEqual(gaps.Recommendations, wantRecs) {
		t.Errorf("recommendations = %v, want %v", gaps.Recommendations, wantRecs)
	}
}

// TestGapScoreComplementarity checks that a field counted as present by the
// scorer never shows up as missing, and vice versa.
func TestGapScoreComplementarity(t *testing.T) {
	full := fullExtractedData()
	scores := Score(full)
	gaps := AnalyzeGaps(full)

	if scores.OverallScore != 100 {
		t.Fatalf("fixture expected to score 100, got %f", scores.OverallScore)
	}
	if len(gaps.MissingFields) != 0 {
		t.Errorf("fully-scored fixture reported missing fields: %v", gaps.MissingFields)
	}

	empty := model.EmptyExtractedData()
	scores = Score(empty)
	gaps = AnalyzeGaps(empty)

	if scores.OverallScore != 0 {
		t.Fatalf("empty fixture expected to score 0, got %f", scores.OverallScore)
	}
	if len(gaps.MissingFields) == 0 {
		t.Error("empty fixture reported no missing fields")
	}
	if len(gaps.Recommendations) == 0 || gaps.Recommendations[0] != recRequestDocs {
		t.Errorf("expected generic documentation recommendation first, got %v", gaps.Recommendations)
	}
}
