package model

import (
	"time"
)

// Contract represents an uploaded contract document and its analysis results
type Contract struct {
	ID                 string            `json:"contract_id"`
	Filename           string            `json:"filename"`
	Tenant             string            `json:"tenant"`
	FileSize           int64             `json:"file_size"`
	ObjectName         string            `json:"-"`
	Status             string            `json:"status"` // pending, processing, completed, failed
	ProgressPercentage int               `json:"progress_percentage"`
	ErrorMessage       string            `json:"error_message,omitempty"`
	ExtractedData      *ExtractedData    `json:"extracted_data,omitempty"`
	ConfidenceScores   *ConfidenceScores `json:"confidence_scores,omitempty"`
	GapAnalysis        *GapAnalysis      `json:"gap_analysis,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// ContractStatus constants
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// ValidStatus reports whether s is one of the contract status constants
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}
