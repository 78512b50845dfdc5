package models

import "fmt"

// RiskLevel is an ordinal classification of a risk score (Low < Medium < High).
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

func (l RiskLevel) String() string {
	switch l {
	case RiskHigh:
		return "High"
	case RiskMedium:
		return "Medium"
	default:
		return "Low"
	}
}

func (l RiskLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

func (l *RiskLevel) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"Low"`:
		*l = RiskLow
	case `"Medium"`:
		*l = RiskMedium
	case `"High"`:
		*l = RiskHigh
	default:
		return fmt.Errorf("unknown risk level %s", b)
	}
	return nil
}

// ClassifyRisk buckets a clamped 0-100 score into its level.
func ClassifyRisk(score int) RiskLevel {
	switch {
	case score >= 70:
		return RiskHigh
	case score >= 40:
		return RiskMedium
	default:
		return RiskLow
	}
}

// RiskResult is the per-transaction entry of the response body.
type RiskResult struct {
	PaymentUID    string    `json:"payment_uid"`
	RiskScore     int       `json:"riskScore"`
	RiskLevel     RiskLevel `json:"riskLevel"`
	Reasons       []string  `json:"reasons"`
	AIExplanation string    `json:"aiExplanation"`
}
