package models

import "time"

// Transaction is a single input row after permissive normalization.
// Uncoercible numeric fields are zeroed; an uncoercible date keeps the
// row but leaves DateValid false so date-keyed rollups can skip it.
type Transaction struct {
	PaymentUID       string
	Department       string
	VendorID         string
	Amount           float64
	TransactionDate  time.Time
	DateValid        bool
	IsMonthEnd       bool
	Month            int
	PaymentMode      string
	PaymentModeValid bool
}

// ScoredTransaction pairs a transaction with its evaluated risk. It is
// immutable once built; every aggregation reads from the same slice.
type ScoredTransaction struct {
	Transaction
	RiskScore int
	RiskLevel RiskLevel
	Reasons   []string
}
