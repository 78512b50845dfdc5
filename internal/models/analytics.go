package models

// AnalyzeRequest is the POST /analyze payload. Transactions stays a nil
// slice when the key is absent, which the handler rejects; an explicit
// empty list is a valid empty batch.
type AnalyzeRequest struct {
	DatasetID    string           `json:"datasetId"`
	Transactions []map[string]any `json:"transactions"`
}

// AnalyzeResponse is the POST /analyze response body. Analytics is nil
// (and omitted) for an empty batch.
type AnalyzeResponse struct {
	DatasetID string       `json:"datasetId"`
	Results   []RiskResult `json:"results"`
	Analytics *Analytics   `json:"analytics,omitempty"`
}

// Analytics bundles every rollup computed from one scored batch.
type Analytics struct {
	DepartmentAnalysis         []DepartmentSummary    `json:"departmentAnalysis"`
	DepartmentRiskDistribution []DepartmentRiskRow    `json:"departmentRiskDistribution"`
	VendorAnalysis             []VendorSummary        `json:"vendorAnalysis"`
	TimeSeriesAnalysis         []TimeSeriesPoint      `json:"timeSeriesAnalysis"`
	MonthEndStats              []MonthEndSummary      `json:"monthEndStats"`
	PaymentModeAnalysis        []PaymentModeSummary   `json:"paymentModeAnalysis"`
	RiskDistribution           RiskDistribution       `json:"riskDistribution"`
	StatisticalSummary         StatisticalSummary     `json:"statisticalSummary"`
	InvestigationInsights      []InvestigationInsight `json:"investigationInsights"`
}

type DepartmentSummary struct {
	Department       string  `json:"department"`
	TotalAmount      float64 `json:"totalAmount"`
	AvgAmount        float64 `json:"avgAmount"`
	MedianAmount     float64 `json:"medianAmount"`
	TransactionCount int     `json:"transactionCount"`
	AvgRiskScore     float64 `json:"avgRiskScore"`
	MaxRiskScore     int     `json:"maxRiskScore"`
}

// DepartmentRiskRow is one row of the department x risk-level count
// matrix; absent combinations stay zero.
type DepartmentRiskRow struct {
	Department string `json:"department"`
	Low        int    `json:"Low"`
	Medium     int    `json:"Medium"`
	High       int    `json:"High"`
}

type VendorSummary struct {
	VendorID         string  `json:"vendor_id"`
	TotalAmount      float64 `json:"totalAmount"`
	AvgAmount        float64 `json:"avgAmount"`
	TransactionCount int     `json:"transactionCount"`
	AvgRiskScore     float64 `json:"avgRiskScore"`
	MaxRiskScore     int     `json:"maxRiskScore"`
	DepartmentCount  int     `json:"departmentCount"`
}

type TimeSeriesPoint struct {
	Date             string  `json:"date"`
	TotalAmount      float64 `json:"totalAmount"`
	TransactionCount int     `json:"transactionCount"`
	AvgRiskScore     float64 `json:"avgRiskScore"`
}

type MonthEndSummary struct {
	IsMonthEnd   bool    `json:"isMonthEnd"`
	TotalAmount  float64 `json:"totalAmount"`
	AvgAmount    float64 `json:"avgAmount"`
	Count        int     `json:"count"`
	AvgRiskScore float64 `json:"avgRiskScore"`
}

type PaymentModeSummary struct {
	PaymentMode      string  `json:"paymentMode"`
	TotalAmount      float64 `json:"totalAmount"`
	AvgAmount        float64 `json:"avgAmount"`
	TransactionCount int     `json:"transactionCount"`
	AvgRiskScore     float64 `json:"avgRiskScore"`
}

// RiskDistribution always carries all three levels, zero-filled.
type RiskDistribution struct {
	Low    int `json:"Low"`
	Medium int `json:"Medium"`
	High   int `json:"High"`
}

type StatisticalSummary struct {
	TotalTransactions int     `json:"totalTransactions"`
	TotalAmount       float64 `json:"totalAmount"`
	AvgAmount         float64 `json:"avgAmount"`
	MedianAmount      float64 `json:"medianAmount"`
	StdAmount         float64 `json:"stdAmount"`
	AvgRiskScore      float64 `json:"avgRiskScore"`
	HighRiskCount     int     `json:"highRiskCount"`
	MediumRiskCount   int     `json:"mediumRiskCount"`
	LowRiskCount      int     `json:"lowRiskCount"`
	UniqueDepartments int     `json:"uniqueDepartments"`
	UniqueVendors     int     `json:"uniqueVendors"`
}

// VendorRisk ranks a vendor inside one department's insight.
type VendorRisk struct {
	VendorID         string  `json:"vendor_id"`
	AvgRiskScore     float64 `json:"avgRiskScore"`
	TotalAmount      float64 `json:"totalAmount"`
	TransactionCount int     `json:"transactionCount"`
}

// TimelineEntry is one high-risk transaction in a department's
// chronological suspicious-payment list.
type TimelineEntry struct {
	TransactionDate string  `json:"transaction_date"`
	Amount          float64 `json:"amount"`
	VendorID        string  `json:"vendor_id"`
}

type InvestigationInsight struct {
	Department         string          `json:"department"`
	TotalTransactions  int             `json:"totalTransactions"`
	HighRiskCount      int             `json:"highRiskCount"`
	AnomalyRate        float64         `json:"anomalyRate"`
	TopRiskyVendors    []VendorRisk    `json:"topRiskyVendors"`
	SuspiciousTimeline []TimelineEntry `json:"suspiciousTimeline"`
	Recommendation     string          `json:"recommendation"`
	AvgAmount          float64         `json:"avgAmount"`
	TotalAmount        float64         `json:"totalAmount"`
}
