package analytics

import (
	"math"
	"sort"

	"transaction-analytics-backend/internal/models"
)

// BuildAnalytics computes every rollup over one scored batch. Each
// rollup is an independent pass; all orderings are deterministic so an
// identical batch always produces an identical response.
func BuildAnalytics(scored []models.ScoredTransaction) *models.Analytics {
	return &models.Analytics{
		DepartmentAnalysis:         departmentAnalysis(scored),
		DepartmentRiskDistribution: departmentRiskDistribution(scored),
		VendorAnalysis:             vendorAnalysis(scored),
		TimeSeriesAnalysis:         timeSeriesAnalysis(scored),
		MonthEndStats:              monthEndStats(scored),
		PaymentModeAnalysis:        paymentModeAnalysis(scored),
		RiskDistribution:           riskDistribution(scored),
		StatisticalSummary:         statisticalSummary(scored),
		InvestigationInsights:      BuildInvestigationInsights(scored),
	}
}

func departmentAnalysis(scored []models.ScoredTransaction) []models.DepartmentSummary {
	type acc struct {
		amounts  []float64
		totalAmt float64
		riskSum  int
		riskMax  int
	}
	groups := make(map[string]*acc)
	for _, tx := range scored {
		g, ok := groups[tx.Department]
		if !ok {
			g = &acc{}
			groups[tx.Department] = g
		}
		g.amounts = append(g.amounts, tx.Amount)
		g.totalAmt += tx.Amount
		g.riskSum += tx.RiskScore
		if tx.RiskScore > g.riskMax {
			g.riskMax = tx.RiskScore
		}
	}

	rows := make([]models.DepartmentSummary, 0, len(groups))
	for dept, g := range groups {
		n := len(g.amounts)
		rows = append(rows, models.DepartmentSummary{
			Department:       dept,
			TotalAmount:      g.totalAmt,
			AvgAmount:        g.totalAmt / float64(n),
			MedianAmount:     median(g.amounts),
			TransactionCount: n,
			AvgRiskScore:     float64(g.riskSum) / float64(n),
			MaxRiskScore:     g.riskMax,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Department < rows[j].Department })
	return rows
}

func departmentRiskDistribution(scored []models.ScoredTransaction) []models.DepartmentRiskRow {
	groups := make(map[string]*models.DepartmentRiskRow)
	for _, tx := range scored {
		row, ok := groups[tx.Department]
		if !ok {
			row = &models.DepartmentRiskRow{Department: tx.Department}
			groups[tx.Department] = row
		}
		switch tx.RiskLevel {
		case models.RiskHigh:
			row.High++
		case models.RiskMedium:
			row.Medium++
		default:
			row.Low++
		}
	}

	rows := make([]models.DepartmentRiskRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Department < rows[j].Department })
	return rows
}

func vendorAnalysis(scored []models.ScoredTransaction) []models.VendorSummary {
	type acc struct {
		totalAmt float64
		count    int
		riskSum  int
		riskMax  int
		depts    map[string]struct{}
	}
	groups := make(map[string]*acc)
	for _, tx := range scored {
		g, ok := groups[tx.VendorID]
		if !ok {
			g = &acc{depts: make(map[string]struct{})}
			groups[tx.VendorID] = g
		}
		g.totalAmt += tx.Amount
		g.count++
		g.riskSum += tx.RiskScore
		if tx.RiskScore > g.riskMax {
			g.riskMax = tx.RiskScore
		}
		g.depts[tx.Department] = struct{}{}
	}

	rows := make([]models.VendorSummary, 0, len(groups))
	for vendor, g := range groups {
		rows = append(rows, models.VendorSummary{
			VendorID:         vendor,
			TotalAmount:      g.totalAmt,
			AvgAmount:        g.totalAmt / float64(g.count),
			TransactionCount: g.count,
			AvgRiskScore:     float64(g.riskSum) / float64(g.count),
			MaxRiskScore:     g.riskMax,
			DepartmentCount:  len(g.depts),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalAmount != rows[j].TotalAmount {
			return rows[i].TotalAmount > rows[j].TotalAmount
		}
		return rows[i].VendorID < rows[j].VendorID
	})
	if len(rows) > 20 {
		rows = rows[:20]
	}
	return rows
}

// timeSeriesAnalysis groups by calendar day. Rows whose date failed to
// parse are excluded from this rollup only.
func timeSeriesAnalysis(scored []models.ScoredTransaction) []models.TimeSeriesPoint {
	type acc struct {
		totalAmt float64
		count    int
		riskSum  int
	}
	groups := make(map[string]*acc)
	for _, tx := range scored {
		if !tx.DateValid {
			continue
		}
		day := tx.TransactionDate.Format("2006-01-02")
		g, ok := groups[day]
		if !ok {
			g = &acc{}
			groups[day] = g
		}
		g.totalAmt += tx.Amount
		g.count++
		g.riskSum += tx.RiskScore
	}

	rows := make([]models.TimeSeriesPoint, 0, len(groups))
	for day, g := range groups {
		rows = append(rows, models.TimeSeriesPoint{
			Date:             day,
			TotalAmount:      g.totalAmt,
			TransactionCount: g.count,
			AvgRiskScore:     float64(g.riskSum) / float64(g.count),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

func monthEndStats(scored []models.ScoredTransaction) []models.MonthEndSummary {
	type acc struct {
		totalAmt float64
		count    int
		riskSum  int
	}
	groups := make(map[bool]*acc)
	for _, tx := range scored {
		g, ok := groups[tx.IsMonthEnd]
		if !ok {
			g = &acc{}
			groups[tx.IsMonthEnd] = g
		}
		g.totalAmt += tx.Amount
		g.count++
		g.riskSum += tx.RiskScore
	}

	rows := make([]models.MonthEndSummary, 0, 2)
	for _, flag := range []bool{false, true} {
		g, ok := groups[flag]
		if !ok {
			continue
		}
		rows = append(rows, models.MonthEndSummary{
			IsMonthEnd:   flag,
			TotalAmount:  g.totalAmt,
			AvgAmount:    g.totalAmt / float64(g.count),
			Count:        g.count,
			AvgRiskScore: float64(g.riskSum) / float64(g.count),
		})
	}
	return rows
}

// paymentModeAnalysis stays empty when no row in the batch carried a
// payment mode; rows without one are excluded from this rollup only.
func paymentModeAnalysis(scored []models.ScoredTransaction) []models.PaymentModeSummary {
	type acc struct {
		totalAmt float64
		count    int
		riskSum  int
	}
	groups := make(map[string]*acc)
	for _, tx := range scored {
		if !tx.PaymentModeValid {
			continue
		}
		g, ok := groups[tx.PaymentMode]
		if !ok {
			g = &acc{}
			groups[tx.PaymentMode] = g
		}
		g.totalAmt += tx.Amount
		g.count++
		g.riskSum += tx.RiskScore
	}

	rows := make([]models.PaymentModeSummary, 0, len(groups))
	for mode, g := range groups {
		rows = append(rows, models.PaymentModeSummary{
			PaymentMode:      mode,
			TotalAmount:      g.totalAmt,
			AvgAmount:        g.totalAmt / float64(g.count),
			TransactionCount: g.count,
			AvgRiskScore:     float64(g.riskSum) / float64(g.count),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PaymentMode < rows[j].PaymentMode })
	return rows
}

func riskDistribution(scored []models.ScoredTransaction) models.RiskDistribution {
	var dist models.RiskDistribution
	for _, tx := range scored {
		switch tx.RiskLevel {
		case models.RiskHigh:
			dist.High++
		case models.RiskMedium:
			dist.Medium++
		default:
			dist.Low++
		}
	}
	return dist
}

func statisticalSummary(scored []models.ScoredTransaction) models.StatisticalSummary {
	n := len(scored)
	amounts := make([]float64, 0, n)
	depts := make(map[string]struct{})
	vendors := make(map[string]struct{})

	var totalAmt float64
	var riskSum int
	var high, medium, low int
	for _, tx := range scored {
		amounts = append(amounts, tx.Amount)
		totalAmt += tx.Amount
		riskSum += tx.RiskScore
		depts[tx.Department] = struct{}{}
		vendors[tx.VendorID] = struct{}{}
		switch tx.RiskLevel {
		case models.RiskHigh:
			high++
		case models.RiskMedium:
			medium++
		default:
			low++
		}
	}

	return models.StatisticalSummary{
		TotalTransactions: n,
		TotalAmount:       totalAmt,
		AvgAmount:         totalAmt / float64(n),
		MedianAmount:      median(amounts),
		StdAmount:         sampleStd(amounts),
		AvgRiskScore:      float64(riskSum) / float64(n),
		HighRiskCount:     high,
		MediumRiskCount:   medium,
		LowRiskCount:      low,
		UniqueDepartments: len(depts),
		UniqueVendors:     len(vendors),
	}
}

// median interpolates the middle pair for even-length input.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// sampleStd is the n-1 standard deviation, 0 for fewer than two values.
func sampleStd(values []float64) float64 {
	n := len(values)
	if n <= 1 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)
	var sqDev float64
	for _, v := range values {
		d := v - mean
		sqDev += d * d
	}
	return math.Sqrt(sqDev / float64(n-1))
}
