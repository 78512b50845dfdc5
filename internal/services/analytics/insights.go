package analytics

import (
	"fmt"
	"sort"

	"transaction-analytics-backend/internal/models"
)

const (
	maxRankedVendors   = 5
	maxTimelineEntries = 10
)

const timelineLayout = "2006-01-02 15:04:05"

// BuildInvestigationInsights ranks every department by anomaly rate and
// attaches its riskiest vendors, its chronological high-risk timeline,
// and a generated recommendation. Departments are visited in first
// appearance order so equal anomaly rates keep a stable ordering.
func BuildInvestigationInsights(scored []models.ScoredTransaction) []models.InvestigationInsight {
	var order []string
	byDept := make(map[string][]models.ScoredTransaction)
	for _, tx := range scored {
		if _, ok := byDept[tx.Department]; !ok {
			order = append(order, tx.Department)
		}
		byDept[tx.Department] = append(byDept[tx.Department], tx)
	}

	insights := make([]models.InvestigationInsight, 0, len(order))
	for _, dept := range order {
		txs := byDept[dept]
		total := len(txs)

		var highRisk int
		var totalAmt float64
		for _, tx := range txs {
			totalAmt += tx.Amount
			if tx.RiskLevel == models.RiskHigh {
				highRisk++
			}
		}

		anomalyRate := 0.0
		if total > 0 {
			anomalyRate = float64(highRisk) / float64(total) * 100
		}

		topVendors := rankVendorsByRisk(txs)
		insights = append(insights, models.InvestigationInsight{
			Department:         dept,
			TotalTransactions:  total,
			HighRiskCount:      highRisk,
			AnomalyRate:        anomalyRate,
			TopRiskyVendors:    topVendors,
			SuspiciousTimeline: suspiciousTimeline(txs),
			Recommendation:     recommendation(dept, anomalyRate, highRisk, total, topVendors),
			AvgAmount:          totalAmt / float64(total),
			TotalAmount:        totalAmt,
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].AnomalyRate > insights[j].AnomalyRate
	})
	return insights
}

func rankVendorsByRisk(txs []models.ScoredTransaction) []models.VendorRisk {
	type acc struct {
		riskSum  int
		totalAmt float64
		count    int
	}
	groups := make(map[string]*acc)
	for _, tx := range txs {
		g, ok := groups[tx.VendorID]
		if !ok {
			g = &acc{}
			groups[tx.VendorID] = g
		}
		g.riskSum += tx.RiskScore
		g.totalAmt += tx.Amount
		g.count++
	}

	ranked := make([]models.VendorRisk, 0, len(groups))
	for vendor, g := range groups {
		ranked = append(ranked, models.VendorRisk{
			VendorID:         vendor,
			AvgRiskScore:     float64(g.riskSum) / float64(g.count),
			TotalAmount:      g.totalAmt,
			TransactionCount: g.count,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AvgRiskScore != ranked[j].AvgRiskScore {
			return ranked[i].AvgRiskScore > ranked[j].AvgRiskScore
		}
		return ranked[i].VendorID < ranked[j].VendorID
	})
	if len(ranked) > maxRankedVendors {
		ranked = ranked[:maxRankedVendors]
	}
	return ranked
}

// suspiciousTimeline lists the department's high-risk transactions in
// date order. Rows with an unparsable date sort last and render an
// empty date string.
func suspiciousTimeline(txs []models.ScoredTransaction) []models.TimelineEntry {
	var high []models.ScoredTransaction
	for _, tx := range txs {
		if tx.RiskLevel == models.RiskHigh {
			high = append(high, tx)
		}
	}
	sort.SliceStable(high, func(i, j int) bool {
		if high[i].DateValid != high[j].DateValid {
			return high[i].DateValid
		}
		return high[i].TransactionDate.Before(high[j].TransactionDate)
	})
	if len(high) > maxTimelineEntries {
		high = high[:maxTimelineEntries]
	}

	entries := make([]models.TimelineEntry, 0, len(high))
	for _, tx := range high {
		date := ""
		if tx.DateValid {
			date = tx.TransactionDate.Format(timelineLayout)
		}
		entries = append(entries, models.TimelineEntry{
			TransactionDate: date,
			Amount:          tx.Amount,
			VendorID:        tx.VendorID,
		})
	}
	return entries
}

func recommendation(dept string, anomalyRate float64, highRisk, total int, topVendors []models.VendorRisk) string {
	var priority, action string
	switch {
	case anomalyRate >= 30:
		priority = "HIGH PRIORITY"
		action = fmt.Sprintf("Immediate comprehensive audit recommended for %s", dept)
	case anomalyRate >= 15:
		priority = "MEDIUM PRIORITY"
		action = fmt.Sprintf("Scheduled review recommended for %s", dept)
	default:
		priority = "LOW PRIORITY"
		action = fmt.Sprintf("Continue routine monitoring for %s", dept)
	}

	rec := fmt.Sprintf("[%s] %s. ", priority, action)
	rec += fmt.Sprintf("Department shows %.1f%% anomaly rate (%d out of %d transactions flagged). ",
		anomalyRate, highRisk, total)

	if len(topVendors) > 0 {
		rec += fmt.Sprintf("Focus investigation on Vendor %s with average risk score of %.1f. ",
			topVendors[0].VendorID, topVendors[0].AvgRiskScore)
	}
	if anomalyRate >= 20 {
		rec += "Estimated potential leakage could be significant. Prioritize this department in next audit cycle."
	}
	return rec
}
