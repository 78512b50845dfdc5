package analytics

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transaction-analytics-backend/internal/models"
)

func TestInsightsAnomalyRateAndSorting(t *testing.T) {
	scored := []models.ScoredTransaction{
		// Quiet department first so sorting has to reorder.
		stx("Quiet", "V1", 100, 10),
		stx("Quiet", "V2", 100, 10),
		stx("Noisy", "V1", 100, 90),
		stx("Noisy", "V2", 100, 10),
	}

	insights := BuildInvestigationInsights(scored)
	require.Len(t, insights, 2)

	noisy := insights[0]
	assert.Equal(t, "Noisy", noisy.Department)
	assert.Equal(t, 2, noisy.TotalTransactions)
	assert.Equal(t, 1, noisy.HighRiskCount)
	assert.Equal(t, 50.0, noisy.AnomalyRate)
	assert.Equal(t, 100.0, noisy.AvgAmount)
	assert.Equal(t, 200.0, noisy.TotalAmount)

	quiet := insights[1]
	assert.Equal(t, "Quiet", quiet.Department)
	assert.Equal(t, 0.0, quiet.AnomalyRate)
}

func TestInsightsStableOrderOnEqualRates(t *testing.T) {
	scored := []models.ScoredTransaction{
		stx("B-first", "V1", 1, 0),
		stx("A-second", "V1", 1, 0),
	}
	insights := BuildInvestigationInsights(scored)
	require.Len(t, insights, 2)
	assert.Equal(t, "B-first", insights[0].Department)
	assert.Equal(t, "A-second", insights[1].Department)
}

func TestTopRiskyVendorsRanking(t *testing.T) {
	var scored []models.ScoredTransaction
	for i := 0; i < 7; i++ {
		scored = append(scored, stx("D", fmt.Sprintf("V%d", i), 10, i*10))
	}

	insights := BuildInvestigationInsights(scored)
	require.Len(t, insights, 1)
	vendors := insights[0].TopRiskyVendors
	require.Len(t, vendors, 5)
	assert.Equal(t, "V6", vendors[0].VendorID)
	assert.Equal(t, 60.0, vendors[0].AvgRiskScore)
	for i := 1; i < len(vendors); i++ {
		assert.GreaterOrEqual(t, vendors[i-1].AvgRiskScore, vendors[i].AvgRiskScore)
	}
}

func TestSuspiciousTimelineChronologicalCap(t *testing.T) {
	var scored []models.ScoredTransaction
	for i := 12; i >= 1; i-- {
		tx := withDate(stx("D", "V1", float64(i), 90), fmt.Sprintf("2024-03-%02d", i))
		scored = append(scored, tx)
	}
	// A high-risk row without a date sorts after all dated rows but the
	// cap already excludes it here.
	scored = append(scored, stx("D", "V2", 999, 90))
	// Low-risk rows never enter the timeline.
	scored = append(scored, stx("D", "V3", 1, 0))

	insights := BuildInvestigationInsights(scored)
	timeline := insights[0].SuspiciousTimeline
	require.Len(t, timeline, 10)
	assert.Equal(t, "2024-03-01 00:00:00", timeline[0].TransactionDate)
	assert.Equal(t, "2024-03-10 00:00:00", timeline[9].TransactionDate)
}

func TestSuspiciousTimelineUndatedLast(t *testing.T) {
	undated := stx("D", "V9", 50, 90)
	scored := []models.ScoredTransaction{
		undated,
		withDate(stx("D", "V1", 10, 90), "2024-05-01"),
	}

	timeline := BuildInvestigationInsights(scored)[0].SuspiciousTimeline
	require.Len(t, timeline, 2)
	assert.Equal(t, "2024-05-01 00:00:00", timeline[0].TransactionDate)
	assert.Equal(t, "", timeline[1].TransactionDate)
	assert.Equal(t, "V9", timeline[1].VendorID)
}

func TestRecommendationPriorities(t *testing.T) {
	mk := func(high, low int) []models.ScoredTransaction {
		var scored []models.ScoredTransaction
		for i := 0; i < high; i++ {
			scored = append(scored, stx("Dept", "V1", 10, 90))
		}
		for i := 0; i < low; i++ {
			scored = append(scored, stx("Dept", "V2", 10, 0))
		}
		return scored
	}

	// 40% anomaly rate: high priority plus leakage escalation.
	rec := BuildInvestigationInsights(mk(2, 3))[0].Recommendation
	assert.True(t, strings.HasPrefix(rec, "[HIGH PRIORITY] Immediate comprehensive audit recommended for Dept. "), rec)
	assert.Contains(t, rec, "Department shows 40.0% anomaly rate (2 out of 5 transactions flagged).")
	assert.Contains(t, rec, "Focus investigation on Vendor V1 with average risk score of 90.0.")
	assert.Contains(t, rec, "Estimated potential leakage could be significant.")

	// 20% sits in the medium band and still escalates leakage.
	rec = BuildInvestigationInsights(mk(1, 4))[0].Recommendation
	assert.True(t, strings.HasPrefix(rec, "[MEDIUM PRIORITY] Scheduled review recommended for Dept. "), rec)
	assert.Contains(t, rec, "20.0% anomaly rate")
	assert.Contains(t, rec, "Estimated potential leakage")

	// 10%: low priority, no leakage sentence.
	rec = BuildInvestigationInsights(mk(1, 9))[0].Recommendation
	assert.True(t, strings.HasPrefix(rec, "[LOW PRIORITY] Continue routine monitoring for Dept. "), rec)
	assert.NotContains(t, rec, "leakage")
}
