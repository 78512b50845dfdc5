package scoring

import (
	"fmt"

	"transaction-analytics-backend/internal/models"
)

const maxRiskScore = 100

// ruleInput carries a transaction joined with its department baseline
// and vendor frequency.
type ruleInput struct {
	tx          models.Transaction
	deptMean    float64
	deptStd     float64
	vendorCount int
}

// rule is one fixed risk predicate. Rules are independent and additive;
// evaluation order fixes the reason ordering.
type rule struct {
	weight int
	eval   func(in ruleInput) (bool, string)
}

var riskRules = []rule{
	{
		weight: 30,
		eval: func(in ruleInput) (bool, string) {
			if in.tx.Amount > 2*in.deptMean {
				return true, fmt.Sprintf("Amount (%.2f) exceeds 2x department mean (%.2f)", in.tx.Amount, in.deptMean)
			}
			return false, ""
		},
	},
	{
		weight: 20,
		eval: func(in ruleInput) (bool, string) {
			if in.vendorCount > 3 {
				return true, fmt.Sprintf("Vendor appears %d times in department (>3 threshold)", in.vendorCount)
			}
			return false, ""
		},
	},
	{
		weight: 15,
		eval: func(in ruleInput) (bool, string) {
			if in.tx.IsMonthEnd {
				return true, "Transaction occurred at month-end"
			}
			return false, ""
		},
	},
	{
		weight: 25,
		eval: func(in ruleInput) (bool, string) {
			if in.tx.Amount > in.deptMean+2*in.deptStd {
				return true, "Amount is statistical outlier (>mean + 2×std)"
			}
			return false, ""
		},
	},
}

// ScoreBatch joins department statistics and vendor frequencies onto
// each transaction, folds the rule set into a clamped score with its
// reasons, and classifies the level. Statistics must be built over the
// full batch before any row is evaluated.
func ScoreBatch(txs []models.Transaction) []models.ScoredTransaction {
	stats := BuildDepartmentStats(txs)
	freq := BuildVendorDeptFrequency(txs)

	scored := make([]models.ScoredTransaction, 0, len(txs))
	for _, tx := range txs {
		st := stats[tx.Department]
		in := ruleInput{
			tx:          tx,
			deptMean:    st.Mean,
			deptStd:     st.Std,
			vendorCount: freq[VendorKey{Department: tx.Department, VendorID: tx.VendorID}],
		}

		score := 0
		reasons := []string{}
		for _, r := range riskRules {
			if hit, reason := r.eval(in); hit {
				score += r.weight
				reasons = append(reasons, reason)
			}
		}
		if score > maxRiskScore {
			score = maxRiskScore
		}

		scored = append(scored, models.ScoredTransaction{
			Transaction: tx,
			RiskScore:   score,
			RiskLevel:   models.ClassifyRisk(score),
			Reasons:     reasons,
		})
	}
	return scored
}
