package scoring

import (
	"math"

	"transaction-analytics-backend/internal/models"
)

// DepartmentStat is the population baseline every transaction in a
// department is compared against.
type DepartmentStat struct {
	Mean  float64
	Std   float64
	Count int
}

// VendorKey identifies a vendor within a department.
type VendorKey struct {
	Department string
	VendorID   string
}

// BuildDepartmentStats computes mean and sample standard deviation of
// amount per department. A single-transaction department gets std 0
// rather than an undefined n-1 division.
func BuildDepartmentStats(txs []models.Transaction) map[string]DepartmentStat {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, tx := range txs {
		sums[tx.Department] += tx.Amount
		counts[tx.Department]++
	}

	stats := make(map[string]DepartmentStat, len(counts))
	for dept, n := range counts {
		mean := sums[dept] / float64(n)
		stats[dept] = DepartmentStat{Mean: mean, Count: n}
	}

	// Second pass for squared deviations; needs the completed means.
	sqDev := make(map[string]float64)
	for _, tx := range txs {
		d := tx.Amount - stats[tx.Department].Mean
		sqDev[tx.Department] += d * d
	}
	for dept, st := range stats {
		if st.Count > 1 {
			st.Std = math.Sqrt(sqDev[dept] / float64(st.Count-1))
		}
		stats[dept] = st
	}
	return stats
}

// BuildVendorDeptFrequency counts how often each vendor appears within
// each department in this batch only.
func BuildVendorDeptFrequency(txs []models.Transaction) map[VendorKey]int {
	freq := make(map[VendorKey]int)
	for _, tx := range txs {
		freq[VendorKey{Department: tx.Department, VendorID: tx.VendorID}]++
	}
	return freq
}
