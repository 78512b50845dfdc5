package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transaction-analytics-backend/internal/models"
)

func findScored(t *testing.T, scored []models.ScoredTransaction, uid string) models.ScoredTransaction {
	t.Helper()
	for _, s := range scored {
		if s.PaymentUID == uid {
			return s
		}
	}
	t.Fatalf("transaction %s not found", uid)
	return models.ScoredTransaction{}
}

func TestAmountSpikeRule(t *testing.T) {
	// Finance: amounts 100, 100, 1000 -> mean 400, sample std ~519.6.
	// The 1000 transaction exceeds 2x mean (800) but not mean + 2*std (~1439.2).
	txs := []models.Transaction{
		{PaymentUID: "p1", Department: "Finance", VendorID: "V1", Amount: 100},
		{PaymentUID: "p2", Department: "Finance", VendorID: "V2", Amount: 100},
		{PaymentUID: "p3", Department: "Finance", VendorID: "V3", Amount: 1000},
	}

	scored := ScoreBatch(txs)
	spike := findScored(t, scored, "p3")
	assert.Equal(t, 30, spike.RiskScore)
	assert.Equal(t, models.RiskLow, spike.RiskLevel)
	require.Len(t, spike.Reasons, 1)
	assert.Equal(t, "Amount (1000.00) exceeds 2x department mean (400.00)", spike.Reasons[0])
}

func TestVendorConcentrationStrictThreshold(t *testing.T) {
	mk := func(n int) []models.Transaction {
		txs := make([]models.Transaction, 0, n)
		for i := 0; i < n; i++ {
			txs = append(txs, models.Transaction{
				PaymentUID: string(rune('a' + i)),
				Department: "Ops", VendorID: "V1", Amount: 50,
			})
		}
		return txs
	}

	// Exactly 3 appearances does not trigger.
	for _, s := range ScoreBatch(mk(3)) {
		assert.Equal(t, 0, s.RiskScore)
		assert.Empty(t, s.Reasons)
	}

	// 4 appearances triggers on every one of them.
	for _, s := range ScoreBatch(mk(4)) {
		assert.Equal(t, 20, s.RiskScore)
		require.Len(t, s.Reasons, 1)
		assert.Equal(t, "Vendor appears 4 times in department (>3 threshold)", s.Reasons[0])
	}
}

func TestMonthEndRule(t *testing.T) {
	scored := ScoreBatch([]models.Transaction{
		{PaymentUID: "p1", Department: "HR", VendorID: "V1", Amount: 100, IsMonthEnd: true},
	})
	s := scored[0]
	assert.Equal(t, 15, s.RiskScore)
	require.Len(t, s.Reasons, 1)
	assert.Equal(t, "Transaction occurred at month-end", s.Reasons[0])
}

func TestOutlierRuleSingleTransactionDepartment(t *testing.T) {
	// With one transaction, amount == mean and std == 0, so the outlier
	// rule (amount > mean + 2*std) can never trigger.
	scored := ScoreBatch([]models.Transaction{
		{PaymentUID: "p1", Department: "Solo", VendorID: "V1", Amount: 99999},
	})
	assert.Equal(t, 0, scored[0].RiskScore)
	assert.Empty(t, scored[0].Reasons)
}

func TestAllRulesTriggerInOrder(t *testing.T) {
	// Eight transactions of 100 plus one of 1000 in one department:
	// mean 200, sample std 300. The 1000 transaction exceeds 2x mean
	// (400) and mean + 2*std (800). Its vendor appears 4 times and it
	// lands on month-end, so all four rules fire.
	date := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		{PaymentUID: "big", Department: "Ops", VendorID: "V1", Amount: 1000, IsMonthEnd: true, TransactionDate: date, DateValid: true},
	}
	for i := 0; i < 8; i++ {
		vendor := "V2"
		if i < 3 {
			vendor = "V1"
		}
		txs = append(txs, models.Transaction{
			PaymentUID: string(rune('a' + i)),
			Department: "Ops", VendorID: vendor, Amount: 100,
		})
	}

	scored := ScoreBatch(txs)
	big := findScored(t, scored, "big")
	assert.Equal(t, 90, big.RiskScore)
	assert.LessOrEqual(t, big.RiskScore, 100)
	assert.Equal(t, models.RiskHigh, big.RiskLevel)
	require.Len(t, big.Reasons, 4)
	assert.Equal(t, "Amount (1000.00) exceeds 2x department mean (200.00)", big.Reasons[0])
	assert.Equal(t, "Vendor appears 4 times in department (>3 threshold)", big.Reasons[1])
	assert.Equal(t, "Transaction occurred at month-end", big.Reasons[2])
	assert.Equal(t, "Amount is statistical outlier (>mean + 2×std)", big.Reasons[3])
}

func TestReasonsNeverNil(t *testing.T) {
	scored := ScoreBatch([]models.Transaction{
		{PaymentUID: "p1", Department: "A", VendorID: "V1", Amount: 10},
		{PaymentUID: "p2", Department: "A", VendorID: "V2", Amount: 10},
	})
	for _, s := range scored {
		assert.NotNil(t, s.Reasons)
		assert.Empty(t, s.Reasons)
	}
}

func TestScoreBoundsHold(t *testing.T) {
	txs := []models.Transaction{
		{PaymentUID: "p1", Department: "A", VendorID: "V1", Amount: 5000, IsMonthEnd: true},
		{PaymentUID: "p2", Department: "A", VendorID: "V1", Amount: 10},
		{PaymentUID: "p3", Department: "A", VendorID: "V1", Amount: 10},
		{PaymentUID: "p4", Department: "A", VendorID: "V1", Amount: 10, IsMonthEnd: true},
	}
	for _, s := range ScoreBatch(txs) {
		assert.GreaterOrEqual(t, s.RiskScore, 0)
		assert.LessOrEqual(t, s.RiskScore, 100)
	}
}
