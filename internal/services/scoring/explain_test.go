package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplainHighRisk(t *testing.T) {
	got := Explain(85, []string{"reason one"})
	assert.Equal(t,
		"This transaction is classified as high-risk (Score: 85/100). "+
			"This transaction exhibits multiple red flags and deviates significantly from normal patterns. "+
			"Key concerns include: reason one. Recommendation: immediate audit.",
		got)
}

func TestExplainTiers(t *testing.T) {
	cases := []struct {
		score    int
		severity string
		action   string
	}{
		{70, "high-risk", "immediate audit"},
		{69, "medium-risk", "detailed review"},
		{40, "medium-risk", "detailed review"},
		{39, "low-risk", "routine monitoring"},
		{0, "low-risk", "routine monitoring"},
	}
	for _, tc := range cases {
		got := Explain(tc.score, []string{"r"})
		assert.Contains(t, got, tc.severity, "score %d", tc.score)
		assert.Contains(t, got, "Recommendation: "+tc.action+".", "score %d", tc.score)
	}
}

func TestExplainNoReasons(t *testing.T) {
	got := Explain(0, nil)
	assert.Contains(t, got, "No specific risk factors detected.")
	assert.Contains(t, got, "Recommendation: routine monitoring.")
	assert.NotContains(t, got, "Key concerns")
}

func TestExplainTruncatesToThreeReasons(t *testing.T) {
	got := Explain(90, []string{"r1", "r2", "r3", "r4"})
	assert.Contains(t, got, "r1; r2; r3")
	assert.NotContains(t, got, "r4")
	assert.Equal(t, 2, strings.Count(got, ";"))
}
