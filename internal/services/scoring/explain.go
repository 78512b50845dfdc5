package scoring

import (
	"fmt"
	"strings"
)

// Explain renders the templated explanation for a scored transaction.
// At most the first three reasons are included.
func Explain(score int, reasons []string) string {
	var severity, action, description string
	switch {
	case score >= 70:
		severity = "high-risk"
		action = "immediate audit"
		description = "This transaction exhibits multiple red flags and deviates significantly from normal patterns."
	case score >= 40:
		severity = "medium-risk"
		action = "detailed review"
		description = "This transaction shows some concerning patterns that warrant closer examination."
	default:
		severity = "low-risk"
		action = "routine monitoring"
		description = "This transaction appears normal but is still being monitored for irregularities."
	}

	explanation := fmt.Sprintf("This transaction is classified as %s (Score: %d/100). ", severity, score)
	if len(reasons) == 0 {
		return explanation + fmt.Sprintf("No specific risk factors detected. Recommendation: %s.", action)
	}

	top := reasons
	if len(top) > 3 {
		top = top[:3]
	}
	return explanation + description + " Key concerns include: " +
		strings.Join(top, "; ") + fmt.Sprintf(". Recommendation: %s.", action)
}
