package analysis

import (
	"github.com/rs/zerolog"

	"transaction-analytics-backend/internal/models"
	"transaction-analytics-backend/internal/services/analytics"
	"transaction-analytics-backend/internal/services/scoring"
)

// Service runs the full per-request pipeline: normalize, score, explain,
// aggregate. It holds no batch state, so it is safe to share across
// concurrent requests.
type Service struct {
	log zerolog.Logger
}

func NewService(log zerolog.Logger) *Service {
	return &Service{log: log}
}

// Analyze scores one batch and builds its analytics. A normalization
// error fails the whole request; an empty batch short-circuits with no
// analytics.
func (s *Service) Analyze(datasetID string, records []map[string]any) (*models.AnalyzeResponse, error) {
	txs, err := scoring.NormalizeTransactions(records)
	if err != nil {
		return nil, err
	}

	resp := &models.AnalyzeResponse{
		DatasetID: datasetID,
		Results:   []models.RiskResult{},
	}
	if len(txs) == 0 {
		return resp, nil
	}

	scored := scoring.ScoreBatch(txs)

	results := make([]models.RiskResult, 0, len(scored))
	for _, tx := range scored {
		results = append(results, models.RiskResult{
			PaymentUID:    tx.PaymentUID,
			RiskScore:     tx.RiskScore,
			RiskLevel:     tx.RiskLevel,
			Reasons:       tx.Reasons,
			AIExplanation: scoring.Explain(tx.RiskScore, tx.Reasons),
		})
	}

	resp.Results = results
	resp.Analytics = analytics.BuildAnalytics(scored)

	s.log.Debug().
		Str("dataset_id", datasetID).
		Int("transactions", len(scored)).
		Int("high_risk", resp.Analytics.RiskDistribution.High).
		Msg("batch analyzed")

	return resp, nil
}
