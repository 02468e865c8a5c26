package risk

import (
	"github.com/jhoicas/SupplyRisk-api/internal/application/ports"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	domrisk "github.com/jhoicas/SupplyRisk-api/internal/domain/risk"
)

// LoadWeights deriva los pesos del motor desde el batch de análisis previo.
//
// Dos rutas de respaldo distintas, y hay que preservarlas tal cual:
//   - batch ilegible o corrupto → set completo por defecto {0.3, 0.2, 0.3, 0.2};
//   - batch presente pero sin scores (lista vacía) → promedio 0.5, es decir
//     {0.3, 0.2, 0.5, 0.5}.
func LoadWeights(store ports.AnalysisStore) domrisk.Weights {
	batch, err := store.Load()
	if err != nil {
		return domrisk.DefaultWeights()
	}
	mean := domrisk.MeanSentiment(ScoresFromBatch(batch))
	return domrisk.WeightsFromMean(mean)
}

// ScoresFromBatch extrae los scores de sentimiento presentes en el batch
// (los artículos sin sentiment_analysis se ignoran).
func ScoresFromBatch(batch []entity.ArticleAnalysis) []float64 {
	scores := make([]float64, 0, len(batch))
	for _, a := range batch {
		if a.Sentiment != nil {
			scores = append(scores, a.Sentiment.Score)
		}
	}
	return scores
}
