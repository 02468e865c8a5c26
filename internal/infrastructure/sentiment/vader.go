// Package sentiment implementa el puerto SentimentScorer con el clasificador
// léxico VADER. No hace llamadas externas: el léxico viene embebido.
package sentiment

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"

	"github.com/jhoicas/SupplyRisk-api/internal/application/ports"
)

var _ ports.SentimentScorer = (*VaderScorer)(nil)

// VaderScorer clasificador léxico de sentimiento basado en VADER.
type VaderScorer struct{}

// NewVaderScorer construye el scorer.
func NewVaderScorer() *VaderScorer { return &VaderScorer{} }

// Polarity devuelve el score compound de VADER en [-1,1] para el texto dado.
// Un texto vacío o sin términos del léxico da 0 (neutro).
func (s *VaderScorer) Polarity(text string) float64 {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}
