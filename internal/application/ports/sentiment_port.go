package ports

// SentimentScorer define el puerto hacia el clasificador léxico de
// sentimiento. Polarity devuelve un valor en [-1,1]: negativo = pesimista,
// positivo = optimista.
type SentimentScorer interface {
	Polarity(text string) float64
}
