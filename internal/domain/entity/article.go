package entity

// Article artículo de noticias crudo tal como lo entrega el proveedor.
type Article struct {
	Source   string `json:"source"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	DateTime string `json:"dateTime"`
}

// SentimentResult resultado del clasificador de sentimiento para un artículo.
// Score está en [0,1]; Label es POSITIVE o NEGATIVE.
type SentimentResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ArticleAnalysis artículo ya analizado: sentimiento + informe cualitativo
// del LLM. Es el formato persistido en el batch JSON que consume el
// cargador de pesos de riesgo.
type ArticleAnalysis struct {
	Title        string           `json:"title"`
	Source       string           `json:"source"`
	DateTime     string           `json:"dateTime"`
	Sentiment    *SentimentResult `json:"sentiment_analysis,omitempty"`
	RiskAnalysis string           `json:"risk_analysis,omitempty"`
}
