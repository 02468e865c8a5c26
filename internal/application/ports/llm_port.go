package ports

import "context"

// RiskNarrator define el puerto de salida hacia el LLM que redacta el
// análisis cualitativo de riesgo. Cualquier adaptador (Groq, OpenAI, Ollama,
// mock) debe implementar esta interfaz; la aplicación solo conoce este
// contrato, no la implementación concreta (DIP).
type RiskNarrator interface {
	// AnalyzeRisk recibe el contenido (artículo o contexto de inventario) y
	// devuelve un informe estructurado en texto libre.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	AnalyzeRisk(ctx context.Context, content string) (string, error)
}
