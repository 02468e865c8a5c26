package ports

import (
	"context"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
)

// NewsProvider define el puerto hacia el proveedor externo de noticias.
type NewsProvider interface {
	// FetchRecent devuelve los artículos recientes sobre la cadena de
	// suministro de baterías (ventana y tope los fija el adaptador).
	FetchRecent(ctx context.Context) ([]entity.Article, error)
}

// AnalysisStore define el puerto de persistencia del batch de artículos ya
// analizados (el JSON que consume el cargador de pesos de riesgo).
type AnalysisStore interface {
	// Load devuelve el batch persistido. Si el origen no existe o está
	// corrupto devuelve error; una lista vacía NO es error.
	Load() ([]entity.ArticleAnalysis, error)
	Save(batch []entity.ArticleAnalysis) error
}
