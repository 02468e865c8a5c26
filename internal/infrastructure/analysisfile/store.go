// Package analysisfile implementa el puerto AnalysisStore sobre un archivo
// JSON local. Es el formato que consume el cargador de pesos de riesgo al
// arrancar y el que escribe el pipeline de noticias.
package analysisfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/SupplyRisk-api/internal/application/ports"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
)

var _ ports.AnalysisStore = (*Store)(nil)

// Store almacén del batch de análisis en un archivo JSON.
type Store struct {
	path string
}

// NewStore construye el almacén sobre la ruta dada.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load lee y deserializa el batch. Un archivo ausente o con JSON inválido
// devuelve error; una lista vacía es un resultado válido.
func (s *Store) Load() ([]entity.ArticleAnalysis, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("analysis store: leer %s: %w", s.path, err)
	}
	var batch []entity.ArticleAnalysis
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, fmt.Errorf("analysis store: parsear %s: %w", s.path, err)
	}
	if batch == nil {
		batch = []entity.ArticleAnalysis{}
	}
	return batch, nil
}

// Save serializa el batch y lo escribe de forma atómica (archivo temporal y
// rename), creando el directorio si hace falta.
func (s *Store) Save(batch []entity.ArticleAnalysis) error {
	if batch == nil {
		batch = []entity.ArticleAnalysis{}
	}
	raw, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("analysis store: serializar batch: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("analysis store: crear directorio %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".analysis-*.json")
	if err != nil {
		return fmt.Errorf("analysis store: archivo temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("analysis store: escribir batch: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("analysis store: cerrar archivo temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("analysis store: reemplazar %s: %w", s.path, err)
	}
	return nil
}
