package analysisfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/internal/infrastructure/analysisfile"
)

func TestStore_SaveYLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "analysis_results.json")
	store := analysisfile.NewStore(path)

	batch := []entity.ArticleAnalysis{
		{
			Title:    "cobalt shortage looms",
			Source:   "FT",
			DateTime: "2026-08-28T10:00:00Z",
			Sentiment: &entity.SentimentResult{
				Label: "NEGATIVE",
				Score: 0.2,
			},
			RiskAnalysis: "High severity.",
		},
	}
	require.NoError(t, store.Save(batch))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "cobalt shortage looms", got[0].Title)
	require.NotNil(t, got[0].Sentiment)
	assert.Equal(t, "NEGATIVE", got[0].Sentiment.Label)
	assert.InDelta(t, 0.2, got[0].Sentiment.Score, 1e-9)
}

func TestStore_ArchivoAusente(t *testing.T) {
	store := analysisfile.NewStore(filepath.Join(t.TempDir(), "no-existe.json"))

	_, err := store.Load()
	require.Error(t, err)
}

func TestStore_JSONCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis_results.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := analysisfile.NewStore(path).Load()
	require.Error(t, err)
}

func TestStore_ListaVaciaEsValida(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis_results.json")
	store := analysisfile.NewStore(path)

	require.NoError(t, store.Save(nil))

	got, err := store.Load()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
