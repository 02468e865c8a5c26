// Package pdf implementa la generación del informe de riesgo de la cadena
// de suministro usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA INVENTARIO: ID | Producto | Stock | Umbral | Riesgo   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTAS ACTIVAS: tipo, producto y mensaje                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTICIAS: titular, fuente y etiqueta de sentimiento         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appreport "github.com/jhoicas/SupplyRisk-api/internal/application/report"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var riskWarnLevel = decimal.NewFromInt(7)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.Generator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ appreport.Generator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateRiskReport genera el PDF del informe y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateRiskReport(
	_ context.Context,
	products []*entity.Product,
	active []entity.Alert,
	news []entity.ArticleAnalysis,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Supply Chain Risk Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Tabla de inventario
	m.AddRows(sectionTitleRow("INVENTORY STATUS"))
	m.AddRows(inventoryHeaderRow())
	for _, r := range inventoryRows(products) {
		m.AddRows(r)
	}

	// Alertas activas
	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("ACTIVE ALERTS"))
	for _, r := range alertRows(active) {
		m.AddRows(r)
	}

	// Noticias analizadas
	if len(news) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitleRow("RECENT SUPPLY CHAIN NEWS"))
		for _, r := range newsRows(news) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Supply Chain Risk Report", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Lithium battery inventory and supply risk overview", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func inventoryHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("ID", 2, align.Left),
		h("Product", 4, align.Left),
		h("Stock", 2, align.Right),
		h("Threshold", 2, align.Right),
		h("Risk", 2, align.Right),
	)
}

// inventoryRows una fila por producto; el factor de riesgo se resalta en
// rojo a partir de 7.
func inventoryRows(products []*entity.Product) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		riskColor := colorGray
		if p.RiskFactor.GreaterThanOrEqual(riskWarnLevel) {
			riskColor = colorDanger
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(p.ProductID, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.TotalStock), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.MinThreshold), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			})),
			col.New(2).Add(text.New(p.RiskFactor.StringFixed(1), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Color: riskColor,
			})),
		))
	}
	return result
}

func alertRows(active []entity.Alert) []core.Row {
	if len(active) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("No active alerts.", props.Text{Size: 8, Top: 1, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(active))
	for _, a := range active {
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(a.Type, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Color: colorDanger,
			})),
			col.New(2).Add(text.New(a.ProductID, props.Text{Size: 8, Top: 1})),
			col.New(7).Add(text.New(a.Message, props.Text{Size: 8, Top: 1, Color: colorGray})),
		))
	}
	return result
}

func newsRows(news []entity.ArticleAnalysis) []core.Row {
	result := make([]core.Row, 0, len(news))
	for _, n := range news {
		label := "-"
		if n.Sentiment != nil {
			label = fmt.Sprintf("%s (%.2f)", n.Sentiment.Label, n.Sentiment.Score)
		}
		result = append(result, row.New(6).Add(
			col.New(7).Add(text.New(n.Title, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(n.Source, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(3).Add(text.New(label, props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}
