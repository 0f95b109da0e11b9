// Package pdf implementa la representación PDF del reporte de facturación
// por rango de fechas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + rango de fechas                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Entradas por empresa (Total | Unidades)              │
//	│  TABLA: Salidas por empresa (Total | Unidades)               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: facturas dentro del rango                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/reporting"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reporting.SummaryPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reporting.SummaryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSummaryPDF genera el PDF del resumen y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSummaryPDF(_ context.Context, summary *dto.SummaryResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de facturación", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("Entradas por empresa"))
	m.AddRows(aggregateHeaderRow())
	for _, r := range aggregateRows(summary.Income) {
		m.AddRows(r)
	}

	m.AddRows(sectionTitleRow("Salidas por empresa"))
	m.AddRows(aggregateHeaderRow())
	for _, r := range aggregateRows(summary.Outcome) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("Facturas en el rango"))
	m.AddRows(invoiceHeaderRow())
	for _, r := range invoiceRows(summary.Invoices) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(summary *dto.SummaryResponse) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de facturación", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(summary.DateFrom+" — "+summary.DateTo, props.Text{
				Size: 9, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2, Color: colorPrimary}),
		),
	)
}

func aggregateHeaderRow() core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New("Empresa", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(3).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
		col.New(3).Add(text.New("Unidades", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
	)
}

func aggregateRows(rows []dto.ReportRow) []core.Row {
	if len(rows) == 0 {
		return []core.Row{row.New(5).Add(
			col.New(12).Add(text.New("Sin movimientos", props.Text{Size: 8, Color: colorGray})),
		)}
	}
	out := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, row.New(5).Add(
			col.New(6).Add(text.New(r.CompanyName, props.Text{Size: 8})),
			col.New(3).Add(text.New(r.TotalSum.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
			col.New(3).Add(text.New(fmt.Sprintf("%d", r.CountSum), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return out
}

func invoiceHeaderRow() core.Row {
	return row.New(6).Add(
		col.New(2).Add(text.New("Fecha", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(2).Add(text.New("Tipo", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(4).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(2).Add(text.New("Cantidad", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
		col.New(2).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
	)
}

func invoiceRows(invoices []dto.InvoiceResponse) []core.Row {
	if len(invoices) == 0 {
		return []core.Row{row.New(5).Add(
			col.New(12).Add(text.New("Sin facturas en el rango", props.Text{Size: 8, Color: colorGray})),
		)}
	}
	out := make([]core.Row, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, row.New(5).Add(
			col.New(2).Add(text.New(inv.Date.Format("2006-01-02"), props.Text{Size: 8})),
			col.New(2).Add(text.New(inv.Kind, props.Text{Size: 8})),
			col.New(4).Add(text.New(inv.Product, props.Text{Size: 8})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", inv.Quantity), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(inv.Total.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return out
}
