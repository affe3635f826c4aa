// Package pdf genera los documentos imprimibles del punto de venta:
// el recibo de una venta y el resumen de ventas de un período.
//
// Layout del recibo (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comercio + NIT  │  Recibo #N + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SEDE: Nombre / Dirección   VENDEDOR / MEDIO DE PAGO        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | IVA | Subtotal           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuentos / IVA / TOTAL               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: texto configurable del comercio                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Ensure MarotoPDFGenerator implements both PDF ports.
var _ sales.ReceiptPDFGenerator = (*MarotoPDFGenerator)(nil)
var _ report.SummaryPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator genera recibos y resúmenes usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReceipt genera el recibo PDF de la venta y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReceipt(
	company *entity.Company,
	location *entity.Location,
	settings *entity.Settings,
	sale *entity.Sale,
	items []*entity.SaleItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Recibo #%d", sale.Number), true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(receiptHeaderRow(company, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(receiptInfoRow(location, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(receiptTotalsRow(sale, settings.Currency))

	if sale.Status == entity.SaleStatusAnulada {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("VENTA ANULADA: "+sale.VoidReason, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center,
				Color: &props.Color{Red: 180, Green: 30, Blue: 30}, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(settings.ReceiptFooter, props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 2,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateSalesSummary genera el PDF del resumen de ventas del período.
func (g *MarotoPDFGenerator) GenerateSalesSummary(company *entity.Company, summary *dto.SalesSummaryResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de ventas", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	periodo := fmt.Sprintf("Período: %s a %s",
		summary.Start.Format("02/01/2006"), summary.End.Format("02/01/2006"))
	m.AddRows(row.New(16).Add(
		col.New(8).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+company.TaxID, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("RESUMEN DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(periodo, props.Text{Size: 8, Align: align.Right, Top: 8, Color: colorGray}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Totales generales
	m.AddRows(row.New(30).Add(
		col.New(6).Add(
			summaryLabel("Ventas registradas:", 1),
			summaryLabel("Subtotal:", 7),
			summaryLabel("Descuentos:", 13),
			summaryLabel("IVA:", 19),
			summaryLabel("Ticket promedio:", 25),
		),
		col.New(6).Add(
			summaryValue(fmt.Sprintf("%d", summary.SaleCount), 1),
			summaryValue("$"+formatMoney(summary.Subtotal.StringFixed(0)), 7),
			summaryValue("$"+formatMoney(summary.DiscountTotal.StringFixed(0)), 13),
			summaryValue("$"+formatMoney(summary.TaxTotal.StringFixed(0)), 19),
			summaryValue("$"+formatMoney(summary.AverageTicket.StringFixed(0)), 25),
		),
	))
	m.AddRows(row.New(10).Add(
		col.New(6).Add(text.New("TOTAL VENDIDO:", props.Text{
			Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
		})),
		col.New(6).Add(text.New("$"+formatMoney(summary.GrandTotal.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	// Por medio de pago
	m.AddRows(sectionTitleRow("VENTAS POR MEDIO DE PAGO"))
	for _, p := range summary.ByPayment {
		m.AddRows(breakdownRow(p.PaymentMethod, p.SaleCount, "$"+formatMoney(p.Total.StringFixed(0))))
	}

	// Por sede
	m.AddRows(sectionTitleRow("VENTAS POR SEDE"))
	for _, l := range summary.ByLocation {
		m.AddRows(breakdownRow(l.LocationName, l.SaleCount, "$"+formatMoney(l.Total.StringFixed(0))))
	}

	// Top productos
	m.AddRows(sectionTitleRow("PRODUCTOS MÁS VENDIDOS"))
	for _, t := range summary.TopProducts {
		m.AddRows(row.New(6).Add(
			col.New(2).Add(text.New(t.SKU, props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(t.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(t.UnitsSold.StringFixed(0)+" und.", props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New("$"+formatMoney(t.Revenue.StringFixed(0)), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar resumen: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones del recibo ──────────────────────────────────────────────────────

// receiptHeaderRow: comercio + NIT (izq) y número + fecha (der).
func receiptHeaderRow(company *entity.Company, sale *entity.Sale) core.Row {
	fecha := sale.SoldAt.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+company.TaxID, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("#%d", sale.Number), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// receiptInfoRow: sede y medio de pago.
func receiptInfoRow(location *entity.Location, sale *entity.Sale) core.Row {
	sede := "—"
	if location != nil {
		sede = location.Name
		if location.Address != "" {
			sede += " / " + location.Address
		}
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Sede: "+sede, props.Text{Size: 8, Top: 1, Color: colorGray}),
			text.New("Medio de pago: "+sale.PaymentMethod, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// itemsHeaderRow: cabecera de la tabla de líneas.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("IVA%", 1, align.Center),
		h("Subtotal", 3, align.Right),
	)
}

// itemRows: una fila por línea de venta.
func itemRows(items []*entity.SaleItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(it.UnitPrice.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.TaxRate.StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(it.Subtotal.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// receiptTotalsRow: bloque de totales alineado a la derecha.
func receiptTotalsRow(sale *entity.Sale, currency string) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("TOTAL ("+currency+"):", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2,
	})
	grandValue := text.New("$"+formatMoney(sale.GrandTotal.StringFixed(0)), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1,
	})

	return row.New(32).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Descuentos:"),
			label("IVA:"),
			grandLabel,
		),
		col.New(3).Add(
			value("$"+formatMoney(sale.Subtotal.StringFixed(0))),
			value("$"+formatMoney(sale.DiscountTotal.StringFixed(0))),
			value("$"+formatMoney(sale.TaxTotal.StringFixed(0))),
			grandValue,
		),
		col.New(3),
	)
}

// ── Secciones del resumen ─────────────────────────────────────────────────────

func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3,
		}),
	))
}

func breakdownRow(name string, count int64, total string) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(name, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(fmt.Sprintf("%d ventas", count), props.Text{
			Size: 8, Align: align.Right, Top: 1, Color: colorGray,
		})),
		col.New(3).Add(text.New(total, props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func summaryLabel(s string, top float64) core.Component {
	return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Top: top})
}

func summaryValue(s string, top float64) core.Component {
	return text.New(s, props.Text{Size: 9, Align: align.Right, Top: top})
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
