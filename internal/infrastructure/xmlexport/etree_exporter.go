// Package xmlexport serializa reportes a XML para integraciones externas
// (contabilidad, hojas de cálculo).
package xmlexport

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

var _ report.SummaryXMLExporter = (*EtreeExporter)(nil)

// EtreeExporter exporta el resumen de ventas como documento XML.
type EtreeExporter struct{}

// NewEtreeExporter construye el exportador.
func NewEtreeExporter() *EtreeExporter { return &EtreeExporter{} }

// ExportSalesSummary arma el documento:
//
//	<ResumenVentas comercio="..." nit="..." desde="..." hasta="...">
//	  <Totales ventas=".." subtotal=".." descuentos=".." iva=".." total=".." ticketPromedio=".."/>
//	  <MediosDePago><Medio nombre=".." ventas=".." total=".."/></MediosDePago>
//	  <Sedes><Sede id=".." nombre=".." ventas=".." total=".."/></Sedes>
//	  <TopProductos><Producto sku=".." nombre=".." unidades=".." ingreso=".."/></TopProductos>
//	</ResumenVentas>
func (e *EtreeExporter) ExportSalesSummary(company *entity.Company, summary *dto.SalesSummaryResponse) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ResumenVentas")
	root.CreateAttr("comercio", company.Name)
	root.CreateAttr("nit", company.TaxID)
	root.CreateAttr("desde", summary.Start.Format("2006-01-02"))
	root.CreateAttr("hasta", summary.End.Format("2006-01-02"))

	totales := root.CreateElement("Totales")
	totales.CreateAttr("ventas", strconv.FormatInt(summary.SaleCount, 10))
	totales.CreateAttr("subtotal", summary.Subtotal.StringFixed(2))
	totales.CreateAttr("descuentos", summary.DiscountTotal.StringFixed(2))
	totales.CreateAttr("iva", summary.TaxTotal.StringFixed(2))
	totales.CreateAttr("total", summary.GrandTotal.StringFixed(2))
	totales.CreateAttr("ticketPromedio", summary.AverageTicket.StringFixed(2))

	medios := root.CreateElement("MediosDePago")
	for _, p := range summary.ByPayment {
		medio := medios.CreateElement("Medio")
		medio.CreateAttr("nombre", p.PaymentMethod)
		medio.CreateAttr("ventas", strconv.FormatInt(p.SaleCount, 10))
		medio.CreateAttr("total", p.Total.StringFixed(2))
	}

	sedes := root.CreateElement("Sedes")
	for _, l := range summary.ByLocation {
		sede := sedes.CreateElement("Sede")
		sede.CreateAttr("id", l.LocationID)
		sede.CreateAttr("nombre", l.LocationName)
		sede.CreateAttr("ventas", strconv.FormatInt(l.SaleCount, 10))
		sede.CreateAttr("total", l.Total.StringFixed(2))
	}

	top := root.CreateElement("TopProductos")
	for _, t := range summary.TopProducts {
		producto := top.CreateElement("Producto")
		producto.CreateAttr("sku", t.SKU)
		producto.CreateAttr("nombre", t.ProductName)
		producto.CreateAttr("unidades", t.UnitsSold.String())
		producto.CreateAttr("ingreso", t.Revenue.StringFixed(2))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar resumen: %w", err)
	}
	return out, nil
}
