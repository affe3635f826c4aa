package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/report"
)

// ReportHandler reportes de ventas e inventario (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesSummary godoc
// @Summary      Resumen de ventas del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (2006-01-02); por defecto hace 30 días"
// @Param        to    query  string  false  "Fecha final (2006-01-02); por defecto hoy"
// @Success      200   {object}  dto.SalesSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	start, end, err := reportRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas, formato 2006-01-02"})
	}
	out, err := h.uc.SalesSummary(c.UserContext(), companyID, start, end)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock en el umbral o por debajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LowStockReportResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.LowStock(c.UserContext(), companyID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Resumen de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  false  "Fecha inicial (2006-01-02)"
// @Param        to    query  string  false  "Fecha final (2006-01-02)"
// @Success      200   {file}  binary
// @Router       /api/reports/sales/export.pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	start, end, err := reportRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas, formato 2006-01-02"})
	}
	data, err := h.uc.ExportSummaryPDF(c.UserContext(), companyID, start, end)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen-ventas.pdf"`)
	return c.Send(data)
}

// ExportXML godoc
// @Summary      Resumen de ventas en XML
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Param        from  query  string  false  "Fecha inicial (2006-01-02)"
// @Param        to    query  string  false  "Fecha final (2006-01-02)"
// @Success      200   {file}  binary
// @Router       /api/reports/sales/export.xml [get]
func (h *ReportHandler) ExportXML(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	start, end, err := reportRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas, formato 2006-01-02"})
	}
	data, err := h.uc.ExportSummaryXML(c.UserContext(), companyID, start, end)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen-ventas.xml"`)
	return c.Send(data)
}

// reportRange lee from/to; por defecto los últimos 30 días.
func reportRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	start := now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
	end := now
	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = t.Add(24*time.Hour - time.Nanosecond)
	}
	return start, end, nil
}
