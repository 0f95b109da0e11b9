package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/reporting"
	"github.com/tu-usuario/almacen-api/internal/domain"
)

// ReportHandler expone los reportes agregados por rango de fechas.
type ReportHandler struct {
	query *reporting.ReportQuery
	pdf   *reporting.ReportPDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(query *reporting.ReportQuery, pdf *reporting.ReportPDFUseCase) *ReportHandler {
	return &ReportHandler{query: query, pdf: pdf}
}

// Aggregate godoc
// @Summary      Reporte agregado por empresa
// @Description  Suma de totales y cantidades por empresa para un tipo de factura, opcionalmente acotado a un rango de fechas (exclusivo en ambos extremos).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        kind       query  string  true   "Tipo de factura"  Enums(income, outcome)
// @Param        date_from  query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        date_to    query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Aggregate(c *fiber.Ctx) error {
	out, err := h.query.Aggregate(c.Context(), c.Query("kind"), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		return rangeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen completo de un rango de fechas
// @Description  Facturas del rango más los agregados income y outcome por empresa. Ambas fechas son obligatorias.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date_from  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        date_to    query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200  {object}  dto.SummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.query.Summary(c.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		return rangeError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar resumen en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        date_from  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        date_to    query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	raw, err := h.pdf.Export(c.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		return rangeError(c, err)
	}
	filename := fmt.Sprintf("reporte_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(raw)
}

// rangeError mapea los errores de validación de rango a respuestas HTTP.
func rangeError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos: kind income/outcome y fechas en formato YYYY-MM-DD"})
	case domain.ErrInvalidDateRange:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE_RANGE", Message: "date_from debe ser anterior a date_to"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
