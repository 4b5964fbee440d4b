package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nicolasct/ventapos-api/internal/application/dto"
	"github.com/nicolasct/ventapos-api/internal/application/usecase"
)

// ReportHandler reportes de ventas para la administración.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del período
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        fecha_inicio  query  string  false  "YYYY-MM-DD (por defecto hace 30 días)"
// @Param        fecha_fin     query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200  {object}  dto.SalesSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/resumen [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	desde, hasta, err := reportRange(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas (YYYY-MM-DD)"})
	}
	out, err := h.uc.GetSummary(c.UserContext(), desde, hasta)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesByDay godoc
// @Summary      Serie diaria de ventas
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        fecha_inicio  query  string  false  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.DailySalesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas-por-dia [get]
func (h *ReportHandler) SalesByDay(c *fiber.Ctx) error {
	desde, hasta, err := reportRange(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas (YYYY-MM-DD)"})
	}
	out, err := h.uc.GetSalesByDay(c.UserContext(), desde, hasta)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        fecha_inicio  query  string  false  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  false  "YYYY-MM-DD"
// @Param        limit         query  int     false  "Límite"  default(10)
// @Success      200  {array}  dto.TopProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/top-productos [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	desde, hasta, err := reportRange(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas (YYYY-MM-DD)"})
	}
	out, err := h.uc.GetTopProducts(c.UserContext(), desde, hasta, c.QueryInt("limit", 10))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
