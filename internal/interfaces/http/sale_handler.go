package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nicolasct/ventapos-api/internal/application/dto"
	"github.com/nicolasct/ventapos-api/internal/application/usecase"
	"github.com/nicolasct/ventapos-api/internal/domain"
	"github.com/nicolasct/ventapos-api/internal/domain/repository"
)

// SaleHandler maneja el historial de ventas (global para admin, propio para usuarios).
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List godoc
// @Summary      Listar ventas (administración)
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        fecha_inicio  query  string  false  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  false  "YYYY-MM-DD"
// @Param        total_min     query  string  false  "Total mínimo"
// @Param        total_max     query  string  false  "Total máximo"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.SaleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	filter, errResp := parseSaleFilter(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Historial de compras del usuario autenticado
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        fecha_inicio  query  string  false  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  false  "YYYY-MM-DD"
// @Param        total_min     query  string  false  "Total mínimo"
// @Param        total_max     query  string  false  "Total máximo"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/mis-compras [get]
func (h *SaleHandler) ListMine(c *fiber.Ctx) error {
	filter, errResp := parseSaleFilter(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	out, err := h.uc.ListByUser(GetUserID(c), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func parseSaleFilter(c *fiber.Ctx) (repository.SaleFilter, *dto.ErrorResponse) {
	var in dto.SaleListRequest
	if err := c.QueryParser(&in); err != nil {
		return repository.SaleFilter{}, &dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"}
	}
	in.DefaultPage()

	filter := repository.SaleFilter{Limit: in.Limit, Offset: in.Offset}
	var err error
	if filter.Desde, err = parseDateParam(in.FechaInicio); err != nil {
		return filter, &dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha_inicio inválida (YYYY-MM-DD)"}
	}
	if hasta, err := parseDateParam(in.FechaFin); err != nil {
		return filter, &dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha_fin inválida (YYYY-MM-DD)"}
	} else if hasta != nil {
		// Incluir el día completo de fecha_fin.
		fin := hasta.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.Hasta = &fin
	}
	if filter.TotalMin, err = parseDecimalParam(in.TotalMin); err != nil {
		return filter, &dto.ErrorResponse{Code: "INVALID_QUERY", Message: "total_min inválido"}
	}
	if filter.TotalMax, err = parseDecimalParam(in.TotalMax); err != nil {
		return filter, &dto.ErrorResponse{Code: "INVALID_QUERY", Message: "total_max inválido"}
	}
	return filter, nil
}
