package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/activity"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ActivityHandler consultas del log de actividad (protegido).
type ActivityHandler struct {
	uc *activity.QueryUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *activity.QueryUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Listar log de actividad
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        entity   query  string  false  "producto | sede | venta | invitacion | ajustes | inventario | usuario"
// @Param        user_id  query  string  false  "Filtrar por usuario"
// @Param        limit    query  int     false  "Límite"   default(20)
// @Param        offset   query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.ActivityListResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	filter := repository.ActivityFilter{
		Entity: c.Query("entity"),
		UserID: c.Query("user_id"),
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	out, err := h.uc.List(companyID, filter)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
