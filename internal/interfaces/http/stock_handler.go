package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/alvear-textil/deposito-api/internal/application/dto"
	appstock "github.com/alvear-textil/deposito-api/internal/application/stock"
	"github.com/alvear-textil/deposito-api/internal/domain"
)

const msgProductoNoEncontrado = "Producto no encontrado"

// StockHandler maneja las peticiones HTTP del libro de stock.
type StockHandler struct {
	uc *appstock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *appstock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Productos godoc
// @Summary      Obtener todos los productos del depósito
// @Tags         deposito
// @Produce      json
// @Success      200  {object}  map[string]dto.HiloResponse
// @Router       /api/deposito/productos [get]
func (h *StockHandler) Productos(c *fiber.Ctx) error {
	return c.JSON(dto.AStockResponse(h.uc.Listar()))
}

// Producto godoc
// @Summary      Obtener un producto por código
// @Tags         deposito
// @Produce      json
// @Param        codigo  path  string  true  "Código del lote"
// @Success      200  {object}  dto.HiloResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deposito/producto/{codigo} [get]
func (h *StockHandler) Producto(c *fiber.Ctx) error {
	hilo := h.uc.Obtener(c.Params("codigo"))
	if hilo == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgProductoNoEncontrado})
	}
	return c.JSON(dto.AHiloResponse(hilo))
}

// AgregarHilo godoc
// @Summary      Agregar hilo al stock (alta o acumulación sobre el mismo lote)
// @Tags         deposito
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IngresoHiloRequest  true  "Datos del ingreso"
// @Success      200   {object}  dto.MutacionResponse
// @Failure      400   {object}  dto.MutacionResponse
// @Router       /api/deposito/agregar-hilo [post]
func (h *StockHandler) AgregarHilo(c *fiber.Ctx) error {
	var in dto.IngresoHiloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MutacionResponse{Success: false, Error: "cuerpo inválido"})
	}
	codigo, _, err := h.uc.Ingresar(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MutacionResponse{
				Success: false, Error: "Complete todos los campos obligatorios",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.MutacionResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(dto.MutacionResponse{
		Success: true,
		Message: "Hilo agregado correctamente",
		Codigo:  codigo,
	})
}

// Actualizar godoc
// @Summary      Actualizar campos de un producto
// @Tags         deposito
// @Accept       json
// @Produce      json
// @Param        codigo  path  string  true  "Código del lote"
// @Param        body    body  dto.ActualizarHiloRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.MutacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deposito/producto/{codigo} [put]
func (h *StockHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarHiloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MutacionResponse{Success: false, Error: "cuerpo inválido"})
	}
	hilo, err := h.uc.Actualizar(c.Params("codigo"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgProductoNoEncontrado})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.MutacionResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(dto.MutacionResponse{
		Success:  true,
		Message:  "Producto actualizado correctamente",
		Producto: dto.AHiloResponse(hilo),
	})
}

// Eliminar godoc
// @Summary      Eliminar un producto del stock
// @Tags         deposito
// @Produce      json
// @Param        codigo  path  string  true  "Código del lote"
// @Success      200  {object}  dto.MutacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deposito/producto/{codigo} [delete]
func (h *StockHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("codigo"), c.Query("usuario")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgProductoNoEncontrado})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.MutacionResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(dto.MutacionResponse{Success: true, Message: "Producto eliminado correctamente"})
}
