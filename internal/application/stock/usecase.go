// Package stock implementa el libro de stock del depósito: snapshot completo
// por operación, fusión por código determinístico y registro de movimientos
// como efecto secundario de cada mutación.
package stock

import (
	"fmt"
	"sync"
	"time"

	"github.com/alvear-textil/deposito-api/internal/application/dto"
	"github.com/alvear-textil/deposito-api/internal/domain"
	"github.com/alvear-textil/deposito-api/internal/domain/entity"
	"github.com/alvear-textil/deposito-api/internal/domain/repository"
	dstock "github.com/alvear-textil/deposito-api/internal/domain/stock"
	"github.com/alvear-textil/deposito-api/pkg/logger"
)

const usuarioSistema = "sistema"

// UseCase operaciones del libro de stock. Las mutaciones se serializan con un
// mutex de escritor único: el modelo sigue siendo "gana la última escritura",
// pero dos handlers concurrentes no pueden pisarse el snapshot a medio
// persistir.
type UseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.MovimientoRepository
	log       *logger.Logger

	mu    sync.Mutex
	ahora func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(stockRepo repository.StockRepository, movRepo repository.MovimientoRepository, log *logger.Logger) *UseCase {
	return &UseCase{
		stockRepo: stockRepo,
		movRepo:   movRepo,
		log:       log,
		ahora:     time.Now,
	}
}

// Listar devuelve el snapshot completo del stock. Un backend caído se trata
// como libro vacío, nunca como caída del endpoint.
func (uc *UseCase) Listar() map[string]*entity.Hilo {
	return uc.cargar()
}

// Obtener devuelve un lote por código, o nil si no existe.
func (uc *UseCase) Obtener(codigo string) *entity.Hilo {
	return uc.cargar()[codigo]
}

// Ingresar da de alta un lote o acumula cantidad sobre el existente con el
// mismo código derivado. Devuelve el código y el lote resultante.
// Registra un movimiento INGRESO (lote nuevo) o AJUSTE (fusión) con delta
// igual a la cantidad ingresada.
func (uc *UseCase) Ingresar(in dto.IngresoHiloRequest) (string, *entity.Hilo, error) {
	if in.TipoHilado == "" || in.Titulo == "" || in.Caracteristica == "" || in.Color == "" ||
		in.Lote == "" || in.Formato == "" || in.Ubicacion == "" || in.Proveedor == "" {
		return "", nil, domain.ErrInvalidInput
	}

	var cantidad int
	nuevo := &entity.Hilo{
		Tipo:           in.TipoHilado,
		Titulo:         in.Titulo,
		Caracteristica: in.Caracteristica,
		Color:          in.Color,
		Formato:        in.Formato,
		Lote:           in.Lote,
		Ubicacion:      in.Ubicacion,
		Proveedor:      in.Proveedor,
	}
	switch in.Formato {
	case entity.FormatoCajas:
		cantidad = in.CantidadCajas
		nuevo.Cajas = &entity.EmpaqueCajas{
			KilosPorCaja:    in.KilosPorCaja,
			ConosPorCaja:    in.ConosPorCaja,
			DescripcionCono: in.DescripcionCono,
		}
	case entity.FormatoPalletizado:
		cantidad = in.CantidadPallets
		nuevo.Pallet = &entity.EmpaquePallet{
			KilosPorPallet:  in.KilosPorPallet,
			ConosPorPallet:  in.ConosPorPallet,
			DescripcionCono: in.DescripcionCono,
		}
	default:
		return "", nil, domain.ErrInvalidInput
	}
	if cantidad < 0 {
		return "", nil, domain.ErrInvalidInput
	}

	codigo := dstock.GenerarCodigo(in.TipoHilado, in.Titulo, in.Caracteristica, in.Color, in.Lote, in.Ubicacion)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	ahora := uc.ahora()
	stock := uc.cargar()

	existente, ok := stock[codigo]
	var resultado *entity.Hilo
	tipoMov := entity.MovimientoINGRESO
	descripcion := fmt.Sprintf("Alta de lote %s %s %s", in.TipoHilado, in.Titulo, in.Color)
	if ok {
		// Mismo lote físico reportado otra vez (p. ej. entrega parcial): se
		// acumula cantidad en lugar de duplicar el registro.
		existente.Cantidad += cantidad
		existente.UltimaModificacion = ahora
		resultado = existente
		tipoMov = entity.MovimientoAJUSTE
		descripcion = fmt.Sprintf("Ingreso acumulado sobre lote %s %s %s", in.TipoHilado, in.Titulo, in.Color)
	} else {
		nuevo.Codigo = codigo
		nuevo.Cantidad = cantidad
		nuevo.FechaIngreso = ahora
		nuevo.UltimaModificacion = ahora
		stock[codigo] = nuevo
		resultado = nuevo
	}

	if err := uc.stockRepo.SaveAll(stock); err != nil {
		return "", nil, err
	}

	uc.registrarMovimiento(tipoMov, codigo, descripcion, cantidad, in.Ubicacion, in.Usuario, ahora)
	return codigo, resultado, nil
}

// Actualizar aplica una edición parcial sobre un lote existente y refresca la
// última modificación. Si la cantidad coercionada difiere de la anterior,
// registra un AJUSTE con el delta.
func (uc *UseCase) Actualizar(codigo string, in dto.ActualizarHiloRequest) (*entity.Hilo, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	stock := uc.cargar()
	h, ok := stock[codigo]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if in.Tipo != nil {
		h.Tipo = *in.Tipo
	}
	if in.Titulo != nil {
		h.Titulo = *in.Titulo
	}
	if in.Caracteristica != nil {
		h.Caracteristica = *in.Caracteristica
	}
	if in.Color != nil {
		h.Color = *in.Color
	}
	if in.Lote != nil {
		h.Lote = *in.Lote
	}
	if in.Ubicacion != nil {
		h.Ubicacion = *in.Ubicacion
	}
	if in.Proveedor != nil {
		h.Proveedor = *in.Proveedor
	}
	if in.PrecioUnitario != nil {
		precio, ok := coerceDecimal(in.PrecioUnitario)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		h.PrecioUnitario = precio
	}
	if h.Cajas != nil {
		if in.KilosPorCaja != nil {
			h.Cajas.KilosPorCaja = *in.KilosPorCaja
		}
		if in.ConosPorCaja != nil {
			h.Cajas.ConosPorCaja = *in.ConosPorCaja
		}
		if in.DescripcionCono != nil {
			h.Cajas.DescripcionCono = *in.DescripcionCono
		}
	}
	if h.Pallet != nil {
		if in.KilosPorPallet != nil {
			h.Pallet.KilosPorPallet = *in.KilosPorPallet
		}
		if in.ConosPorPallet != nil {
			h.Pallet.ConosPorPallet = *in.ConosPorPallet
		}
		if in.DescripcionCono != nil {
			h.Pallet.DescripcionCono = *in.DescripcionCono
		}
	}

	cantidadAnterior := h.Cantidad
	if in.Cantidad != nil {
		cantidad, ok := coerceEntero(in.Cantidad)
		if !ok || cantidad < 0 {
			return nil, domain.ErrInvalidInput
		}
		h.Cantidad = cantidad
	}

	ahora := uc.ahora()
	h.UltimaModificacion = ahora

	if err := uc.stockRepo.SaveAll(stock); err != nil {
		return nil, err
	}

	if delta := h.Cantidad - cantidadAnterior; delta != 0 {
		descripcion := fmt.Sprintf("Ajuste de cantidad (%d → %d)", cantidadAnterior, h.Cantidad)
		uc.registrarMovimiento(entity.MovimientoAJUSTE, codigo, descripcion, delta, h.Ubicacion, in.Usuario, ahora)
	}
	return h, nil
}

// Eliminar da de baja un lote y registra un EGRESO con delta igual a la
// cantidad negada al momento de la baja.
func (uc *UseCase) Eliminar(codigo, usuario string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	stock := uc.cargar()
	h, ok := stock[codigo]
	if !ok {
		return domain.ErrNotFound
	}
	delete(stock, codigo)

	if err := uc.stockRepo.SaveAll(stock); err != nil {
		return err
	}

	descripcion := fmt.Sprintf("Baja de lote %s %s %s", h.Tipo, h.Titulo, h.Color)
	uc.registrarMovimiento(entity.MovimientoEGRESO, codigo, descripcion, -h.Cantidad, h.Ubicacion, usuario, uc.ahora())
	return nil
}

// Movimientos devuelve el registro de movimientos, más reciente primero.
// Con limite > 0 devuelve a lo sumo esa cantidad. Un backend caído degrada a
// lista vacía.
func (uc *UseCase) Movimientos(limite int) []*entity.Movimiento {
	lista, err := uc.movRepo.ListAll()
	if err != nil {
		uc.log.Error().Err(err).Msg("movimientos: no se pudo cargar el registro")
		return nil
	}
	if limite > 0 && len(lista) > limite {
		lista = lista[:limite]
	}
	return lista
}

// cargar devuelve el snapshot actual; un backend caído degrada a libro vacío.
func (uc *UseCase) cargar() map[string]*entity.Hilo {
	stock, err := uc.stockRepo.LoadAll()
	if err != nil {
		uc.log.Error().Err(err).Msg("stock: no se pudo cargar el snapshot, se asume vacío")
		return map[string]*entity.Hilo{}
	}
	if stock == nil {
		return map[string]*entity.Hilo{}
	}
	return stock
}

// registrarMovimiento agrega la entrada de auditoría. Es best-effort: un
// fallo se registra en el log pero nunca invalida la mutación ya aplicada.
func (uc *UseCase) registrarMovimiento(tipo, codigo, descripcion string, delta int, ubicacion, usuario string, fecha time.Time) {
	if usuario == "" {
		usuario = usuarioSistema
	}
	m := &entity.Movimiento{
		Fecha:       fecha,
		Tipo:        tipo,
		Codigo:      codigo,
		Descripcion: descripcion,
		Cantidad:    delta,
		Ubicacion:   ubicacion,
		Usuario:     usuario,
	}
	if err := uc.movRepo.Append(m); err != nil {
		uc.log.Warn().Err(err).
			Str("tipo", tipo).
			Str("codigo", codigo).
			Msg("no se pudo registrar el movimiento")
	}
}
