package inventory

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/beverage-stock/internal/application/dto"
	"github.com/jhoicas/beverage-stock/internal/domain"
	"github.com/jhoicas/beverage-stock/internal/domain/entity"
	"github.com/jhoicas/beverage-stock/internal/domain/inventory"
)

// StockUseCase casos de uso sobre un único Stock en memoria: alta de productos,
// movimientos IN/OUT, alertas, reporte y lote económico por producto.
type StockUseCase struct {
	stock *inventory.Stock
	log   zerolog.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stock *inventory.Stock, log zerolog.Logger) *StockUseCase {
	return &StockUseCase{stock: stock, log: log}
}

// Stock devuelve el libro subyacente.
func (uc *StockUseCase) Stock() *inventory.Stock { return uc.stock }

// AddProduct valida el request, construye el producto y lo registra.
func (uc *StockUseCase) AddProduct(in dto.AddProductRequest) (*entity.Product, error) {
	kind, err := entity.ParseBeverageKind(in.Kind)
	if err != nil {
		return nil, err
	}
	p, err := entity.NewProduct(in.Name, kind, in.HoldingCost, in.OrderCost, in.UnitPrice)
	if err != nil {
		return nil, err
	}
	if err := uc.stock.AddProduct(p); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("stock", uc.stock.Name()).
		Str("product", p.Name()).
		Str("kind", p.Kind().String()).
		Msg("producto agregado")
	return p, nil
}

// RegisterMovement aplica una entrada (IN) o salida (OUT) y devuelve el stock resultante.
func (uc *StockUseCase) RegisterMovement(in dto.RegisterMovementRequest) (int, error) {
	var err error
	switch in.Type {
	case entity.MovementTypeIN:
		err = uc.stock.Receive(in.ProductName, in.Quantity)
	case entity.MovementTypeOUT:
		err = uc.stock.Issue(in.ProductName, in.Quantity)
	default:
		return 0, fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, in.Type)
	}
	if err != nil {
		uc.log.Debug().Err(err).
			Str("product", in.ProductName).
			Str("type", in.Type).
			Int("quantity", in.Quantity).
			Msg("movimiento rechazado")
		return 0, err
	}
	qty, err := uc.stock.Quantity(in.ProductName)
	if err != nil {
		return 0, err
	}
	uc.log.Debug().
		Str("product", in.ProductName).
		Str("type", in.Type).
		Int("quantity", in.Quantity).
		Int("on_hand", qty).
		Msg("movimiento registrado")
	return qty, nil
}

// Receive atajo para una entrada.
func (uc *StockUseCase) Receive(productName string, quantity int) (int, error) {
	return uc.RegisterMovement(dto.RegisterMovementRequest{ProductName: productName, Type: entity.MovementTypeIN, Quantity: quantity})
}

// Issue atajo para una salida.
func (uc *StockUseCase) Issue(productName string, quantity int) (int, error) {
	return uc.RegisterMovement(dto.RegisterMovementRequest{ProductName: productName, Type: entity.MovementTypeOUT, Quantity: quantity})
}

// CheckAlerts evalúa el nivel de alerta; REORDER y STOCKOUT se registran como warning.
func (uc *StockUseCase) CheckAlerts(productName string, reorderPoint int) (inventory.AlertLevel, error) {
	_, level, err := uc.Assess(productName, reorderPoint)
	return level, err
}

// Assess como CheckAlerts, pero devuelve también el disponible de la misma lectura.
func (uc *StockUseCase) Assess(productName string, reorderPoint int) (int, inventory.AlertLevel, error) {
	qty, level, err := uc.stock.Assess(reorderPoint, productName)
	if err != nil {
		return 0, level, err
	}
	if level != inventory.AlertOK {
		uc.log.Warn().
			Str("product", productName).
			Int("quantity", qty).
			Int("reorder_point", reorderPoint).
			Str("alert", level.String()).
			Msg("producto alcanzó el punto de pedido")
	}
	return qty, level, nil
}

// ProductEOQ calcula el lote económico con los costos del producto registrado.
// holdingPeriods lleva el costo de mantenimiento a base anual (ej. 12 si es mensual).
func (uc *StockUseCase) ProductEOQ(productName string, annualDemand decimal.Decimal, holdingPeriods int) (int, error) {
	p, err := uc.stock.Product(productName)
	if err != nil {
		return 0, err
	}
	return productEOQ(p, annualDemand, holdingPeriods)
}

func productEOQ(p *entity.Product, annualDemand decimal.Decimal, holdingPeriods int) (int, error) {
	if holdingPeriods < 0 {
		return 0, fmt.Errorf("%w: periodos de mantenimiento negativos", domain.ErrInvalidInput)
	}
	if holdingPeriods == 0 {
		holdingPeriods = 1
	}
	holding := p.HoldingCost().Mul(decimal.NewFromInt(int64(holdingPeriods)))
	return inventory.EconomicOrderQuantity(annualDemand, p.OrderCost(), holding)
}

// Report foto del stock para presentación.
func (uc *StockUseCase) Report() dto.StockReportDTO {
	levels := uc.stock.Report()
	lines := make([]dto.StockLineDTO, 0, len(levels))
	for _, l := range levels {
		lines = append(lines, dto.StockLineDTO{
			ProductName: l.ProductName,
			Kind:        l.Kind.String(),
			Quantity:    l.Quantity,
		})
	}
	return dto.StockReportDTO{StockName: uc.stock.Name(), Lines: lines}
}
