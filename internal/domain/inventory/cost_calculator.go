package inventory

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/beverage-stock/internal/domain"
)

// Fórmulas clásicas de control de inventario (servicio de dominio sin estado).
// Todas son funciones puras: mismas entradas, mismo resultado.

var (
	two    = decimal.NewFromInt(2)
	maxInt = decimal.NewFromInt(int64(math.MaxInt))
	// maxRatio cota de 2DS/H: por encima el lote no cabe en un int.
	maxRatio = maxInt.Mul(maxInt)
)

// EconomicOrderQuantity calcula el lote económico de compra (EOQ).
// EOQ = √((2 × DemandaAnual × CostoPedido) / CostoMantenimiento), truncado a unidades enteras
// (no se piden fracciones de bebida). El resultado siempre es >= 1.
func EconomicOrderQuantity(annualDemand, orderCost, holdingCost decimal.Decimal) (int, error) {
	if !holdingCost.IsPositive() {
		return 0, fmt.Errorf("%w: el costo de mantenimiento debe ser positivo", domain.ErrDomain)
	}
	if !annualDemand.IsPositive() {
		return 0, fmt.Errorf("%w: la demanda anual debe ser positiva", domain.ErrDomain)
	}
	if !orderCost.IsPositive() {
		return 0, fmt.Errorf("%w: el costo por pedido debe ser positivo", domain.ErrDomain)
	}

	ratio := two.Mul(annualDemand).Mul(orderCost).Div(holdingCost)
	if ratio.GreaterThanOrEqual(maxRatio) {
		return 0, fmt.Errorf("%w: el lote económico excede el rango representable", domain.ErrDomain)
	}
	q := isqrt(ratio)
	if q < 1 {
		q = 1
	}
	return int(q), nil
}

// isqrt devuelve el mayor q tal que q² <= x, con 0 <= x < maxRatio. La raíz en float64
// sólo da el punto de partida; el ajuste entero corrige el error de redondeo en los bordes.
func isqrt(x decimal.Decimal) int64 {
	var q int64
	switch f := math.Sqrt(x.InexactFloat64()); {
	case math.IsNaN(f) || f < 1:
		q = 0
	case f >= float64(math.MaxInt64):
		q = math.MaxInt64 - 1
	default:
		q = int64(f)
	}
	sq := func(n int64) decimal.Decimal {
		d := decimal.NewFromInt(n)
		return d.Mul(d)
	}
	for q > 0 && sq(q).GreaterThan(x) {
		q--
	}
	for sq(q + 1).LessThanOrEqual(x) {
		q++
	}
	return q
}

// SafetyStock acepta un stock de seguridad ya calculado por el llamador.
func SafetyStock(buffer int) (int, error) {
	if buffer < 0 {
		return 0, fmt.Errorf("%w: el stock de seguridad no puede ser negativo", domain.ErrDomain)
	}
	return buffer, nil
}

// SafetyStockFromBufferDays deriva el stock de seguridad como días de demanda:
// ⌈DemandaDiaria × DíasColchón⌉.
func SafetyStockFromBufferDays(dailyDemand decimal.Decimal, bufferDays int) (int, error) {
	if dailyDemand.IsNegative() {
		return 0, fmt.Errorf("%w: la demanda diaria no puede ser negativa", domain.ErrDomain)
	}
	if bufferDays < 0 {
		return 0, fmt.Errorf("%w: los días de colchón no pueden ser negativos", domain.ErrDomain)
	}
	return ceilInt(dailyDemand.Mul(decimal.NewFromInt(int64(bufferDays))))
}

// SafetyStockFromDeviation aplica ⌈Desviación × DíasColchón × DemandaDiaria⌉.
// Se calcula en decimal: 0.2 × 7 × 50 es exactamente 70.
func SafetyStockFromDeviation(deviation, dailyDemand decimal.Decimal, bufferDays int) (int, error) {
	if deviation.IsNegative() || dailyDemand.IsNegative() || bufferDays < 0 {
		return 0, fmt.Errorf("%w: desviación, demanda y días deben ser no negativos", domain.ErrDomain)
	}
	return ceilInt(deviation.Mul(decimal.NewFromInt(int64(bufferDays))).Mul(dailyDemand))
}

// StatisticalSafetyStock variante por nivel de servicio: ⌈z × σ × √LeadTime⌉.
func StatisticalSafetyStock(serviceFactor, demandStdDev decimal.Decimal, leadTimeDays int) (int, error) {
	if serviceFactor.IsNegative() || demandStdDev.IsNegative() || leadTimeDays < 0 {
		return 0, fmt.Errorf("%w: factor de servicio, desviación y lead time deben ser no negativos", domain.ErrDomain)
	}
	sqrtLead := decimal.NewFromFloat(math.Sqrt(float64(leadTimeDays)))
	return ceilInt(serviceFactor.Mul(demandStdDev).Mul(sqrtLead))
}

// ReorderPoint determina el punto de pedido (ROP):
// ROP = ⌈LeadTime × DemandaMediaDiaria⌉ + StockSeguridad.
// Con lead time 0 el ROP es exactamente el stock de seguridad.
func ReorderPoint(leadTimeDays int, averageDailyDemand decimal.Decimal, safetyStock int) (int, error) {
	if leadTimeDays < 0 {
		return 0, fmt.Errorf("%w: el lead time no puede ser negativo", domain.ErrDomain)
	}
	if averageDailyDemand.IsNegative() {
		return 0, fmt.Errorf("%w: la demanda media diaria no puede ser negativa", domain.ErrDomain)
	}
	if safetyStock < 0 {
		return 0, fmt.Errorf("%w: el stock de seguridad no puede ser negativo", domain.ErrDomain)
	}
	leadDemand := decimal.NewFromInt(int64(leadTimeDays)).Mul(averageDailyDemand)
	lead, err := ceilInt(leadDemand)
	if err != nil {
		return 0, err
	}
	if lead > math.MaxInt-safetyStock {
		return 0, fmt.Errorf("%w: el punto de pedido excede el rango representable", domain.ErrDomain)
	}
	return lead + safetyStock, nil
}

// ceilInt redondea hacia arriba; falla si el resultado no cabe en un int.
func ceilInt(d decimal.Decimal) (int, error) {
	c := d.Ceil()
	if c.GreaterThan(maxInt) {
		return 0, fmt.Errorf("%w: %s excede el rango representable", domain.ErrDomain, c.String())
	}
	return int(c.IntPart()), nil
}
