package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/beverage-stock/internal/domain"
)

// BeverageKind clasifica la bebida. El valor cero no es válido.
type BeverageKind int

const (
	BeverageKindBeer      BeverageKind = iota + 1 // cerveza
	BeverageKindSoftDrink                         // refresco
)

// String devuelve el nombre canónico (BEER, SOFT_DRINK).
func (k BeverageKind) String() string {
	switch k {
	case BeverageKindBeer:
		return "BEER"
	case BeverageKindSoftDrink:
		return "SOFT_DRINK"
	default:
		return fmt.Sprintf("BeverageKind(%d)", int(k))
	}
}

// Valid indica si k es uno de los tipos reconocidos.
func (k BeverageKind) Valid() bool {
	return k == BeverageKindBeer || k == BeverageKindSoftDrink
}

// ParseBeverageKind convierte el texto (sin distinguir mayúsculas) al tipo de bebida.
func ParseBeverageKind(s string) (BeverageKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BEER":
		return BeverageKindBeer, nil
	case "SOFT_DRINK":
		return BeverageKindSoftDrink, nil
	}
	return 0, fmt.Errorf("%w: tipo de bebida %q desconocido", domain.ErrInvalidInput, s)
}

// Product representa una bebida del catálogo con sus parámetros de costo.
// Es inmutable: para cambiar costos se crea un Product nuevo.
type Product struct {
	name        string
	kind        BeverageKind
	holdingCost decimal.Decimal // costo de mantener una unidad por periodo
	orderCost   decimal.Decimal // costo fijo por pedido
	unitPrice   decimal.Decimal // precio de compra unitario
}

// NewProduct valida los datos y construye el producto.
func NewProduct(name string, kind BeverageKind, holdingCost, orderCost, unitPrice decimal.Decimal) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: tipo de bebida %s", domain.ErrInvalidInput, kind)
	}
	if holdingCost.IsNegative() {
		return nil, fmt.Errorf("%w: costo de mantenimiento negativo", domain.ErrInvalidInput)
	}
	if orderCost.IsNegative() {
		return nil, fmt.Errorf("%w: costo de pedido negativo", domain.ErrInvalidInput)
	}
	if !unitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: el precio unitario debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return &Product{
		name:        name,
		kind:        kind,
		holdingCost: holdingCost,
		orderCost:   orderCost,
		unitPrice:   unitPrice,
	}, nil
}

func (p *Product) Name() string                 { return p.name }
func (p *Product) Kind() BeverageKind           { return p.kind }
func (p *Product) HoldingCost() decimal.Decimal { return p.holdingCost }
func (p *Product) OrderCost() decimal.Decimal   { return p.orderCost }
func (p *Product) UnitPrice() decimal.Decimal   { return p.unitPrice }

// String formato "Nombre (KIND)".
func (p *Product) String() string {
	return fmt.Sprintf("%s (%s)", p.name, p.kind)
}
