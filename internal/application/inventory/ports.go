package inventory

import (
	"github.com/jhoicas/beverage-stock/internal/domain/entity"
	"github.com/jhoicas/beverage-stock/internal/domain/inventory"
)

// StockReader lectura del libro de existencias que necesita la reposición.
// *inventory.Stock la implementa.
type StockReader interface {
	Product(productName string) (*entity.Product, error)
	// Assess devuelve disponible y alerta de una misma lectura.
	Assess(reorderPoint int, productName string) (int, inventory.AlertLevel, error)
}

var _ StockReader = (*inventory.Stock)(nil)
