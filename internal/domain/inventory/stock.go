package inventory

import (
	"fmt"
	"math"
	"sync"

	"github.com/jhoicas/beverage-stock/internal/domain"
	"github.com/jhoicas/beverage-stock/internal/domain/entity"
)

// DefaultStockName nombre usado cuando el distribuidor no indica uno.
const DefaultStockName = "Inventario Principal"

type stockEntry struct {
	product  *entity.Product
	quantity int
}

// Stock es el libro de existencias en memoria de un distribuidor.
// La clave es el nombre del producto. Las operaciones se serializan con un mutex
// para que lectura-modificación-escritura nunca deje cantidades negativas.
type Stock struct {
	mu      sync.Mutex
	name    string
	entries map[string]*stockEntry
	order   []string // orden de alta, para reportes estables
}

// NewStock crea un stock vacío. Nombre vacío usa DefaultStockName.
func NewStock(name string) *Stock {
	if name == "" {
		name = DefaultStockName
	}
	return &Stock{
		name:    name,
		entries: make(map[string]*stockEntry),
	}
}

// Name devuelve el nombre del distribuidor.
func (s *Stock) Name() string { return s.name }

// Len cantidad de productos registrados.
func (s *Stock) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// AddProduct registra el producto con cantidad inicial 0.
func (s *Stock) AddProduct(p *entity.Product) error {
	if p == nil {
		return fmt.Errorf("%w: producto nulo", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[p.Name()]; ok {
		return fmt.Errorf("%w: %q ya está registrado", domain.ErrDuplicate, p.Name())
	}
	s.entries[p.Name()] = &stockEntry{product: p}
	s.order = append(s.order, p.Name())
	return nil
}

// Receive suma unidades al stock (entrada de mercancía). No hay tope de negocio;
// sólo se rechaza una entrada que desbordaría el int.
func (s *Stock) Receive(productName string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookup(productName)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: la cantidad de entrada debe ser positiva", domain.ErrInvalidInput)
	}
	if quantity > math.MaxInt-e.quantity {
		return fmt.Errorf("%w: la entrada excede la capacidad numérica (disponible %d)", domain.ErrInvalidInput, e.quantity)
	}
	e.quantity += quantity
	return nil
}

// Issue resta unidades (venta o despacho). Si no alcanza, se rechaza completa
// y la cantidad queda intacta.
func (s *Stock) Issue(productName string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookup(productName)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: la cantidad de salida debe ser positiva", domain.ErrInvalidInput)
	}
	if quantity > e.quantity {
		return fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, e.quantity, quantity)
	}
	e.quantity -= quantity
	return nil
}

// CheckAlerts compara el disponible contra un punto de pedido calculado afuera
// (ver ReorderPoint). El Stock no calcula umbrales.
func (s *Stock) CheckAlerts(reorderPoint int, productName string) (AlertLevel, error) {
	_, level, err := s.Assess(reorderPoint, productName)
	return level, err
}

// Assess devuelve el disponible y su nivel de alerta leídos bajo el mismo bloqueo,
// así ambos corresponden a la misma foto del stock.
func (s *Stock) Assess(reorderPoint int, productName string) (int, AlertLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookup(productName)
	if err != nil {
		return 0, AlertOK, err
	}
	if reorderPoint < 0 {
		return 0, AlertOK, fmt.Errorf("%w: el punto de pedido no puede ser negativo", domain.ErrInvalidInput)
	}
	return e.quantity, classify(e.quantity, reorderPoint), nil
}

// Quantity devuelve el disponible actual del producto.
func (s *Stock) Quantity(productName string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookup(productName)
	if err != nil {
		return 0, err
	}
	return e.quantity, nil
}

// Product devuelve el producto registrado con ese nombre.
func (s *Stock) Product(productName string) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookup(productName)
	if err != nil {
		return nil, err
	}
	return e.product, nil
}

// Report foto del stock en orden de alta.
func (s *Stock) Report() []entity.StockLevel {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.StockLevel, 0, len(s.order))
	for _, name := range s.order {
		e := s.entries[name]
		out = append(out, entity.StockLevel{
			ProductName: name,
			Kind:        e.product.Kind(),
			Quantity:    e.quantity,
		})
	}
	return out
}

// lookup requiere s.mu tomado.
func (s *Stock) lookup(productName string) (*stockEntry, error) {
	e, ok := s.entries[productName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, productName)
	}
	return e, nil
}
