package entity

// StockLevel es una fila del reporte de stock: producto, tipo y cantidad disponible.
type StockLevel struct {
	ProductName string
	Kind        BeverageKind
	Quantity    int
}
