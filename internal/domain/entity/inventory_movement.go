package entity

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada (recepción)
	MovementTypeOUT = "OUT" // salida (venta o despacho)
)
