package inventory

// AlertLevel resultado de comparar el stock disponible contra el punto de pedido.
type AlertLevel int

const (
	AlertOK       AlertLevel = iota // por encima del punto de pedido
	AlertReorder                    // <= punto de pedido y > 0
	AlertStockout                   // sin unidades
)

func (a AlertLevel) String() string {
	switch a {
	case AlertOK:
		return "OK"
	case AlertReorder:
		return "REORDER"
	case AlertStockout:
		return "STOCKOUT"
	default:
		return "UNKNOWN"
	}
}

// classify aplica la regla de alerta; el umbral es inclusivo.
func classify(quantity, reorderPoint int) AlertLevel {
	switch {
	case quantity == 0:
		return AlertStockout
	case quantity <= reorderPoint:
		return AlertReorder
	default:
		return AlertOK
	}
}
