package dto

import "github.com/shopspring/decimal"

// AddProductRequest datos para registrar una bebida en el stock.
type AddProductRequest struct {
	Name        string          `json:"name"`
	Kind        string          `json:"kind"` // BEER | SOFT_DRINK
	HoldingCost decimal.Decimal `json:"holding_cost"`
	OrderCost   decimal.Decimal `json:"order_cost"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// RegisterMovementRequest entrada o salida de unidades.
type RegisterMovementRequest struct {
	ProductName string `json:"product_name"`
	Type        string `json:"type"` // IN | OUT
	Quantity    int    `json:"quantity"`
}

// PlanningInput parámetros de demanda de un producto para calcular reposición.
type PlanningInput struct {
	ProductName        string          `json:"product_name"`
	AnnualDemand       decimal.Decimal `json:"annual_demand"`
	AverageDailyDemand decimal.Decimal `json:"average_daily_demand"`
	LeadTimeDays       int             `json:"lead_time_days"`
	SafetyStock        int             `json:"safety_stock"`
	// HoldingPeriods multiplica el costo de mantenimiento del producto para llevarlo
	// a base anual (ej. 12 si el costo es mensual). 0 se toma como 1.
	HoldingPeriods int `json:"holding_periods,omitempty"`
}

// ReplenishmentSuggestionDTO sugerencia de pedido para un producto en REORDER o STOCKOUT.
type ReplenishmentSuggestionDTO struct {
	ProductName        string          `json:"product_name"`
	Kind               string          `json:"kind"`
	Alert              string          `json:"alert"`
	CurrentStock       int             `json:"current_stock"`
	ReorderPoint       int             `json:"reorder_point"`
	EconomicOrderQty   int             `json:"economic_order_qty"`
	SuggestedOrderQty  int             `json:"suggested_order_qty"`  // max(EOQ, ReorderPoint - CurrentStock)
	UnitPrice          decimal.Decimal `json:"unit_price"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * UnitPrice
	Priority           int             `json:"priority"`             // 1 = más urgente
}

// StockLineDTO una fila del reporte.
type StockLineDTO struct {
	ProductName string `json:"product_name"`
	Kind        string `json:"kind"`
	Quantity    int    `json:"quantity"`
}

// StockReportDTO reporte completo del stock.
type StockReportDTO struct {
	StockName string         `json:"stock_name"`
	Lines     []StockLineDTO `json:"lines"`
}
