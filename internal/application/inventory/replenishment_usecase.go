package inventory

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/beverage-stock/internal/application/dto"
	"github.com/jhoicas/beverage-stock/internal/domain/inventory"
)

// ReplenishmentUseCase genera la lista de reposición del stock.
// Para cada producto calcula punto de pedido y lote económico, evalúa la alerta y
// prioriza los que están en STOCKOUT o REORDER.
type ReplenishmentUseCase struct {
	stock StockReader
	log   zerolog.Logger
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(stock StockReader, log zerolog.Logger) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{stock: stock, log: log}
}

// GenerateReplenishmentList devuelve las sugerencias de pedido, de la más urgente a la menos.
// Un producto en OK no genera sugerencia. Cualquier error de cálculo o producto
// inexistente aborta la lista completa.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(plans []dto.PlanningInput) ([]dto.ReplenishmentSuggestionDTO, error) {
	runID := uuid.New().String()
	log := uc.log.With().Str("run_id", runID).Logger()

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(plans))
	for _, plan := range plans {
		s, ok, err := uc.suggest(plan)
		if err != nil {
			log.Error().Err(err).Str("product", plan.ProductName).Msg("reposición")
			return nil, fmt.Errorf("reposición de %q: %w", plan.ProductName, err)
		}
		if ok {
			suggestions = append(suggestions, s)
		}
	}

	// Ordenar: primero STOCKOUT, luego mayor déficit bajo el punto de pedido, luego nombre.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		aOut := a.Alert == inventory.AlertStockout.String()
		bOut := b.Alert == inventory.AlertStockout.String()
		if aOut != bOut {
			return aOut
		}
		defA := a.ReorderPoint - a.CurrentStock
		defB := b.ReorderPoint - b.CurrentStock
		if defA != defB {
			return defA > defB
		}
		return a.ProductName < b.ProductName
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}

	log.Info().
		Int("products", len(plans)).
		Int("suggestions", len(suggestions)).
		Msg("lista de reposición generada")
	return suggestions, nil
}

func (uc *ReplenishmentUseCase) suggest(plan dto.PlanningInput) (dto.ReplenishmentSuggestionDTO, bool, error) {
	var out dto.ReplenishmentSuggestionDTO

	product, err := uc.stock.Product(plan.ProductName)
	if err != nil {
		return out, false, err
	}
	safety, err := inventory.SafetyStock(plan.SafetyStock)
	if err != nil {
		return out, false, err
	}
	rop, err := inventory.ReorderPoint(plan.LeadTimeDays, plan.AverageDailyDemand, safety)
	if err != nil {
		return out, false, err
	}
	current, level, err := uc.stock.Assess(rop, plan.ProductName)
	if err != nil {
		return out, false, err
	}
	if level == inventory.AlertOK {
		return out, false, nil
	}
	eoq, err := productEOQ(product, plan.AnnualDemand, plan.HoldingPeriods)
	if err != nil {
		return out, false, err
	}

	suggested := eoq
	if deficit := rop - current; deficit > suggested {
		suggested = deficit
	}

	return dto.ReplenishmentSuggestionDTO{
		ProductName:        product.Name(),
		Kind:               product.Kind().String(),
		Alert:              level.String(),
		CurrentStock:       current,
		ReorderPoint:       rop,
		EconomicOrderQty:   eoq,
		SuggestedOrderQty:  suggested,
		UnitPrice:          product.UnitPrice(),
		EstimatedOrderCost: decimal.NewFromInt(int64(suggested)).Mul(product.UnitPrice()),
	}, true, nil
}
