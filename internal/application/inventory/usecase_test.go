package inventory_test

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/beverage-stock/internal/application/inventory"
	"github.com/jhoicas/beverage-stock/internal/application/dto"
	"github.com/jhoicas/beverage-stock/internal/domain"
	"github.com/jhoicas/beverage-stock/internal/domain/inventory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newDistributor stock del ejemplo con Brahma (500) y Coca-Cola (300).
func newDistributor(t *testing.T) *appinventory.StockUseCase {
	t.Helper()
	uc := appinventory.NewStockUseCase(inventory.NewStock("Distribuidora Salvador"), zerolog.Nop())
	_, err := uc.AddProduct(dto.AddProductRequest{
		Name: "Brahma Lata 350ml", Kind: "BEER",
		HoldingCost: dec("0.50"), OrderCost: dec("150"), UnitPrice: dec("2.50"),
	})
	require.NoError(t, err)
	_, err = uc.AddProduct(dto.AddProductRequest{
		Name: "Coca-Cola 2L", Kind: "SOFT_DRINK",
		HoldingCost: dec("0.30"), OrderCost: dec("120"), UnitPrice: dec("5.00"),
	})
	require.NoError(t, err)
	_, err = uc.Receive("Brahma Lata 350ml", 500)
	require.NoError(t, err)
	_, err = uc.Receive("Coca-Cola 2L", 300)
	require.NoError(t, err)
	return uc
}

func TestAddProduct_TipoInvalido(t *testing.T) {
	uc := appinventory.NewStockUseCase(inventory.NewStock(""), zerolog.Nop())
	_, err := uc.AddProduct(dto.AddProductRequest{Name: "Vino", Kind: "WINE", UnitPrice: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, uc.Stock().Len())
}

func TestRegisterMovement_INyOUT(t *testing.T) {
	uc := newDistributor(t)

	qty, err := uc.Issue("Brahma Lata 350ml", 250)
	require.NoError(t, err)
	assert.Equal(t, 250, qty)

	qty, err = uc.Issue("Brahma Lata 350ml", 180)
	require.NoError(t, err)
	assert.Equal(t, 70, qty)

	_, err = uc.Issue("Brahma Lata 350ml", 71)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = uc.RegisterMovement(dto.RegisterMovementRequest{ProductName: "Brahma Lata 350ml", Type: "ADJUSTMENT", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckAlerts_EjemploDistribuidora(t *testing.T) {
	uc := newDistributor(t)
	_, err := uc.Issue("Brahma Lata 350ml", 430)
	require.NoError(t, err)

	level, err := uc.CheckAlerts("Brahma Lata 350ml", 320)
	require.NoError(t, err)
	assert.Equal(t, inventory.AlertReorder, level)

	level, err = uc.CheckAlerts("Coca-Cola 2L", 100)
	require.NoError(t, err)
	assert.Equal(t, inventory.AlertOK, level)
}

func TestAssess_DisponibleYAlerta(t *testing.T) {
	uc := newDistributor(t)
	_, err := uc.Issue("Brahma Lata 350ml", 430)
	require.NoError(t, err)

	qty, level, err := uc.Assess("Brahma Lata 350ml", 320)
	require.NoError(t, err)
	assert.Equal(t, 70, qty)
	assert.Equal(t, inventory.AlertReorder, level)

	_, _, err = uc.Assess("Heineken", 320)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductEOQ_CostoMensualAnualizado(t *testing.T) {
	uc := newDistributor(t)
	// 0.50 × 12 = 6 → √(2 × 18000 × 150 / 6) → 948
	q, err := uc.ProductEOQ("Brahma Lata 350ml", dec("18000"), 12)
	require.NoError(t, err)
	assert.Equal(t, 948, q)

	_, err = uc.ProductEOQ("Heineken", dec("18000"), 12)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.ProductEOQ("Brahma Lata 350ml", dec("18000"), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReport_DespuesDeMovimientos(t *testing.T) {
	uc := appinventory.NewStockUseCase(inventory.NewStock("Depósito"), zerolog.Nop())
	_, err := uc.AddProduct(dto.AddProductRequest{Name: "Guaraná 1L", Kind: "SOFT_DRINK", HoldingCost: dec("0.2"), OrderCost: dec("50"), UnitPrice: dec("3")})
	require.NoError(t, err)
	_, err = uc.AddProduct(dto.AddProductRequest{Name: "Skol 269ml", Kind: "BEER", HoldingCost: dec("0.2"), OrderCost: dec("50"), UnitPrice: dec("2")})
	require.NoError(t, err)
	_, err = uc.Receive("Guaraná 1L", 1000)
	require.NoError(t, err)
	_, err = uc.Issue("Guaraná 1L", 700)
	require.NoError(t, err)

	assert.Equal(t, dto.StockReportDTO{
		StockName: "Depósito",
		Lines: []dto.StockLineDTO{
			{ProductName: "Guaraná 1L", Kind: "SOFT_DRINK", Quantity: 300},
			{ProductName: "Skol 269ml", Kind: "BEER", Quantity: 0},
		},
	}, uc.Report())
}

func TestGenerateReplenishmentList(t *testing.T) {
	uc := newDistributor(t)
	_, err := uc.Issue("Brahma Lata 350ml", 430) // queda 70
	require.NoError(t, err)
	_, err = uc.Issue("Coca-Cola 2L", 300) // queda 0
	require.NoError(t, err)

	repl := appinventory.NewReplenishmentUseCase(uc.Stock(), zerolog.Nop())
	list, err := repl.GenerateReplenishmentList([]dto.PlanningInput{
		{ProductName: "Brahma Lata 350ml", AnnualDemand: dec("18000"), AverageDailyDemand: dec("50"), LeadTimeDays: 5, SafetyStock: 70, HoldingPeriods: 12},
		{ProductName: "Coca-Cola 2L", AnnualDemand: dec("7200"), AverageDailyDemand: dec("20"), LeadTimeDays: 3, SafetyStock: 20, HoldingPeriods: 12},
	})
	require.NoError(t, err)
	require.Len(t, list, 2)

	// STOCKOUT primero
	coca := list[0]
	assert.Equal(t, "Coca-Cola 2L", coca.ProductName)
	assert.Equal(t, "STOCKOUT", coca.Alert)
	assert.Equal(t, 1, coca.Priority)
	assert.Equal(t, 80, coca.ReorderPoint)
	// 0.30 × 12 = 3.6 → √(2 × 7200 × 120 / 3.6) = √480000 ≈ 692.8 → 692
	assert.Equal(t, 692, coca.EconomicOrderQty)
	assert.Equal(t, 692, coca.SuggestedOrderQty)
	assert.True(t, coca.EstimatedOrderCost.Equal(dec("3460")))

	brahma := list[1]
	assert.Equal(t, "REORDER", brahma.Alert)
	assert.Equal(t, 2, brahma.Priority)
	assert.Equal(t, 70, brahma.CurrentStock)
	assert.Equal(t, 320, brahma.ReorderPoint)
	assert.Equal(t, 948, brahma.EconomicOrderQty)
	assert.True(t, brahma.EstimatedOrderCost.Equal(dec("2370")))
}

func TestGenerateReplenishmentList_SinAlertas(t *testing.T) {
	uc := newDistributor(t)
	repl := appinventory.NewReplenishmentUseCase(uc.Stock(), zerolog.Nop())
	list, err := repl.GenerateReplenishmentList([]dto.PlanningInput{
		{ProductName: "Brahma Lata 350ml", AnnualDemand: dec("18000"), AverageDailyDemand: dec("50"), LeadTimeDays: 5, SafetyStock: 70},
	})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGenerateReplenishmentList_DeficitMayorQueEOQ(t *testing.T) {
	uc := newDistributor(t)
	repl := appinventory.NewReplenishmentUseCase(uc.Stock(), zerolog.Nop())
	// ROP = 10 × 100 + 0 = 1000; disponible 500 → déficit 500.
	// EOQ = √(2 × 100 × 150 / 6) = √5000 ≈ 70.7 → 70
	list, err := repl.GenerateReplenishmentList([]dto.PlanningInput{
		{ProductName: "Brahma Lata 350ml", AnnualDemand: dec("100"), AverageDailyDemand: dec("100"), LeadTimeDays: 10, HoldingPeriods: 12},
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 70, list[0].EconomicOrderQty)
	assert.Equal(t, 500, list[0].SuggestedOrderQty)
}

func TestGenerateReplenishmentList_ConSalidasConcurrentes(t *testing.T) {
	uc := newDistributor(t)
	repl := appinventory.NewReplenishmentUseCase(uc.Stock(), zerolog.Nop())
	plans := []dto.PlanningInput{
		// ROP = 5 × 50 + 70 = 320
		{ProductName: "Brahma Lata 350ml", AnnualDemand: dec("18000"), AverageDailyDemand: dec("50"), LeadTimeDays: 5, SafetyStock: 70, HoldingPeriods: 12},
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_, _ = uc.Issue("Brahma Lata 350ml", 1)
		}
	}()
	for i := 0; i < 100; i++ {
		list, err := repl.GenerateReplenishmentList(plans)
		require.NoError(t, err)
		for _, s := range list {
			if s.CurrentStock == 0 {
				assert.Equal(t, "STOCKOUT", s.Alert)
			} else {
				assert.Equal(t, "REORDER", s.Alert)
				assert.LessOrEqual(t, s.CurrentStock, s.ReorderPoint)
			}
		}
	}
	wg.Wait()
}

func TestGenerateReplenishmentList_ProductoInexistente(t *testing.T) {
	uc := newDistributor(t)
	repl := appinventory.NewReplenishmentUseCase(uc.Stock(), zerolog.Nop())
	_, err := repl.GenerateReplenishmentList([]dto.PlanningInput{{ProductName: "Heineken", AverageDailyDemand: dec("1"), AnnualDemand: dec("1")}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
