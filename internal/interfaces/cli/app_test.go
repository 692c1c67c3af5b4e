package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/beverage-stock/internal/domain"
	"github.com/jhoicas/beverage-stock/internal/interfaces/cli"
	"github.com/jhoicas/beverage-stock/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Env: "test", Name: "stock"},
		Log:    config.LogConfig{Level: "error"},
		Stock:  config.StockConfig{Name: "Depósito Central", HoldingPeriods: 12},
		Report: config.ReportConfig{Locale: "en"},
	}
}

// runApp ejecuta la CLI con los argumentos dados y devuelve la salida.
func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := cli.NewApp(cli.AppDeps{Config: testConfig(), Log: zerolog.Nop()})
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"stock"}, args...))
	return out.String(), err
}

func TestApp_EOQ(t *testing.T) {
	out, err := runApp(t, "", "eoq", "--annual-demand", "18000", "--order-cost", "150", "--holding-cost", "6")
	require.NoError(t, err)
	assert.Equal(t, "lote económico: 948 unidades\n", out)
}

func TestApp_EOQ_HoldingCero(t *testing.T) {
	_, err := runApp(t, "", "eoq", "--annual-demand", "18000", "--order-cost", "150", "--holding-cost", "0")
	assert.ErrorIs(t, err, domain.ErrDomain)
}

func TestApp_ReorderPoint(t *testing.T) {
	out, err := runApp(t, "", "reorder-point", "--lead-time", "5", "--daily-demand", "50", "--safety-stock", "70")
	require.NoError(t, err)
	assert.Equal(t, "punto de pedido: 320 unidades\n", out)
}

func TestApp_SafetyStock(t *testing.T) {
	out, err := runApp(t, "", "safety-stock", "--deviation", "0.2", "--daily-demand", "50", "--buffer-days", "7")
	require.NoError(t, err)
	assert.Equal(t, "stock de seguridad: 70 unidades\n", out)

	_, err = runApp(t, "", "safety-stock")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = runApp(t, "", "safety-stock", "--buffer", "-4")
	assert.ErrorIs(t, err, domain.ErrDomain)
}

func TestApp_SessionDesdeStdin(t *testing.T) {
	out, err := runApp(t, "add-product Skol BEER 0.5 100 2\nreceive Skol 10\nreport\n", "session")
	require.NoError(t, err)
	assert.Contains(t, out, "REPORTE DE INVENTARIO: Depósito Central")
	assert.Contains(t, out, "• Skol (BEER) - Stock: 10")
}

func TestApp_SessionConErroresFalla(t *testing.T) {
	out, err := runApp(t, "receive Skol 10\n", "session")
	require.ErrorIs(t, err, cli.ErrCommandsFailed)
	assert.Contains(t, out, "error: [NOT_FOUND]")
}

func TestApp_Demo(t *testing.T) {
	out, err := runApp(t, "", "demo")
	require.NoError(t, err)

	for _, want := range []string{
		"stock de seguridad: 70 unidades",
		"punto de pedido: 320 unidades",
		"lote económico: 948 unidades",
		`✓ salida: -180 unidades de "Brahma Lata 350ml" (stock: 70)`,
		"Brahma Lata 350ml: REORDER (stock 70, punto de pedido 320)",
		"REPORTE DE INVENTARIO: Distribuidora Salvador",
		"• Brahma Lata 350ml (BEER) - Stock: 70",
		"• Coca-Cola 2L (SOFT_DRINK) - Stock: 300",
	} {
		assert.Contains(t, out, want)
	}
}
