package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	ucli "github.com/urfave/cli/v2"

	appinventory "github.com/jhoicas/beverage-stock/internal/application/inventory"
	"github.com/jhoicas/beverage-stock/internal/domain"
	"github.com/jhoicas/beverage-stock/internal/domain/inventory"
	"github.com/jhoicas/beverage-stock/pkg/config"
)

// AppDeps dependencias para construir la CLI.
type AppDeps struct {
	Config *config.Config
	Log    zerolog.Logger
}

// demoScript reproduce el ejemplo de la distribuidora: alta, entradas, cálculos,
// ventas, alerta y reporte.
const demoScript = `
add-product "Brahma Lata 350ml" BEER 0.50 150 2.50
add-product "Coca-Cola 2L" SOFT_DRINK 0.30 120 5.00
receive "Brahma Lata 350ml" 500
receive "Coca-Cola 2L" 300
safety-stock deviation 0.2 50 7
reorder-point 5 50 70
product-eoq "Brahma Lata 350ml" 18000 12
issue "Brahma Lata 350ml" 250
issue "Brahma Lata 350ml" 180
check "Brahma Lata 350ml" 320
replenish "Brahma Lata 350ml" 18000 50 5 70
report
`

// NewApp arma la aplicación de línea de comandos.
func NewApp(deps AppDeps) *ucli.App {
	return &ucli.App{
		Name:  deps.Config.App.Name,
		Usage: "Inventario de bebidas: lote económico, stock de seguridad y punto de pedido",
		Commands: []*ucli.Command{
			{
				Name:  "eoq",
				Usage: "Calcula el lote económico de compra",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "annual-demand", Usage: "Demanda anual en unidades", Required: true},
					&ucli.StringFlag{Name: "order-cost", Usage: "Costo fijo por pedido", Required: true},
					&ucli.StringFlag{Name: "holding-cost", Usage: "Costo anual de mantener una unidad", Required: true},
				},
				Action: func(c *ucli.Context) error {
					return oneShot(c, deps, fmt.Sprintf("eoq %s %s %s",
						c.String("annual-demand"), c.String("order-cost"), c.String("holding-cost")))
				},
			},
			{
				Name:  "reorder-point",
				Usage: "Calcula el punto de pedido",
				Flags: []ucli.Flag{
					&ucli.IntFlag{Name: "lead-time", Usage: "Lead time en días", Required: true},
					&ucli.StringFlag{Name: "daily-demand", Usage: "Demanda media diaria", Required: true},
					&ucli.IntFlag{Name: "safety-stock", Usage: "Stock de seguridad en unidades", Value: 0},
				},
				Action: func(c *ucli.Context) error {
					return oneShot(c, deps, fmt.Sprintf("reorder-point %d %s %d",
						c.Int("lead-time"), c.String("daily-demand"), c.Int("safety-stock")))
				},
			},
			{
				Name:  "safety-stock",
				Usage: "Calcula o valida el stock de seguridad",
				Flags: []ucli.Flag{
					&ucli.IntFlag{Name: "buffer", Usage: "Stock de seguridad ya calculado"},
					&ucli.StringFlag{Name: "daily-demand", Usage: "Demanda media diaria"},
					&ucli.IntFlag{Name: "buffer-days", Usage: "Días de demanda a cubrir"},
					&ucli.StringFlag{Name: "deviation", Usage: "Desviación de la demanda (requiere daily-demand y buffer-days)"},
					&ucli.StringFlag{Name: "service-factor", Usage: "Factor z de nivel de servicio"},
					&ucli.StringFlag{Name: "std-dev", Usage: "Desviación estándar de la demanda diaria"},
					&ucli.IntFlag{Name: "lead-time", Usage: "Lead time en días"},
				},
				Action: func(c *ucli.Context) error {
					var line string
					switch {
					case c.IsSet("service-factor"):
						line = fmt.Sprintf("safety-stock service %s %s %d", c.String("service-factor"), c.String("std-dev"), c.Int("lead-time"))
					case c.IsSet("deviation"):
						line = fmt.Sprintf("safety-stock deviation %s %s %d", c.String("deviation"), c.String("daily-demand"), c.Int("buffer-days"))
					case c.IsSet("buffer-days"):
						line = fmt.Sprintf("safety-stock days %s %d", c.String("daily-demand"), c.Int("buffer-days"))
					case c.IsSet("buffer"):
						line = fmt.Sprintf("safety-stock %d", c.Int("buffer"))
					default:
						return fmt.Errorf("%w: indicar --buffer, --buffer-days, --deviation o --service-factor", domain.ErrInvalidInput)
					}
					return oneShot(c, deps, line)
				},
			},
			{
				Name:      "session",
				Usage:     "Ejecuta comandos (uno por línea) contra un stock en memoria",
				ArgsUsage: "[archivo]",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "stock-name", Usage: "Nombre del distribuidor", Value: deps.Config.Stock.Name},
				},
				Action: func(c *ucli.Context) error {
					var r io.Reader = c.App.Reader
					if r == nil {
						r = os.Stdin
					}
					if path := c.Args().First(); path != "" {
						f, err := os.Open(path)
						if err != nil {
							return fmt.Errorf("abrir %s: %w", path, err)
						}
						defer f.Close()
						r = f
					}
					return runSession(c, deps, c.String("stock-name"), r)
				},
			},
			{
				Name:  "demo",
				Usage: "Ejecuta el ejemplo de la distribuidora",
				Action: func(c *ucli.Context) error {
					return runSession(c, deps, "Distribuidora Salvador", strings.NewReader(demoScript))
				},
			},
		},
	}
}

// newSession crea un stock vacío y la sesión que lo opera, con un session_id en cada log.
func newSession(c *ucli.Context, deps AppDeps, stockName string) *Session {
	log := deps.Log.With().Str("session_id", uuid.New().String()).Logger()
	stockUC := appinventory.NewStockUseCase(inventory.NewStock(stockName), log)
	return NewSession(SessionDeps{
		Stock:          stockUC,
		Replenishment:  appinventory.NewReplenishmentUseCase(stockUC.Stock(), log),
		Out:            c.App.Writer,
		Printer:        NewPrinter(deps.Config.Report.Locale),
		HoldingPeriods: deps.Config.Stock.HoldingPeriods,
		Log:            log,
	})
}

func runSession(c *ucli.Context, deps AppDeps, stockName string, r io.Reader) error {
	failed, err := newSession(c, deps, stockName).Run(r)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d comando(s) con error", ErrCommandsFailed, failed)
	}
	return nil
}

// oneShot ejecuta un solo comando de cálculo; no necesita productos registrados.
func oneShot(c *ucli.Context, deps AppDeps, line string) error {
	return newSession(c, deps, "").Execute(line)
}

