package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"

	"github.com/jhoicas/beverage-stock/internal/application/dto"
	appinventory "github.com/jhoicas/beverage-stock/internal/application/inventory"
	"github.com/jhoicas/beverage-stock/internal/domain"
	"github.com/jhoicas/beverage-stock/internal/domain/inventory"
)

// SessionDeps dependencias de una sesión.
type SessionDeps struct {
	Stock          *appinventory.StockUseCase
	Replenishment  *appinventory.ReplenishmentUseCase
	Out            io.Writer
	Printer        *message.Printer
	HoldingPeriods int
	Log            zerolog.Logger
}

// Session ejecuta comandos de texto, uno por línea, contra un único Stock en memoria.
type Session struct {
	deps SessionDeps
}

// NewSession construye la sesión.
func NewSession(deps SessionDeps) *Session {
	return &Session{deps: deps}
}

// Run lee comandos de r hasta EOF. Las líneas vacías y las que empiezan con '#' se ignoran.
// Cada error de comando se imprime y la sesión continúa; devuelve cuántos comandos fallaron.
func (s *Session) Run(r io.Reader) (int, error) {
	failed := 0
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.Execute(line); err != nil {
			failed++
			s.deps.Log.Debug().Err(err).Int("line", lineNo).Msg("comando con error")
			fmt.Fprintln(s.deps.Out, FormatError(err))
		}
	}
	if err := sc.Err(); err != nil {
		return failed, fmt.Errorf("leer comandos: %w", err)
	}
	return failed, nil
}

// Execute interpreta y ejecuta una línea.
func (s *Session) Execute(line string) error {
	args, err := splitFields(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "add-product":
		return s.addProduct(args)
	case "receive":
		return s.move(args, true)
	case "issue":
		return s.move(args, false)
	case "check":
		return s.check(args)
	case "report":
		return s.report(args)
	case "eoq":
		return s.eoq(args)
	case "product-eoq":
		return s.productEOQ(args)
	case "reorder-point":
		return s.reorderPoint(args)
	case "safety-stock":
		return s.safetyStock(args)
	case "replenish":
		return s.replenish(args)
	default:
		return fmt.Errorf("%w: comando desconocido %q", domain.ErrInvalidInput, cmd)
	}
}

func (s *Session) addProduct(args []string) error {
	if err := wantArgs("add-product <nombre> <BEER|SOFT_DRINK> <mantenimiento> <pedido> <precio>", args, 5); err != nil {
		return err
	}
	var in dto.AddProductRequest
	in.Name, in.Kind = args[0], args[1]
	var err error
	if in.HoldingCost, err = parseDecimal("costo de mantenimiento", args[2]); err != nil {
		return err
	}
	if in.OrderCost, err = parseDecimal("costo de pedido", args[3]); err != nil {
		return err
	}
	if in.UnitPrice, err = parseDecimal("precio unitario", args[4]); err != nil {
		return err
	}
	p, err := s.deps.Stock.AddProduct(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.deps.Out, "✓ producto %q agregado (%s)\n", p.Name(), p.Kind())
	return nil
}

func (s *Session) move(args []string, in bool) error {
	usage := "issue <nombre> <cantidad>"
	if in {
		usage = "receive <nombre> <cantidad>"
	}
	if err := wantArgs(usage, args, 2); err != nil {
		return err
	}
	qty, err := parseInt("cantidad", args[1])
	if err != nil {
		return err
	}
	p := s.deps.Printer
	if in {
		onHand, err := s.deps.Stock.Receive(args[0], qty)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.deps.Out, "✓ entrada: +%s unidades de %q (stock: %s)\n", p.Sprintf("%d", qty), args[0], p.Sprintf("%d", onHand))
		return nil
	}
	onHand, err := s.deps.Stock.Issue(args[0], qty)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.deps.Out, "✓ salida: -%s unidades de %q (stock: %s)\n", p.Sprintf("%d", qty), args[0], p.Sprintf("%d", onHand))
	return nil
}

func (s *Session) check(args []string) error {
	if err := wantArgs("check <nombre> <punto-de-pedido>", args, 2); err != nil {
		return err
	}
	rop, err := parseInt("punto de pedido", args[1])
	if err != nil {
		return err
	}
	qty, level, err := s.deps.Stock.Assess(args[0], rop)
	if err != nil {
		return err
	}
	p := s.deps.Printer
	fmt.Fprintf(s.deps.Out, "%s: %s (stock %s, punto de pedido %s)\n", args[0], level, p.Sprintf("%d", qty), p.Sprintf("%d", rop))
	return nil
}

func (s *Session) report(args []string) error {
	r := s.deps.Stock.Report()
	if len(args) == 1 && args[0] == "json" {
		enc := json.NewEncoder(s.deps.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: uso: report [json]", domain.ErrInvalidInput)
	}
	RenderReport(s.deps.Out, s.deps.Printer, r)
	return nil
}

func (s *Session) eoq(args []string) error {
	if err := wantArgs("eoq <demanda-anual> <costo-pedido> <costo-mantenimiento>", args, 3); err != nil {
		return err
	}
	nums, err := parseDecimals([]string{"demanda anual", "costo de pedido", "costo de mantenimiento"}, args)
	if err != nil {
		return err
	}
	q, err := inventory.EconomicOrderQuantity(nums[0], nums[1], nums[2])
	if err != nil {
		return err
	}
	s.printQuantity("lote económico", q)
	return nil
}

func (s *Session) productEOQ(args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return fmt.Errorf("%w: uso: product-eoq <nombre> <demanda-anual> [periodos]", domain.ErrInvalidInput)
	}
	demand, err := parseDecimal("demanda anual", args[1])
	if err != nil {
		return err
	}
	periods := s.deps.HoldingPeriods
	if len(args) == 3 {
		if periods, err = parseInt("periodos", args[2]); err != nil {
			return err
		}
	}
	q, err := s.deps.Stock.ProductEOQ(args[0], demand, periods)
	if err != nil {
		return err
	}
	s.printQuantity("lote económico", q)
	return nil
}

func (s *Session) reorderPoint(args []string) error {
	if err := wantArgs("reorder-point <lead-time> <demanda-diaria> <stock-seguridad>", args, 3); err != nil {
		return err
	}
	lead, err := parseInt("lead time", args[0])
	if err != nil {
		return err
	}
	daily, err := parseDecimal("demanda diaria", args[1])
	if err != nil {
		return err
	}
	safety, err := parseInt("stock de seguridad", args[2])
	if err != nil {
		return err
	}
	rop, err := inventory.ReorderPoint(lead, daily, safety)
	if err != nil {
		return err
	}
	s.printQuantity("punto de pedido", rop)
	return nil
}

// safety-stock <colchón>
// safety-stock days <demanda-diaria> <días>
// safety-stock deviation <desviación> <demanda-diaria> <días>
// safety-stock service <factor-z> <desviación-estándar> <lead-time>
func (s *Session) safetyStock(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: uso: safety-stock <colchón> | days | deviation | service", domain.ErrInvalidInput)
	}
	var (
		q   int
		err error
	)
	switch args[0] {
	case "days":
		if err = wantArgs("safety-stock days <demanda-diaria> <días>", args[1:], 2); err != nil {
			return err
		}
		var daily decimal.Decimal
		var days int
		if daily, err = parseDecimal("demanda diaria", args[1]); err != nil {
			return err
		}
		if days, err = parseInt("días", args[2]); err != nil {
			return err
		}
		q, err = inventory.SafetyStockFromBufferDays(daily, days)
	case "deviation":
		if err = wantArgs("safety-stock deviation <desviación> <demanda-diaria> <días>", args[1:], 3); err != nil {
			return err
		}
		var nums []decimal.Decimal
		var days int
		if nums, err = parseDecimals([]string{"desviación", "demanda diaria"}, args[1:3]); err != nil {
			return err
		}
		if days, err = parseInt("días", args[3]); err != nil {
			return err
		}
		q, err = inventory.SafetyStockFromDeviation(nums[0], nums[1], days)
	case "service":
		if err = wantArgs("safety-stock service <factor-z> <desviación-estándar> <lead-time>", args[1:], 3); err != nil {
			return err
		}
		var nums []decimal.Decimal
		var lead int
		if nums, err = parseDecimals([]string{"factor de servicio", "desviación estándar"}, args[1:3]); err != nil {
			return err
		}
		if lead, err = parseInt("lead time", args[3]); err != nil {
			return err
		}
		q, err = inventory.StatisticalSafetyStock(nums[0], nums[1], lead)
	default:
		if err = wantArgs("safety-stock <colchón>", args, 1); err != nil {
			return err
		}
		var buffer int
		if buffer, err = parseInt("colchón", args[0]); err != nil {
			return err
		}
		q, err = inventory.SafetyStock(buffer)
	}
	if err != nil {
		return err
	}
	s.printQuantity("stock de seguridad", q)
	return nil
}

func (s *Session) replenish(args []string) error {
	if err := wantArgs("replenish <nombre> <demanda-anual> <demanda-diaria> <lead-time> <stock-seguridad>", args, 5); err != nil {
		return err
	}
	nums, err := parseDecimals([]string{"demanda anual", "demanda diaria"}, args[1:3])
	if err != nil {
		return err
	}
	lead, err := parseInt("lead time", args[3])
	if err != nil {
		return err
	}
	safety, err := parseInt("stock de seguridad", args[4])
	if err != nil {
		return err
	}
	list, err := s.deps.Replenishment.GenerateReplenishmentList([]dto.PlanningInput{{
		ProductName:        args[0],
		AnnualDemand:       nums[0],
		AverageDailyDemand: nums[1],
		LeadTimeDays:       lead,
		SafetyStock:        safety,
		HoldingPeriods:     s.deps.HoldingPeriods,
	}})
	if err != nil {
		return err
	}
	RenderSuggestions(s.deps.Out, s.deps.Printer, list)
	return nil
}

func (s *Session) printQuantity(label string, q int) {
	fmt.Fprintf(s.deps.Out, "%s: %s unidades\n", label, s.deps.Printer.Sprintf("%d", q))
}

func wantArgs(usage string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: uso: %s", domain.ErrInvalidInput, usage)
	}
	return nil
}

func parseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q no es un entero", domain.ErrInvalidInput, field, s)
	}
	return n, nil
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q no es un número", domain.ErrInvalidInput, field, s)
	}
	return d, nil
}

func parseDecimals(fields, values []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		d, err := parseDecimal(fields[i], v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// splitFields separa por espacios respetando comillas dobles ("Brahma Lata 350ml").
func splitFields(line string) ([]string, error) {
	var (
		fields  []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case (r == ' ' || r == '\t') && !inQuote:
			if started {
				fields = append(fields, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("%w: comillas sin cerrar", domain.ErrInvalidInput)
	}
	if started {
		fields = append(fields, cur.String())
	}
	return fields, nil
}
