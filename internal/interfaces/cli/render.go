package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/beverage-stock/internal/application/dto"
)

var rule = strings.Repeat("=", 60)

// NewPrinter printer de números para la etiqueta BCP 47 dada; etiquetas inválidas usan inglés.
func NewPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// RenderReport escribe el reporte de stock con encabezado y una línea por producto.
func RenderReport(w io.Writer, p *message.Printer, r dto.StockReportDTO) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "REPORTE DE INVENTARIO: %s\n", r.StockName)
	fmt.Fprintln(w, rule)
	if len(r.Lines) == 0 {
		fmt.Fprintln(w, "Ningún producto registrado.")
		return
	}
	for _, l := range r.Lines {
		fmt.Fprintf(w, "• %s (%s) - Stock: %s\n", l.ProductName, l.Kind, p.Sprintf("%d", l.Quantity))
	}
	fmt.Fprintln(w, rule)
}

// RenderSuggestions una línea por sugerencia de reposición, en orden de prioridad.
func RenderSuggestions(w io.Writer, p *message.Printer, list []dto.ReplenishmentSuggestionDTO) {
	if len(list) == 0 {
		fmt.Fprintln(w, "sin sugerencias de reposición")
		return
	}
	for _, s := range list {
		fmt.Fprintf(w, "#%d %s [%s] stock %s / punto de pedido %s -> pedir %s unidades (costo estimado %s)\n",
			s.Priority, s.ProductName, s.Alert,
			p.Sprintf("%d", s.CurrentStock),
			p.Sprintf("%d", s.ReorderPoint),
			p.Sprintf("%d", s.SuggestedOrderQty),
			s.EstimatedOrderCost.StringFixed(2),
		)
	}
}
