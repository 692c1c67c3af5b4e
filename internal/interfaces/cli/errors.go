package cli

import (
	"errors"

	"github.com/jhoicas/beverage-stock/internal/domain"
)

// ErrCommandsFailed la sesión terminó con al menos un comando fallido.
var ErrCommandsFailed = errors.New("sesión con comandos fallidos")

// ErrorCode traduce los errores de dominio a un código estable para la salida.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "VALIDATION"
	case errors.Is(err, domain.ErrDomain):
		return "DOMAIN"
	case errors.Is(err, domain.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		return "DUPLICATE"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, ErrCommandsFailed):
		return "FAILED_COMMANDS"
	default:
		return "INTERNAL"
	}
}

// FormatError línea de error tal como la imprime la CLI.
func FormatError(err error) string {
	return "error: [" + ErrorCode(err) + "] " + err.Error()
}
