package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Se envuelven con fmt.Errorf("%w: ...") para dar contexto; comparar siempre con errors.Is.
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDomain            = errors.New("parámetro fuera del dominio de la fórmula")
	ErrNotFound          = errors.New("producto no encontrado")
	ErrDuplicate         = errors.New("producto duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
