package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotInitialized        = errors.New("base de datos no inicializada")
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrInsufficientStock     = errors.New("stock insuficiente")
	ErrBaseCurrencyProtected = errors.New("la moneda base no se puede modificar ni eliminar")
	ErrStorage               = errors.New("fallo de almacenamiento")

	ErrProductNotFound  = fmt.Errorf("producto no encontrado: %w", ErrNotFound)
	ErrCurrencyNotFound = fmt.Errorf("moneda no encontrada: %w", ErrNotFound)
)

// InvalidInput envuelve ErrInvalidInput con el detalle del campo rechazado.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
