package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock de tela insuficiente")
	ErrInsufficientPieces = errors.New("saldo de piezas insuficiente")
)

// StockShortageError reporta el faltante exacto de una tela al confirmar corte.
// La clave del ledger es (tela, color), no el ID.
type StockShortageError struct {
	Fabric    string
	Color     string
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *StockShortageError) Error() string {
	return fmt.Sprintf("stock insuficiente de %q - %q: requiere %s rollos, disponible %s",
		e.Fabric, e.Color, e.Required.StringFixed(1), e.Available.StringFixed(1))
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *StockShortageError) Unwrap() error { return ErrInsufficientStock }

// PieceShortageError reporta un pedido de distribución que excede el saldo
// activo de una línea de color. La distribución se rechaza completa.
type PieceShortageError struct {
	Color     string
	Size      string
	Requested int
	Available int
}

func (e *PieceShortageError) Error() string {
	return fmt.Sprintf("saldo insuficiente de piezas %q talla %s: pedido %d, disponible %d",
		e.Color, e.Size, e.Requested, e.Available)
}

// Unwrap permite errors.Is(err, ErrInsufficientPieces).
func (e *PieceShortageError) Unwrap() error { return ErrInsufficientPieces }
