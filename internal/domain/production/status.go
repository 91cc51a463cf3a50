// Package production contiene los servicios de dominio del ciclo de corte y
// costura: normalización de cantidades cortadas, agregación de consumo de
// tela y derivación del estado de la orden.
package production

import "github.com/kavins/produccion-api/internal/domain/entity"

// ResolveStatus deriva el estado de la orden a partir de sus hechos
// observables, en lugar de mutarlo imperativamente en cada operación.
//
// Reglas:
//   - Todos los paquetes terminados y saldo activo en cero ⇒ FINISHED.
//   - Existe al menos un paquete y el saldo activo llegó exactamente a cero
//     ⇒ SEWING (la orden "entra" a costura en el momento en que una
//     distribución agota el corte; con saldo pendiente sigue en CUTTING
//     aunque ya haya paquetes cosiendo).
//   - En cualquier otro caso el estado no cambia.
//
// La progresión es monótona: el resultado nunca es una etapa anterior a la actual.
func ResolveStatus(current entity.OrderStatus, remaining int, splits []entity.OrderSplit) entity.OrderStatus {
	derived := current
	if len(splits) > 0 && remaining == 0 {
		derived = entity.StatusSewing
		if allFinished(splits) {
			derived = entity.StatusFinished
		}
	}
	if derived.Before(current) {
		return current
	}
	return derived
}

func allFinished(splits []entity.OrderSplit) bool {
	for _, s := range splits {
		if s.Status != entity.StatusFinished {
			return false
		}
	}
	return true
}
