package repository

import (
	"github.com/shopspring/decimal"

	"github.com/kavins/produccion-api/internal/domain/entity"
)

// FabricRepository define el puerto de persistencia para el ledger de telas.
// El débito de corte consulta por (name, color) y debe usar GetByKeyForUpdate
// dentro de una transacción para garantizar consistencia.
type FabricRepository interface {
	Create(fabric *entity.Fabric) error
	GetByID(id string) (*entity.Fabric, error)
	// GetByKey busca por la clave del ledger (nombre + color). nil si no existe.
	GetByKey(name, color string) (*entity.Fabric, error)
	// GetByKeyForUpdate bloquea la fila para update (SELECT FOR UPDATE). nil si no existe.
	GetByKeyForUpdate(name, color string) (*entity.Fabric, error)
	// UpdateStock fija el stock de rollos de la tela.
	UpdateStock(id string, stockRolls decimal.Decimal) error
	Update(fabric *entity.Fabric) error
	List(limit, offset int) ([]*entity.Fabric, error)
	Delete(id string) error
}
