package repository

import "github.com/kavins/produccion-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para órdenes de producción.
// GetByIDForUpdate serializa las operaciones de producción sobre una misma
// orden: dos distribuciones concurrentes no pueden leer el mismo saldo.
type OrderRepository interface {
	Create(order *entity.ProductionOrder) error
	GetByID(id string) (*entity.ProductionOrder, error)
	// GetByIDForUpdate bloquea la fila de la orden (SELECT FOR UPDATE). nil si no existe.
	GetByIDForUpdate(id string) (*entity.ProductionOrder, error)
	Update(order *entity.ProductionOrder) error
	List(limit, offset int) ([]*entity.ProductionOrder, error)
	ListByStatus(status entity.OrderStatus, limit, offset int) ([]*entity.ProductionOrder, error)
	Delete(id string) error
}
