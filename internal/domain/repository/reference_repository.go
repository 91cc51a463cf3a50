package repository

import "github.com/kavins/produccion-api/internal/domain/entity"

// ReferenceRepository define el puerto de persistencia para el catálogo de
// referencias de producto (DIP).
type ReferenceRepository interface {
	Create(ref *entity.ProductReference) error
	GetByID(id string) (*entity.ProductReference, error)
	GetByCode(code string) (*entity.ProductReference, error)
	Update(ref *entity.ProductReference) error
	List(limit, offset int) ([]*entity.ProductReference, error)
	Delete(id string) error
}
