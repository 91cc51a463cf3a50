package repository

import "github.com/kavins/produccion-api/internal/domain/entity"

// SeamstressRepository define el puerto de persistencia para costureras (DIP).
type SeamstressRepository interface {
	Create(seamstress *entity.Seamstress) error
	GetByID(id string) (*entity.Seamstress, error)
	Update(seamstress *entity.Seamstress) error
	List(limit, offset int) ([]*entity.Seamstress, error)
	Delete(id string) error
}
