package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/kavins/produccion-api/internal/application/dto"
	"github.com/kavins/produccion-api/internal/domain"
	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/internal/domain/repository"
)

// SeamstressUseCase casos de uso CRUD para costureras.
type SeamstressUseCase struct {
	repo repository.SeamstressRepository
}

// NewSeamstressUseCase construye el caso de uso.
func NewSeamstressUseCase(repo repository.SeamstressRepository) *SeamstressUseCase {
	return &SeamstressUseCase{repo: repo}
}

// Create registra una costurera nueva (activa por defecto).
func (uc *SeamstressUseCase) Create(in dto.CreateSeamstressRequest) (*dto.SeamstressResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	seamstress := &entity.Seamstress{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Specialty: in.Specialty,
		Active:    true,
		Address:   in.Address,
		City:      in.City,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(seamstress); err != nil {
		return nil, err
	}
	return toSeamstressResponse(seamstress), nil
}

// GetByID obtiene una costurera por ID.
func (uc *SeamstressUseCase) GetByID(id string) (*dto.SeamstressResponse, error) {
	seamstress, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seamstress == nil {
		return nil, domain.ErrNotFound
	}
	return toSeamstressResponse(seamstress), nil
}

// Update actualiza una costurera (activación/desactivación incluida).
func (uc *SeamstressUseCase) Update(id string, in dto.UpdateSeamstressRequest) (*dto.SeamstressResponse, error) {
	seamstress, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seamstress == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		seamstress.Name = *in.Name
	}
	if in.Phone != nil {
		seamstress.Phone = *in.Phone
	}
	if in.Specialty != nil {
		seamstress.Specialty = *in.Specialty
	}
	if in.Active != nil {
		seamstress.Active = *in.Active
	}
	if in.Address != nil {
		seamstress.Address = *in.Address
	}
	if in.City != nil {
		seamstress.City = *in.City
	}
	seamstress.UpdatedAt = time.Now()
	if err := uc.repo.Update(seamstress); err != nil {
		return nil, err
	}
	return toSeamstressResponse(seamstress), nil
}

// List lista costureras con paginación.
func (uc *SeamstressUseCase) List(limit, offset int) (*dto.SeamstressListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SeamstressResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSeamstressResponse(s))
	}
	return &dto.SeamstressListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una costurera por ID.
func (uc *SeamstressUseCase) Delete(id string) error {
	seamstress, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if seamstress == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toSeamstressResponse(s *entity.Seamstress) *dto.SeamstressResponse {
	if s == nil {
		return nil
	}
	return &dto.SeamstressResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		Specialty: s.Specialty,
		Active:    s.Active,
		Address:   s.Address,
		City:      s.City,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
