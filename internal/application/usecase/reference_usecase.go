package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/kavins/produccion-api/internal/application/dto"
	"github.com/kavins/produccion-api/internal/domain"
	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/internal/domain/repository"
)

// ReferenceUseCase casos de uso CRUD para el catálogo de referencias.
type ReferenceUseCase struct {
	repo repository.ReferenceRepository
}

// NewReferenceUseCase construye el caso de uso.
func NewReferenceUseCase(repo repository.ReferenceRepository) *ReferenceUseCase {
	return &ReferenceUseCase{repo: repo}
}

// Create registra una referencia nueva; el código es único en el catálogo.
func (uc *ReferenceUseCase) Create(in dto.CreateReferenceRequest) (*dto.ReferenceResponse, error) {
	if in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	grid := in.DefaultGrid
	if grid == "" {
		grid = entity.GridStandard
	}
	now := time.Now()
	ref := &entity.ProductReference{
		ID:                     uuid.New().String(),
		Code:                   in.Code,
		Description:            in.Description,
		DefaultFabric:          in.DefaultFabric,
		DefaultColors:          in.DefaultColors,
		DefaultGrid:            grid,
		EstimatedPiecesPerRoll: in.EstimatedPiecesPerRoll,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.repo.Create(ref); err != nil {
		return nil, err
	}
	return toReferenceResponse(ref), nil
}

// GetByID obtiene una referencia por ID.
func (uc *ReferenceUseCase) GetByID(id string) (*dto.ReferenceResponse, error) {
	ref, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, domain.ErrNotFound
	}
	return toReferenceResponse(ref), nil
}

// Update actualiza una referencia.
func (uc *ReferenceUseCase) Update(id string, in dto.UpdateReferenceRequest) (*dto.ReferenceResponse, error) {
	ref, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil {
		ref.Code = *in.Code
	}
	if in.Description != nil {
		ref.Description = *in.Description
	}
	if in.DefaultFabric != nil {
		ref.DefaultFabric = *in.DefaultFabric
	}
	if in.DefaultColors != nil {
		ref.DefaultColors = in.DefaultColors
	}
	if in.DefaultGrid != nil {
		ref.DefaultGrid = *in.DefaultGrid
	}
	if in.EstimatedPiecesPerRoll != nil {
		ref.EstimatedPiecesPerRoll = *in.EstimatedPiecesPerRoll
	}
	ref.UpdatedAt = time.Now()
	if err := uc.repo.Update(ref); err != nil {
		return nil, err
	}
	return toReferenceResponse(ref), nil
}

// List lista referencias con paginación.
func (uc *ReferenceUseCase) List(limit, offset int) (*dto.ReferenceListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReferenceResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReferenceResponse(r))
	}
	return &dto.ReferenceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una referencia por ID.
func (uc *ReferenceUseCase) Delete(id string) error {
	ref, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ref == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toReferenceResponse(r *entity.ProductReference) *dto.ReferenceResponse {
	if r == nil {
		return nil
	}
	return &dto.ReferenceResponse{
		ID:                     r.ID,
		Code:                   r.Code,
		Description:            r.Description,
		DefaultFabric:          r.DefaultFabric,
		DefaultColors:          r.DefaultColors,
		DefaultGrid:            r.DefaultGrid,
		EstimatedPiecesPerRoll: r.EstimatedPiecesPerRoll,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}
}
