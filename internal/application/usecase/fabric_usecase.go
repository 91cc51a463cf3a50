package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/kavins/produccion-api/internal/application/dto"
	"github.com/kavins/produccion-api/internal/domain"
	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/internal/domain/repository"
)

// FabricUseCase casos de uso CRUD para el ledger de telas. El débito de corte
// no pasa por aquí: vive en application/production dentro de su transacción.
type FabricUseCase struct {
	repo repository.FabricRepository
}

// NewFabricUseCase construye el caso de uso.
func NewFabricUseCase(repo repository.FabricRepository) *FabricUseCase {
	return &FabricUseCase{repo: repo}
}

// Create registra una tela nueva. El stock inicial no puede ser negativo y la
// clave (nombre, color) debe ser única en el ledger.
func (uc *FabricUseCase) Create(in dto.CreateFabricRequest) (*dto.FabricResponse, error) {
	if in.Name == "" || in.Color == "" || in.StockRolls.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByKey(in.Name, in.Color)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	fabric := &entity.Fabric{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Color:      in.Color,
		ColorHex:   in.ColorHex,
		StockRolls: in.StockRolls,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(fabric); err != nil {
		return nil, err
	}
	return toFabricResponse(fabric), nil
}

// GetByID obtiene una tela por ID.
func (uc *FabricUseCase) GetByID(id string) (*dto.FabricResponse, error) {
	fabric, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fabric == nil {
		return nil, domain.ErrNotFound
	}
	return toFabricResponse(fabric), nil
}

// Update actualiza una tela (reposición de stock incluida).
func (uc *FabricUseCase) Update(id string, in dto.UpdateFabricRequest) (*dto.FabricResponse, error) {
	fabric, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fabric == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		fabric.Name = *in.Name
	}
	if in.Color != nil {
		fabric.Color = *in.Color
	}
	if in.ColorHex != nil {
		fabric.ColorHex = *in.ColorHex
	}
	if in.StockRolls != nil {
		if in.StockRolls.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		fabric.StockRolls = *in.StockRolls
	}
	if in.Notes != nil {
		fabric.Notes = *in.Notes
	}
	fabric.UpdatedAt = time.Now()
	if err := uc.repo.Update(fabric); err != nil {
		return nil, err
	}
	return toFabricResponse(fabric), nil
}

// List lista telas con paginación.
func (uc *FabricUseCase) List(limit, offset int) (*dto.FabricListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FabricResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFabricResponse(f))
	}
	return &dto.FabricListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una tela por ID.
func (uc *FabricUseCase) Delete(id string) error {
	fabric, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if fabric == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toFabricResponse(f *entity.Fabric) *dto.FabricResponse {
	if f == nil {
		return nil
	}
	return &dto.FabricResponse{
		ID:         f.ID,
		Name:       f.Name,
		Color:      f.Color,
		ColorHex:   f.ColorHex,
		StockRolls: f.StockRolls,
		Notes:      f.Notes,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}
