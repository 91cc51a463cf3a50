package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kavins/produccion-api/internal/application/dto"
	"github.com/kavins/produccion-api/internal/domain"
	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/internal/domain/repository"
)

// OrderUseCase casos de uso CRUD para órdenes de producción. Las transiciones
// de estado viven en application/production; aquí solo planeación y consulta.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create crea una orden en PLANNED con working set y paquetes vacíos.
// Una orden sin líneas no se puede guardar.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, r := range in.Items {
		it, err := r.ToEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	id := in.ID
	if id == "" {
		id = uuid.New().String()
	} else if existing, err := uc.repo.GetByID(id); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	refs := uniqueReferenceCodes(items)
	description := in.Description
	if description == "" {
		description = "Pedido c/ refs: " + strings.Join(refs, ", ")
	}

	now := time.Now()
	order := &entity.ProductionOrder{
		ID:                 id,
		ReferenceCode:      strings.Join(refs, ", "),
		Description:        description,
		Fabric:             items[0].FabricName,
		Items:              items,
		ActiveCuttingItems: []entity.OrderItem{},
		Splits:             []entity.OrderSplit{},
		Status:             entity.StatusPlanned,
		Notes:              in.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return ToOrderResponse(order), nil
}

// Update edita una orden aún planeada (descripción, notas, líneas).
// Después del corte el plan es inmutable: ErrConflict.
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.Items != nil && order.Status != entity.StatusPlanned {
		return nil, domain.ErrConflict
	}
	if in.Description != nil {
		order.Description = *in.Description
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if in.Items != nil {
		if len(in.Items) == 0 {
			return nil, domain.ErrInvalidInput
		}
		items := make([]entity.OrderItem, 0, len(in.Items))
		for _, r := range in.Items {
			it, err := r.ToEntity()
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		order.Items = items
		order.ReferenceCode = strings.Join(uniqueReferenceCodes(items), ", ")
		order.Fabric = items[0].FabricName
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// List lista órdenes con paginación, opcionalmente filtradas por estado.
func (uc *OrderUseCase) List(status entity.OrderStatus, limit, offset int) (*dto.OrderListResponse, error) {
	var (
		list []*entity.ProductionOrder
		err  error
	)
	if status != "" {
		list, err = uc.repo.ListByStatus(status, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *ToOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una orden por ID (único camino de salida del sistema).
func (uc *OrderUseCase) Delete(id string) error {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ToOrderResponse mapea la entidad a su representación de API.
func ToOrderResponse(o *entity.ProductionOrder) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:                 o.ID,
		ReferenceCode:      o.ReferenceCode,
		Description:        o.Description,
		Fabric:             o.Fabric,
		Items:              o.Items,
		ActiveCuttingItems: o.ActiveCuttingItems,
		Splits:             o.Splits,
		Status:             o.Status,
		RemainingPieces:    o.RemainingPieces(),
		Notes:              o.Notes,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		FinishedAt:         o.FinishedAt,
	}
}

func uniqueReferenceCodes(items []entity.OrderItem) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it.ReferenceCode == "" || seen[it.ReferenceCode] {
			continue
		}
		seen[it.ReferenceCode] = true
		out = append(out, it.ReferenceCode)
	}
	return out
}
