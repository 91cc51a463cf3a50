package production_test

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Devuelven copias profundas
// en las lecturas y persisten copias en las escrituras, como haría la BD: una
// mutación que no llegó a Update no debe ser visible para el siguiente lector.

type fakeFabricRepo struct {
	fabrics map[string]*entity.Fabric // por ID
}

func newFakeFabricRepo(fabrics ...*entity.Fabric) *fakeFabricRepo {
	r := &fakeFabricRepo{fabrics: make(map[string]*entity.Fabric)}
	for _, f := range fabrics {
		cp := *f
		r.fabrics[f.ID] = &cp
	}
	return r
}

func (r *fakeFabricRepo) Create(f *entity.Fabric) error {
	cp := *f
	r.fabrics[f.ID] = &cp
	return nil
}

func (r *fakeFabricRepo) GetByID(id string) (*entity.Fabric, error) {
	f, ok := r.fabrics[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFabricRepo) GetByKey(name, color string) (*entity.Fabric, error) {
	for _, f := range r.fabrics {
		if f.Name == name && f.Color == color {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeFabricRepo) GetByKeyForUpdate(name, color string) (*entity.Fabric, error) {
	return r.GetByKey(name, color)
}

func (r *fakeFabricRepo) UpdateStock(id string, stockRolls decimal.Decimal) error {
	f, ok := r.fabrics[id]
	if !ok {
		return fmt.Errorf("fake: tela %s no existe", id)
	}
	f.StockRolls = stockRolls
	return nil
}

func (r *fakeFabricRepo) Update(f *entity.Fabric) error {
	cp := *f
	r.fabrics[f.ID] = &cp
	return nil
}

func (r *fakeFabricRepo) List(_, _ int) ([]*entity.Fabric, error) {
	out := make([]*entity.Fabric, 0, len(r.fabrics))
	for _, f := range r.fabrics {
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeFabricRepo) Delete(id string) error {
	delete(r.fabrics, id)
	return nil
}

// stockOf stock actual por clave (name, color), para aserciones.
func (r *fakeFabricRepo) stockOf(name, color string) decimal.Decimal {
	for _, f := range r.fabrics {
		if f.Name == name && f.Color == color {
			return f.StockRolls
		}
	}
	return decimal.Zero
}

type fakeOrderRepo struct {
	orders map[string]*entity.ProductionOrder
}

func newFakeOrderRepo(orders ...*entity.ProductionOrder) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: make(map[string]*entity.ProductionOrder)}
	for _, o := range orders {
		r.orders[o.ID] = cloneOrder(o)
	}
	return r
}

func cloneOrder(o *entity.ProductionOrder) *entity.ProductionOrder {
	cp := *o
	cp.Items = entity.CloneItems(o.Items)
	cp.ActiveCuttingItems = entity.CloneItems(o.ActiveCuttingItems)
	cp.Splits = make([]entity.OrderSplit, len(o.Splits))
	for n, s := range o.Splits {
		sc := s
		sc.Items = entity.CloneItems(s.Items)
		cp.Splits[n] = sc
	}
	return &cp
}

func (r *fakeOrderRepo) Create(o *entity.ProductionOrder) error {
	r.orders[o.ID] = cloneOrder(o)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.ProductionOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(o), nil
}

func (r *fakeOrderRepo) GetByIDForUpdate(id string) (*entity.ProductionOrder, error) {
	return r.GetByID(id)
}

func (r *fakeOrderRepo) Update(o *entity.ProductionOrder) error {
	if _, ok := r.orders[o.ID]; !ok {
		return fmt.Errorf("fake: orden %s no existe", o.ID)
	}
	r.orders[o.ID] = cloneOrder(o)
	return nil
}

func (r *fakeOrderRepo) List(_, _ int) ([]*entity.ProductionOrder, error) {
	out := make([]*entity.ProductionOrder, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByStatus(status entity.OrderStatus, _, _ int) ([]*entity.ProductionOrder, error) {
	out := make([]*entity.ProductionOrder, 0)
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

// stored estado persistido de la orden, para aserciones.
func (r *fakeOrderRepo) stored(id string) *entity.ProductionOrder {
	return r.orders[id]
}

type fakeSeamstressRepo struct {
	seamstresses map[string]*entity.Seamstress
}

func newFakeSeamstressRepo(list ...*entity.Seamstress) *fakeSeamstressRepo {
	r := &fakeSeamstressRepo{seamstresses: make(map[string]*entity.Seamstress)}
	for _, s := range list {
		cp := *s
		r.seamstresses[s.ID] = &cp
	}
	return r
}

func (r *fakeSeamstressRepo) Create(s *entity.Seamstress) error {
	cp := *s
	r.seamstresses[s.ID] = &cp
	return nil
}

func (r *fakeSeamstressRepo) GetByID(id string) (*entity.Seamstress, error) {
	s, ok := r.seamstresses[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSeamstressRepo) Update(s *entity.Seamstress) error {
	cp := *s
	r.seamstresses[s.ID] = &cp
	return nil
}

func (r *fakeSeamstressRepo) List(_, _ int) ([]*entity.Seamstress, error) {
	out := make([]*entity.Seamstress, 0, len(r.seamstresses))
	for _, s := range r.seamstresses {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSeamstressRepo) Delete(id string) error {
	delete(r.seamstresses, id)
	return nil
}

// fakeTxRunner ejecuta el callback directamente contra los fakes. Los casos
// de uso validan antes de escribir, así que no hace falta simular rollback.
type fakeTxRunner struct {
	fabricRepo repository.FabricRepository
	orderRepo  repository.OrderRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	fabricRepo repository.FabricRepository,
	orderRepo repository.OrderRepository,
) error) error {
	return fn(r.fabricRepo, r.orderRepo)
}
