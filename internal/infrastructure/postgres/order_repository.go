package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
// Las colecciones del agregado (items, working set, paquetes) se guardan como
// JSONB: la orden se lee y escribe completa, igual que viaja por la API.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, reference_code, description, fabric, items, active_cutting_items, splits, status, notes, created_at, updated_at, finished_at`

// Create persiste una orden nueva.
func (r *OrderRepo) Create(order *entity.ProductionOrder) error {
	items, active, splits, err := marshalCollections(order)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO production_orders
			(id, reference_code, description, fabric, items, active_cutting_items, splits, status, notes, created_at, updated_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, order.ReferenceCode, order.Description, order.Fabric,
		items, active, splits, string(order.Status), nullIfEmpty(order.Notes),
		order.CreatedAt, order.UpdatedAt, order.FinishedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("order id already exists: %w", err)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.ProductionOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM production_orders WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDForUpdate obtiene la orden y bloquea la fila (SELECT FOR UPDATE).
// Serializa corte, distribución y cierre sobre la misma orden: dos sesiones
// no pueden leer el mismo saldo y sobre-asignar piezas.
func (r *OrderRepo) GetByIDForUpdate(id string) (*entity.ProductionOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM production_orders WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update reemplaza la orden completa (last write wins sobre el registro).
func (r *OrderRepo) Update(order *entity.ProductionOrder) error {
	items, active, splits, err := marshalCollections(order)
	if err != nil {
		return err
	}
	query := `
		UPDATE production_orders
		SET reference_code = $2, description = $3, fabric = $4, items = $5,
		    active_cutting_items = $6, splits = $7, status = $8, notes = $9,
		    updated_at = $10, finished_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		order.ID, order.ReferenceCode, order.Description, order.Fabric,
		items, active, splits, string(order.Status), nullIfEmpty(order.Notes),
		order.UpdatedAt, order.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update order: orden %s no existe", order.ID)
	}
	return nil
}

// List lista órdenes, las más recientes primero.
func (r *OrderRepo) List(limit, offset int) ([]*entity.ProductionOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM production_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

// ListByStatus lista órdenes en una etapa del ciclo.
func (r *OrderRepo) ListByStatus(status entity.OrderStatus, limit, offset int) ([]*entity.ProductionOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM production_orders WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

// Delete elimina una orden por ID.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM production_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) scanOne(row pgx.Row) (*entity.ProductionOrder, error) {
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

func collectOrders(rows pgx.Rows) ([]*entity.ProductionOrder, error) {
	var out []*entity.ProductionOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.ProductionOrder, error) {
	var (
		o      entity.ProductionOrder
		status string
		notes  *string
		items  []byte
		active []byte
		splits []byte
	)
	if err := row.Scan(
		&o.ID, &o.ReferenceCode, &o.Description, &o.Fabric,
		&items, &active, &splits, &status, &notes,
		&o.CreatedAt, &o.UpdatedAt, &o.FinishedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	o.Status = entity.OrderStatus(status)
	if notes != nil {
		o.Notes = *notes
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	if err := json.Unmarshal(active, &o.ActiveCuttingItems); err != nil {
		return nil, fmt.Errorf("unmarshal active cutting items: %w", err)
	}
	if err := json.Unmarshal(splits, &o.Splits); err != nil {
		return nil, fmt.Errorf("unmarshal order splits: %w", err)
	}
	return &o, nil
}

func marshalCollections(order *entity.ProductionOrder) (items, active, splits []byte, err error) {
	if items, err = json.Marshal(orEmptyItems(order.Items)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal order items: %w", err)
	}
	if active, err = json.Marshal(orEmptyItems(order.ActiveCuttingItems)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal active cutting items: %w", err)
	}
	sp := order.Splits
	if sp == nil {
		sp = []entity.OrderSplit{}
	}
	if splits, err = json.Marshal(sp); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal order splits: %w", err)
	}
	return items, active, splits, nil
}

// orEmptyItems evita persistir null donde la columna espera un arreglo JSON.
func orEmptyItems(items []entity.OrderItem) []entity.OrderItem {
	if items == nil {
		return []entity.OrderItem{}
	}
	return items
}
