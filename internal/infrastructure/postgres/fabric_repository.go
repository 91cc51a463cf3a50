package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/internal/domain/repository"
)

var _ repository.FabricRepository = (*FabricRepo)(nil)

// FabricRepo implementación del ledger de telas sobre PostgreSQL (usable con pool o tx).
type FabricRepo struct {
	q Querier
}

// NewFabricRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFabricRepository(q Querier) *FabricRepo {
	return &FabricRepo{q: q}
}

const fabricColumns = `id, name, color, color_hex, stock_rolls, notes, created_at, updated_at`

// Create persiste una tela nueva. La clave (name, color) es única en el ledger.
func (r *FabricRepo) Create(fabric *entity.Fabric) error {
	query := `
		INSERT INTO fabrics (id, name, color, color_hex, stock_rolls, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		fabric.ID, fabric.Name, fabric.Color, nullIfEmpty(fabric.ColorHex),
		fabric.StockRolls, nullIfEmpty(fabric.Notes), fabric.CreatedAt, fabric.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("fabric name+color already exists: %w", err)
		}
		return fmt.Errorf("insert fabric: %w", err)
	}
	return nil
}

// GetByID obtiene una tela por ID. nil si no existe.
func (r *FabricRepo) GetByID(id string) (*entity.Fabric, error) {
	query := `SELECT ` + fabricColumns + ` FROM fabrics WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByKey busca por la clave del ledger (nombre + color). nil si no existe.
func (r *FabricRepo) GetByKey(name, color string) (*entity.Fabric, error) {
	query := `SELECT ` + fabricColumns + ` FROM fabrics WHERE name = $1 AND color = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name, color))
}

// GetByKeyForUpdate obtiene la tela y bloquea la fila (SELECT FOR UPDATE).
// Dentro de la transacción de corte garantiza que la validación de
// suficiencia y el débito vean el mismo stock.
func (r *FabricRepo) GetByKeyForUpdate(name, color string) (*entity.Fabric, error) {
	query := `SELECT ` + fabricColumns + ` FROM fabrics WHERE name = $1 AND color = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name, color))
}

// UpdateStock fija el stock de rollos de la tela.
func (r *FabricRepo) UpdateStock(id string, stockRolls decimal.Decimal) error {
	query := `UPDATE fabrics SET stock_rolls = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, stockRolls)
	if err != nil {
		return fmt.Errorf("update fabric stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update fabric stock: tela %s no existe", id)
	}
	return nil
}

// Update actualiza todos los campos editables de la tela.
func (r *FabricRepo) Update(fabric *entity.Fabric) error {
	query := `
		UPDATE fabrics
		SET name = $2, color = $3, color_hex = $4, stock_rolls = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		fabric.ID, fabric.Name, fabric.Color, nullIfEmpty(fabric.ColorHex),
		fabric.StockRolls, nullIfEmpty(fabric.Notes), fabric.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("fabric name+color already exists: %w", err)
		}
		return fmt.Errorf("update fabric: %w", err)
	}
	return nil
}

// List lista telas ordenadas por nombre y color.
func (r *FabricRepo) List(limit, offset int) ([]*entity.Fabric, error) {
	query := `SELECT ` + fabricColumns + ` FROM fabrics ORDER BY name, color LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fabrics: %w", err)
	}
	defer rows.Close()

	var out []*entity.Fabric
	for rows.Next() {
		f, err := scanFabric(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Delete elimina una tela por ID.
func (r *FabricRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fabrics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fabric: %w", err)
	}
	return nil
}

func (r *FabricRepo) scanOne(row pgx.Row) (*entity.Fabric, error) {
	f, err := scanFabric(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return f, nil
}

func scanFabric(row pgx.Row) (*entity.Fabric, error) {
	var f entity.Fabric
	var colorHex, notes *string
	if err := row.Scan(
		&f.ID, &f.Name, &f.Color, &colorHex, &f.StockRolls, &notes,
		&f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan fabric: %w", err)
	}
	if colorHex != nil {
		f.ColorHex = *colorHex
	}
	if notes != nil {
		f.Notes = *notes
	}
	return &f, nil
}
