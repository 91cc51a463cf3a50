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

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo implementación de ReferenceRepository sobre PostgreSQL.
// La paleta de colores por defecto se guarda como JSONB.
type ReferenceRepo struct {
	q Querier
}

// NewReferenceRepository construye el adaptador.
func NewReferenceRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q}
}

const referenceColumns = `id, code, description, default_fabric, default_colors, default_grid, estimated_pieces_per_roll, created_at, updated_at`

// Create persiste una referencia nueva. El código es único.
func (r *ReferenceRepo) Create(ref *entity.ProductReference) error {
	colors, err := marshalColors(ref.DefaultColors)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO product_references
			(id, code, description, default_fabric, default_colors, default_grid, estimated_pieces_per_roll, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		ref.ID, ref.Code, nullIfEmpty(ref.Description), nullIfEmpty(ref.DefaultFabric),
		colors, ref.DefaultGrid, ref.EstimatedPiecesPerRoll, ref.CreatedAt, ref.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("reference code already exists: %w", err)
		}
		return fmt.Errorf("insert reference: %w", err)
	}
	return nil
}

// GetByID obtiene una referencia por ID. nil si no existe.
func (r *ReferenceRepo) GetByID(id string) (*entity.ProductReference, error) {
	query := `SELECT ` + referenceColumns + ` FROM product_references WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode obtiene una referencia por su código. nil si no existe.
func (r *ReferenceRepo) GetByCode(code string) (*entity.ProductReference, error) {
	query := `SELECT ` + referenceColumns + ` FROM product_references WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code))
}

// Update actualiza una referencia.
func (r *ReferenceRepo) Update(ref *entity.ProductReference) error {
	colors, err := marshalColors(ref.DefaultColors)
	if err != nil {
		return err
	}
	query := `
		UPDATE product_references
		SET code = $2, description = $3, default_fabric = $4, default_colors = $5,
		    default_grid = $6, estimated_pieces_per_roll = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		ref.ID, ref.Code, nullIfEmpty(ref.Description), nullIfEmpty(ref.DefaultFabric),
		colors, ref.DefaultGrid, ref.EstimatedPiecesPerRoll, ref.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("reference code already exists: %w", err)
		}
		return fmt.Errorf("update reference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update reference: referencia %s no existe", ref.ID)
	}
	return nil
}

// List lista referencias ordenadas por código.
func (r *ReferenceRepo) List(limit, offset int) ([]*entity.ProductReference, error) {
	query := `SELECT ` + referenceColumns + ` FROM product_references ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProductReference
	for rows.Next() {
		ref, err := scanReference(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

// Delete elimina una referencia por ID.
func (r *ReferenceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_references WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reference: %w", err)
	}
	return nil
}

func (r *ReferenceRepo) scanOne(row pgx.Row) (*entity.ProductReference, error) {
	ref, err := scanReference(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return ref, nil
}

func scanReference(row pgx.Row) (*entity.ProductReference, error) {
	var (
		ref         entity.ProductReference
		description *string
		fabric      *string
		colors      []byte
	)
	if err := row.Scan(&ref.ID, &ref.Code, &description, &fabric, &colors, &ref.DefaultGrid,
		&ref.EstimatedPiecesPerRoll, &ref.CreatedAt, &ref.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan reference: %w", err)
	}
	if description != nil {
		ref.Description = *description
	}
	if fabric != nil {
		ref.DefaultFabric = *fabric
	}
	if err := json.Unmarshal(colors, &ref.DefaultColors); err != nil {
		return nil, fmt.Errorf("unmarshal reference colors: %w", err)
	}
	return &ref, nil
}

func marshalColors(colors []entity.ProductColor) ([]byte, error) {
	if colors == nil {
		colors = []entity.ProductColor{}
	}
	data, err := json.Marshal(colors)
	if err != nil {
		return nil, fmt.Errorf("marshal reference colors: %w", err)
	}
	return data, nil
}
