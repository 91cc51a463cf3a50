package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/internal/domain/repository"
)

var _ repository.SeamstressRepository = (*SeamstressRepo)(nil)

// SeamstressRepo implementación de SeamstressRepository sobre PostgreSQL.
type SeamstressRepo struct {
	q Querier
}

// NewSeamstressRepository construye el adaptador.
func NewSeamstressRepository(q Querier) *SeamstressRepo {
	return &SeamstressRepo{q: q}
}

const seamstressColumns = `id, name, phone, specialty, active, address, city, created_at, updated_at`

// Create persiste una costurera nueva.
func (r *SeamstressRepo) Create(s *entity.Seamstress) error {
	query := `
		INSERT INTO seamstresses (id, name, phone, specialty, active, address, city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, nullIfEmpty(s.Phone), nullIfEmpty(s.Specialty), s.Active,
		nullIfEmpty(s.Address), nullIfEmpty(s.City), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert seamstress: %w", err)
	}
	return nil
}

// GetByID obtiene una costurera por ID. nil si no existe.
func (r *SeamstressRepo) GetByID(id string) (*entity.Seamstress, error) {
	query := `SELECT ` + seamstressColumns + ` FROM seamstresses WHERE id = $1`
	s, err := scanSeamstress(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// Update actualiza los datos de una costurera.
func (r *SeamstressRepo) Update(s *entity.Seamstress) error {
	query := `
		UPDATE seamstresses
		SET name = $2, phone = $3, specialty = $4, active = $5, address = $6, city = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, nullIfEmpty(s.Phone), nullIfEmpty(s.Specialty), s.Active,
		nullIfEmpty(s.Address), nullIfEmpty(s.City), s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update seamstress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update seamstress: costurera %s no existe", s.ID)
	}
	return nil
}

// List lista costureras ordenadas por nombre.
func (r *SeamstressRepo) List(limit, offset int) ([]*entity.Seamstress, error) {
	query := `SELECT ` + seamstressColumns + ` FROM seamstresses ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list seamstresses: %w", err)
	}
	defer rows.Close()

	var out []*entity.Seamstress
	for rows.Next() {
		s, err := scanSeamstress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete elimina una costurera por ID.
func (r *SeamstressRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM seamstresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete seamstress: %w", err)
	}
	return nil
}

func scanSeamstress(row pgx.Row) (*entity.Seamstress, error) {
	var (
		s         entity.Seamstress
		phone     *string
		specialty *string
		address   *string
		city      *string
	)
	if err := row.Scan(&s.ID, &s.Name, &phone, &specialty, &s.Active, &address, &city, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan seamstress: %w", err)
	}
	if phone != nil {
		s.Phone = *phone
	}
	if specialty != nil {
		s.Specialty = *specialty
	}
	if address != nil {
		s.Address = *address
	}
	if city != nil {
		s.City = *city
	}
	return &s, nil
}
