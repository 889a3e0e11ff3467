package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una ubicación. El índice único parcial sobre kind='STORE'
// convierte un segundo STORE en ErrDuplicate.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (kind, name, van_code, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		location.Kind, location.Name, location.VanCode, location.CreatedAt,
	).Scan(&location.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID; nil si no existe.
func (r *LocationRepo) GetByID(id int64) (*entity.Location, error) {
	query := `
		SELECT id, kind, name, COALESCE(van_code, ''), created_at
		FROM locations WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetStore resuelve la bodega principal única; nil si aún no se creó.
func (r *LocationRepo) GetStore() (*entity.Location, error) {
	query := `
		SELECT id, kind, name, COALESCE(van_code, ''), created_at
		FROM locations WHERE kind = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, entity.LocationKindStore))
}

// List devuelve todas las ubicaciones, bodega primero.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	query := `
		SELECT id, kind, name, COALESCE(van_code, ''), created_at
		FROM locations ORDER BY kind ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Kind, &l.Name, &l.VanCode, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *LocationRepo) scanOne(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	err := row.Scan(&l.ID, &l.Kind, &l.Name, &l.VanCode, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}
