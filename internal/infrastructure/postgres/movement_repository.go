package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del registro de auditoría sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT; las filas nunca se tocan.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste una entrada de auditoría. Sin validación de negocio: el
// registro refleja exactamente lo que el coordinador intentó comprometer.
func (r *MovementRepo) Create(record *entity.MovementRecord) error {
	query := `
		INSERT INTO movement_records (product_id, from_location_id, to_location_id, quantity_change, movement_type, reference_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		record.ProductID, record.FromLocationID, record.ToLocationID,
		record.QuantityChange, record.MovementType, record.ReferenceID,
		record.CreatedBy, record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("insert movement record: %w", err)
	}
	return nil
}

// ListByProduct lista movimientos de un producto en un rango de fechas.
func (r *MovementRepo) ListByProduct(productID int64, from, to *time.Time, limit, offset int) ([]*entity.MovementRecord, error) {
	query := `
		SELECT id, product_id, from_location_id, to_location_id, quantity_change, movement_type, reference_id, created_by, created_at
		FROM movement_records WHERE product_id = $1`
	args := []any{productID}
	query, args = appendDateRange(query, args, from, to)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.list(query, args...)
}

// ListByLocation lista movimientos que tocan una ubicación (origen o destino).
func (r *MovementRepo) ListByLocation(locationID int64, from, to *time.Time, limit, offset int) ([]*entity.MovementRecord, error) {
	query := `
		SELECT id, product_id, from_location_id, to_location_id, quantity_change, movement_type, reference_id, created_by, created_at
		FROM movement_records WHERE (from_location_id = $1 OR to_location_id = $1)`
	args := []any{locationID}
	query, args = appendDateRange(query, args, from, to)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.list(query, args...)
}

func appendDateRange(query string, args []any, from, to *time.Time) (string, []any) {
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	return query, args
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.MovementRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movement records: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementRecord
	for rows.Next() {
		var m entity.MovementRecord
		if err := rows.Scan(&m.ID, &m.ProductID, &m.FromLocationID, &m.ToLocationID,
			&m.QuantityChange, &m.MovementType, &m.ReferenceID, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement record: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
