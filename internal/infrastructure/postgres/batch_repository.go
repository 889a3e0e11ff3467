package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

const batchColumns = `
	id, product_id, location_id, batch_number, quantity, price_per_unit,
	expiry_date, received_date, status, parent_batch_id,
	created_by, updated_by, created_at, updated_at`

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL
// (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote nuevo y asigna su ID.
func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO batches (product_id, location_id, batch_number, quantity, price_per_unit,
			expiry_date, received_date, status, parent_batch_id, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		batch.ProductID, batch.LocationID, batch.BatchNumber, batch.Quantity, batch.PricePerUnit,
		batch.ExpiryDate, batch.ReceivedDate, batch.Status, batch.ParentBatchID,
		batch.CreatedBy, batch.UpdatedBy, batch.CreatedAt, batch.UpdatedAt,
	).Scan(&batch.ID)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID; nil si no existe.
func (r *BatchRepo) GetByID(id int64) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene un lote bloqueando la fila (SELECT FOR UPDATE).
func (r *BatchRepo) GetForUpdate(id int64) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// ListActiveForUpdate devuelve los lotes ACTIVE de un producto en una
// ubicación, en orden FIFO (vencimiento, recepción, id), con las filas
// bloqueadas. Dos traslados concurrentes sobre los mismos lotes se serializan
// en este SELECT: el segundo espera el commit del primero y relee.
func (r *BatchRepo) ListActiveForUpdate(productID, locationID int64) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + `
		FROM batches
		WHERE product_id = $1 AND location_id = $2 AND status = $3
		ORDER BY expiry_date ASC, received_date ASC, id ASC
		FOR UPDATE`
	return r.list(query, productID, locationID, entity.BatchStatusActive)
}

// ListActive devuelve los lotes ACTIVE de un producto en una ubicación en
// orden FIFO, sin bloqueo (lecturas).
func (r *BatchRepo) ListActive(productID, locationID int64) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + `
		FROM batches
		WHERE product_id = $1 AND location_id = $2 AND status = $3
		ORDER BY expiry_date ASC, received_date ASC, id ASC`
	return r.list(query, productID, locationID, entity.BatchStatusActive)
}

// UpdateQuantity fija la cantidad de un lote. El CHECK quantity >= 0 de la
// tabla es la última línea de defensa contra cantidades negativas.
func (r *BatchRepo) UpdateQuantity(id int64, quantity int64, updatedBy int64) error {
	query := `
		UPDATE batches SET quantity = $2, updated_by = $3, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, quantity, updatedBy)
	if err != nil {
		return fmt.Errorf("update batch quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AvailableQuantity suma las cantidades ACTIVE de un producto en una ubicación.
func (r *BatchRepo) AvailableQuantity(productID, locationID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM batches
		WHERE product_id = $1 AND location_id = $2 AND status = $3`
	var total int64
	err := r.q.QueryRow(context.Background(), query, productID, locationID, entity.BatchStatusActive).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("available quantity: %w", err)
	}
	return total, nil
}

// NearestExpiry devuelve el vencimiento más próximo entre los lotes ACTIVE
// con cantidad; nil si no hay ninguno.
func (r *BatchRepo) NearestExpiry(productID, locationID int64) (*time.Time, error) {
	query := `
		SELECT MIN(expiry_date)
		FROM batches
		WHERE product_id = $1 AND location_id = $2 AND status = $3 AND quantity > 0`
	var nearest *time.Time
	err := r.q.QueryRow(context.Background(), query, productID, locationID, entity.BatchStatusActive).Scan(&nearest)
	if err != nil {
		return nil, fmt.Errorf("nearest expiry: %w", err)
	}
	return nearest, nil
}

// Lineage recorre la cadena parent_batch_id desde el lote dado hasta la
// recepción original (CTE recursivo). El primer elemento es el propio lote.
func (r *BatchRepo) Lineage(id int64) ([]*entity.Batch, error) {
	query := `
		WITH RECURSIVE chain AS (
			SELECT ` + batchColumns + `, 0 AS depth FROM batches WHERE id = $1
			UNION ALL
			SELECT b.id, b.product_id, b.location_id, b.batch_number, b.quantity, b.price_per_unit,
				b.expiry_date, b.received_date, b.status, b.parent_batch_id,
				b.created_by, b.updated_by, b.created_at, b.updated_at, c.depth + 1
			FROM batches b
			JOIN chain c ON b.id = c.parent_batch_id
		)
		SELECT ` + batchColumns + ` FROM chain ORDER BY depth ASC`
	rows, err := r.q.Query(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("batch lineage: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *BatchRepo) list(query string, args ...any) ([]*entity.Batch, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *BatchRepo) collect(rows pgx.Rows) ([]*entity.Batch, error) {
	var list []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(&b.ID, &b.ProductID, &b.LocationID, &b.BatchNumber, &b.Quantity,
			&b.PricePerUnit, &b.ExpiryDate, &b.ReceivedDate, &b.Status, &b.ParentBatchID,
			&b.CreatedBy, &b.UpdatedBy, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func (r *BatchRepo) scanOne(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	err := row.Scan(&b.ID, &b.ProductID, &b.LocationID, &b.BatchNumber, &b.Quantity,
		&b.PricePerUnit, &b.ExpiryDate, &b.ReceivedDate, &b.Status, &b.ParentBatchID,
		&b.CreatedBy, &b.UpdatedBy, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}
