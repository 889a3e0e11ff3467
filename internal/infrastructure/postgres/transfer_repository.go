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

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación del puerto TransferRepository sobre PostgreSQL
// (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de traslados. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste un traslado y asigna su ID.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	query := `
		INSERT INTO transfers (transfer_number, from_location_id, to_location_id, transferred_by, status, notes, transfer_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		transfer.TransferNumber, transfer.FromLocationID, transfer.ToLocationID,
		transfer.TransferredBy, transfer.Status, transfer.Notes, transfer.TransferDate,
	).Scan(&transfer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de traslado y asigna su ID.
func (r *TransferRepo) CreateItem(item *entity.TransferItem) error {
	query := `
		INSERT INTO transfer_items (transfer_id, product_id, source_batch_id, destination_batch_id, quantity, unit_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.TransferID, item.ProductID, item.SourceBatchID, item.DestinationBatchID,
		item.Quantity, item.UnitPrice, item.Status,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert transfer item: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado de un traslado.
func (r *TransferRepo) UpdateStatus(id int64, status string) error {
	query := `UPDATE transfers SET status = $2 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update transfer status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un traslado con sus líneas; nil si no existe.
func (r *TransferRepo) GetByID(id int64) (*entity.Transfer, error) {
	query := `
		SELECT id, transfer_number, from_location_id, to_location_id, transferred_by, status, notes, transfer_date
		FROM transfers WHERE id = $1`
	var t entity.Transfer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.TransferNumber, &t.FromLocationID, &t.ToLocationID,
		&t.TransferredBy, &t.Status, &t.Notes, &t.TransferDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}

	itemsQuery := `
		SELECT id, transfer_id, product_id, source_batch_id, destination_batch_id, quantity, unit_price, status
		FROM transfer_items WHERE transfer_id = $1 ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list transfer items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.TransferItem
		if err := rows.Scan(&item.ID, &item.TransferID, &item.ProductID, &item.SourceBatchID,
			&item.DestinationBatchID, &item.Quantity, &item.UnitPrice, &item.Status); err != nil {
			return nil, fmt.Errorf("scan transfer item: %w", err)
		}
		t.Items = append(t.Items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &t, nil
}

// List devuelve traslados paginados, más recientes primero (sin líneas).
func (r *TransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	query := `
		SELECT id, transfer_number, from_location_id, to_location_id, transferred_by, status, notes, transfer_date
		FROM transfers ORDER BY transfer_date DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.TransferNumber, &t.FromLocationID, &t.ToLocationID,
			&t.TransferredBy, &t.Status, &t.Notes, &t.TransferDate); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
