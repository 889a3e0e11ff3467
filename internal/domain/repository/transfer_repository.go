package repository

import "github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"

// TransferRepository puerto de persistencia de traslados y sus líneas.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	CreateItem(item *entity.TransferItem) error
	UpdateStatus(id int64, status string) error
	// GetByID devuelve el traslado con sus líneas; nil si no existe.
	GetByID(id int64) (*entity.Transfer, error)
	List(limit, offset int) ([]*entity.Transfer, error)
}
