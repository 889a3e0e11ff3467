package repository

import "github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"

// LocationRepository puerto del registro de ubicaciones (bodega y vehículos).
// GetStore resuelve la bodega principal única del sistema.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	GetStore() (*entity.Location, error)
	List() ([]*entity.Location, error)
}
