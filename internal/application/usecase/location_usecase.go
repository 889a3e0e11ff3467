package usecase

import (
	"strings"
	"time"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/repository"
)

// LocationUseCase administración y resolución de ubicaciones. Las ubicaciones
// se crean administrativamente y nunca se eliminan.
type LocationUseCase struct {
	locationRepo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locationRepo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{locationRepo: locationRepo}
}

// Create registra una ubicación nueva. Un VAN requiere código de vehículo;
// la bodega principal no lo lleva. El índice único parcial de la BD garantiza
// que nunca exista más de una STORE (ErrDuplicate al intentarlo).
func (uc *LocationUseCase) Create(kind, name, vanCode string) (*entity.Location, error) {
	kind = strings.ToUpper(strings.TrimSpace(kind))
	name = strings.TrimSpace(name)
	vanCode = strings.TrimSpace(vanCode)
	switch kind {
	case entity.LocationKindStore:
		if vanCode != "" {
			return nil, domain.ErrInvalidInput
		}
	case entity.LocationKindVan:
		if vanCode == "" {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	location := &entity.Location{
		Kind:      kind,
		Name:      name,
		VanCode:   vanCode,
		CreatedAt: time.Now(),
	}
	if err := uc.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

// GetByID devuelve una ubicación; ErrNotFound si no existe.
func (uc *LocationUseCase) GetByID(id int64) (*entity.Location, error) {
	location, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	return location, nil
}

// ResolveStore devuelve la bodega principal única del sistema.
func (uc *LocationUseCase) ResolveStore() (*entity.Location, error) {
	store, err := uc.locationRepo.GetStore()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return store, nil
}

// List devuelve todas las ubicaciones registradas.
func (uc *LocationUseCase) List() ([]*entity.Location, error) {
	return uc.locationRepo.List()
}
