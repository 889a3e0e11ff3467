package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/usecase"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memLocationRepo struct {
	locations map[int64]*entity.Location
	nextID    int64
}

var _ repository.LocationRepository = (*memLocationRepo)(nil)

func newMemLocationRepo() *memLocationRepo {
	return &memLocationRepo{locations: make(map[int64]*entity.Location)}
}

func (r *memLocationRepo) Create(location *entity.Location) error {
	// Emula el índice único parcial: solo puede existir una STORE.
	if location.IsStore() {
		for _, l := range r.locations {
			if l.IsStore() {
				return domain.ErrDuplicate
			}
		}
	}
	r.nextID++
	location.ID = r.nextID
	r.locations[location.ID] = location
	return nil
}

func (r *memLocationRepo) GetByID(id int64) (*entity.Location, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, nil
	}
	return l, nil
}

func (r *memLocationRepo) GetStore() (*entity.Location, error) {
	for _, l := range r.locations {
		if l.IsStore() {
			return l, nil
		}
	}
	return nil, nil
}

func (r *memLocationRepo) List() ([]*entity.Location, error) {
	out := make([]*entity.Location, 0, len(r.locations))
	for _, l := range r.locations {
		out = append(out, l)
	}
	return out, nil
}

type memProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[int64]*entity.Product)}
}

func (r *memProductRepo) Create(product *entity.Product) error {
	for _, p := range r.products {
		if p.Code == product.Code {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	product.ID = r.nextID
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// LocationUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestLocationCreate_Bodega(t *testing.T) {
	uc := usecase.NewLocationUseCase(newMemLocationRepo())

	store, err := uc.Create("store", "Bodega Principal", "")
	require.NoError(t, err)
	assert.Equal(t, entity.LocationKindStore, store.Kind, "el tipo se normaliza a mayúsculas")
	assert.True(t, store.IsStore())
}

func TestLocationCreate_SegundaBodega_Duplicada(t *testing.T) {
	uc := usecase.NewLocationUseCase(newMemLocationRepo())

	_, err := uc.Create("STORE", "Bodega Principal", "")
	require.NoError(t, err)

	_, err = uc.Create("STORE", "Bodega Secundaria", "")
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"el sistema admite exactamente una bodega principal")
}

func TestLocationCreate_VehiculoRequiereCodigo(t *testing.T) {
	uc := usecase.NewLocationUseCase(newMemLocationRepo())

	_, err := uc.Create("VAN", "Vehículo 1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un vehículo requiere código")

	van, err := uc.Create("VAN", "Vehículo 1", "VAN-01")
	require.NoError(t, err)
	assert.Equal(t, "VAN-01", van.VanCode)
}

func TestLocationCreate_BodegaConCodigo_Invalido(t *testing.T) {
	uc := usecase.NewLocationUseCase(newMemLocationRepo())

	_, err := uc.Create("STORE", "Bodega Principal", "VAN-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"la bodega principal no lleva código de vehículo")
}

func TestLocationCreate_TipoDesconocido_Invalido(t *testing.T) {
	uc := usecase.NewLocationUseCase(newMemLocationRepo())

	_, err := uc.Create("WAREHOUSE", "Otra", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLocationResolveStore(t *testing.T) {
	repo := newMemLocationRepo()
	uc := usecase.NewLocationUseCase(repo)

	_, err := uc.ResolveStore()
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin bodega registrada no hay nada que resolver")

	created, err := uc.Create("STORE", "Bodega Principal", "")
	require.NoError(t, err)

	store, err := uc.ResolveStore()
	require.NoError(t, err)
	assert.Equal(t, created.ID, store.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_Valido(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	p, err := uc.Create("PRD-001", "Arroz 1kg", decimal.NewFromInt(12), 20)
	require.NoError(t, err)
	assert.True(t, p.Active, "un producto nuevo nace activo")
	assert.Equal(t, int64(20), p.LowStockThreshold)
}

func TestProductCreate_Invalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create("", "Arroz 1kg", decimal.NewFromInt(12), 20)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el código es obligatorio")

	_, err = uc.Create("PRD-001", "", decimal.NewFromInt(12), 20)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el nombre es obligatorio")

	_, err = uc.Create("PRD-001", "Arroz 1kg", decimal.NewFromInt(-1), 20)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el precio no puede ser negativo")

	_, err = uc.Create("PRD-001", "Arroz 1kg", decimal.NewFromInt(12), -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el umbral no puede ser negativo")
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create("PRD-001", "Arroz 1kg", decimal.NewFromInt(12), 20)
	require.NoError(t, err)

	_, err = uc.Create("PRD-001", "Arroz 2kg", decimal.NewFromInt(20), 10)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.GetByID(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
