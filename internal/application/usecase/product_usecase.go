package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/repository"
)

// ProductUseCase lectura del catálogo y alta para seed/administración. El
// catálogo pertenece a otro sistema; el ledger solo necesita el umbral de
// stock bajo y el precio de lista.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create registra un producto nuevo en el catálogo.
func (uc *ProductUseCase) Create(code, name string, unitPrice decimal.Decimal, lowStockThreshold int64) (*entity.Product, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" || name == "" || unitPrice.LessThan(decimal.Zero) || lowStockThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Code:              code,
		Name:              name,
		UnitPrice:         unitPrice,
		LowStockThreshold: lowStockThreshold,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID devuelve un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List devuelve productos paginados.
func (uc *ProductUseCase) List(limit, offset int) ([]*entity.Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.productRepo.List(limit, offset)
}
