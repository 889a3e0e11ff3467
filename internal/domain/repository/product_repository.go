package repository

import "github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"

// ProductRepository puerto de persistencia del catálogo. El catálogo se
// administra fuera del motor; aquí solo se necesita lectura (umbral de stock
// bajo, precio de lista) y creación para seed/administración.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
}
