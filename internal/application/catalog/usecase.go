// Package catalog contiene los casos de uso de edición directa del catálogo:
// alta y edición de productos sin pasar por el motor de movimientos (las
// ediciones puras no producen transacciones en el libro).
package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo. La cantidad se maneja vía
// movimientos; aquí solo se fija el stock inicial en la creación.
type ProductUseCase struct {
	repo      repository.ProductRepository
	publisher ports.EventPublisher
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, publisher ports.EventPublisher) *ProductUseCase {
	if publisher == nil {
		publisher = ports.NopPublisher{}
	}
	return &ProductUseCase{repo: repo, publisher: publisher}
}

// Create crea un producto nuevo. El umbral mínimo por defecto es 5 y el stock
// inicial 0 si no se indican. El SKU debe ser único: la reconciliación de
// importaciones depende de esa unicidad, así que se valida aquí en lugar de
// permitir duplicados silenciosos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	minThreshold := entity.DefaultMinThreshold
	if in.MinThreshold != nil {
		minThreshold = *in.MinThreshold
	}
	purchase := decimal.Zero
	if in.PurchasePrice != nil {
		purchase = *in.PurchasePrice
	}
	selling := decimal.Zero
	if in.SellingPrice != nil {
		selling = *in.SellingPrice
	}
	if purchase.IsNegative() || selling.IsNegative() || in.Quantity < 0 || minThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Category:      in.Category,
		Quantity:      in.Quantity,
		MinThreshold:  minThreshold,
		PurchasePrice: purchase,
		SellingPrice:  selling,
		Box:           in.Box,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.publisher.Publish(ports.EventProductsChanged, nil)
	return dto.NewProductResponse(product), nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return dto.NewProductResponse(product), nil
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.NewProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Update aplica un parche explícito: solo los campos presentes reemplazan a
// los actuales y se refresca la marca de actualización. No toca la cantidad
// ni produce transacciones en el libro.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.SKU != nil && *in.SKU != product.SKU {
		other, err := uc.repo.GetBySKU(*in.SKU)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Box != nil {
		product.Box = *in.Box
	}
	if in.MinThreshold != nil {
		if *in.MinThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinThreshold = *in.MinThreshold
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SellingPrice = *in.SellingPrice
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.publisher.Publish(ports.EventProductsChanged, nil)
	return dto.NewProductResponse(product), nil
}
