package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// IncomingProduct es un registro externo ya parseado (fila CSV o producto de
// un respaldo) pendiente de reconciliar contra el catálogo actual.
// ID es opcional: solo los respaldos lo traen; el CSV nunca.
type IncomingProduct struct {
	ID            string
	SKU           string
	Name          string
	Category      string
	Quantity      int
	MinThreshold  int
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	Box           string
	Description   string
}

// ImportUseCase reconcilia lotes externos contra el catálogo antes de
// entregarlos al adaptador de persistencia: el adaptador hace upsert por id
// y no sabe nada de SKUs, así que el emparejamiento ocurre aquí.
type ImportUseCase struct {
	repo      repository.ProductRepository
	publisher ports.EventPublisher
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(repo repository.ProductRepository, publisher ports.EventPublisher) *ImportUseCase {
	if publisher == nil {
		publisher = ports.NopPublisher{}
	}
	return &ImportUseCase{repo: repo, publisher: publisher}
}

// Reconcile empareja cada registro entrante contra el catálogo por SKU
// (comparación exacta, case-sensitive):
//
//   - SKU existente: actualiza el producto en su sitio preservando id y fecha
//     de creación.
//   - SKU nuevo: crea un producto con id fresco, salvo que el registro traiga
//     un id propio sin colisión (restauración de respaldos, que así conserva
//     las referencias del libro de transacciones).
//
// El lote reconciliado se entrega en un solo upsert por lotes.
func (uc *ImportUseCase) Reconcile(batch []IncomingProduct) (*dto.ImportResultDTO, error) {
	current, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	bySKU := make(map[string]*entity.Product, len(current))
	byID := make(map[string]*entity.Product, len(current))
	for _, p := range current {
		bySKU[p.SKU] = p
		byID[p.ID] = p
	}

	now := time.Now()
	result := &dto.ImportResultDTO{}
	upserts := make([]*entity.Product, 0, len(batch))

	for _, in := range batch {
		if existing, ok := bySKU[in.SKU]; ok {
			existing.Name = in.Name
			existing.Category = in.Category
			existing.Quantity = in.Quantity
			existing.MinThreshold = in.MinThreshold
			existing.PurchasePrice = in.PurchasePrice
			existing.SellingPrice = in.SellingPrice
			existing.Box = in.Box
			existing.Description = in.Description
			existing.UpdatedAt = now
			upserts = append(upserts, existing)
			result.Updated++
			continue
		}

		id := in.ID
		if id == "" || byID[id] != nil {
			id = uuid.New().String()
		}
		fresh := &entity.Product{
			ID:            id,
			SKU:           in.SKU,
			Name:          in.Name,
			Category:      in.Category,
			Quantity:      in.Quantity,
			MinThreshold:  in.MinThreshold,
			PurchasePrice: in.PurchasePrice,
			SellingPrice:  in.SellingPrice,
			Box:           in.Box,
			Description:   in.Description,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		bySKU[fresh.SKU] = fresh
		byID[fresh.ID] = fresh
		upserts = append(upserts, fresh)
		result.Created++
	}

	if len(upserts) > 0 {
		if err := uc.repo.UpsertBatch(upserts); err != nil {
			return nil, err
		}
		uc.publisher.Publish(ports.EventProductsChanged, nil)
	}
	return result, nil
}
