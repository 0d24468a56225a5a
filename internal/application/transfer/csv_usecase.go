package transfer

import (
	"io"

	"github.com/jhoicas/Bodega-api/internal/application/catalog"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// CSVUseCase exporta e importa el catálogo en el formato CSV de intercambio.
type CSVUseCase struct {
	productRepo repository.ProductRepository
	importUC    *catalog.ImportUseCase
}

// NewCSVUseCase construye el caso de uso.
func NewCSVUseCase(productRepo repository.ProductRepository, importUC *catalog.ImportUseCase) *CSVUseCase {
	return &CSVUseCase{productRepo: productRepo, importUC: importUC}
}

// Export serializa el catálogo completo.
func (uc *CSVUseCase) Export() ([]byte, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	return ExportCSV(products)
}

// Import parsea el CSV y reconcilia el lote contra el catálogo por SKU.
// Las filas descartadas por malformadas se reportan en Skipped.
func (uc *CSVUseCase) Import(r io.Reader) (*dto.ImportResultDTO, error) {
	rows, skipped, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}
	result, err := uc.importUC.Reconcile(rows)
	if err != nil {
		return nil, err
	}
	result.Skipped = skipped
	return result, nil
}
