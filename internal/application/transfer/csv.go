// Package transfer implementa el intercambio de datos con el exterior:
// exportación e importación CSV del catálogo y snapshots de respaldo
// completos (archivo local y respaldo remoto de clave fija).
package transfer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/catalog"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// csvHeader orden de columnas del formato de intercambio. Las primeras 7 son
// obligatorias al importar; Box Number y Description pueden faltar.
var csvHeader = []string{
	"SKU", "Name", "Category", "Quantity", "Min Threshold",
	"Purchase Price", "Selling Price", "Box Number", "Description",
}

const csvMinColumns = 7

// ExportCSV serializa el catálogo al formato de intercambio: encabezado fijo,
// una fila por producto, strings entrecomillados con escape de comillas
// dobladas (encoding/csv).
func ExportCSV(products []*entity.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv: escribir encabezado: %w", err)
	}
	for _, p := range products {
		row := []string{
			p.SKU,
			p.Name,
			p.Category,
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.MinThreshold),
			p.PurchasePrice.String(),
			p.SellingPrice.String(),
			p.Box,
			p.Description,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv: escribir fila %s: %w", p.SKU, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportFilename nombre de descarga con la fecha actual.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("inventario_%s.csv", now.Format("2006-01-02"))
}

// ParseCSV lee el formato de intercambio y devuelve los registros listos para
// reconciliar, más el número de filas descartadas.
//
// Reglas de tolerancia (idénticas al comportamiento esperado por los
// clientes): la primera línea es encabezado y se ignora; las filas con menos
// de 7 columnas se saltan en silencio; los campos numéricos que no parsean
// quedan en 0 en lugar de rechazar la fila.
func ParseCSV(r io.Reader) (rows []catalog.IncomingProduct, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerar filas cortas; se filtran abajo

	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("csv: leer archivo: %w", err)
	}
	if len(records) == 0 {
		return nil, 0, nil
	}

	for _, record := range records[1:] { // records[0] es el encabezado
		if len(record) < csvMinColumns {
			skipped++
			continue
		}
		row := catalog.IncomingProduct{
			SKU:           record[0],
			Name:          record[1],
			Category:      record[2],
			Quantity:      parseInt(record[3]),
			MinThreshold:  parseInt(record[4]),
			PurchasePrice: parseDecimal(record[5]),
			SellingPrice:  parseDecimal(record[6]),
		}
		if len(record) > 7 {
			row.Box = record[7]
		}
		if len(record) > 8 {
			row.Description = record[8]
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
